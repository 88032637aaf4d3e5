package models

import "github.com/google/uuid"

// Instructor signs certificates. The first instructor in insertion order is
// used for the signature block; all of them feed the {{INSTRUTORES}} variable.
type Instructor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Competencies string `json:"competencies"`
}

func NewInstructor(name, competencies string) Instructor {
	return Instructor{
		ID:           uuid.NewString(),
		Name:         name,
		Competencies: competencies,
	}
}
