package models

import "github.com/google/uuid"

// Student is one certificate recipient. DisplayName is the decorative
// (handwritten-style) name on the front page and defaults to Name.
type Student struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CPF         string `json:"cpf"`
	DisplayName string `json:"displayName,omitempty"`
}

// NewStudent creates a student with a fresh opaque id.
func NewStudent(name, cpf string) Student {
	return Student{
		ID:          uuid.NewString(),
		Name:        name,
		CPF:         cpf,
		DisplayName: name,
	}
}
