package models

import "github.com/google/uuid"

// CurriculumItem is one row of the back-page course grid. Collection order is
// display order.
type CurriculumItem struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Hours   int    `json:"hours"`
}

func NewCurriculumItem(subject string, hours int) CurriculumItem {
	return CurriculumItem{
		ID:      uuid.NewString(),
		Subject: subject,
		Hours:   hours,
	}
}
