package dto

import "time"

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type ContactResponse struct {
	SubmissionID int64  `json:"submission_id"`
	Message      string `json:"message"`
}

type ContactItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ListContactsResponse struct {
	Page     int                   `json:"page"`
	Contacts []ContactItemResponse `json:"contacts"`
}
