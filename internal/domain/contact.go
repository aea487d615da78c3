package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContactSubmission is one message sent through the website contact form.
type ContactSubmission struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Message     string
	SubmittedAt time.Time
}

// Validate checks the required fields and the rough shape of the email
// address. Phone is optional.
func (s ContactSubmission) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	email := strings.TrimSpace(s.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("%w: email address is not valid", ErrValidation)
	}

	if strings.TrimSpace(s.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}

	return nil
}
