package domain

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ContactSubmission is one contact-form fill. Both form variants are accepted:
// a single "name" or a "firstName"/"lastName" pair.
//
// Name is validated after resolution, so its cap fits two full parts and a space.
type ContactSubmission struct {
	Name      string `json:"name" validate:"required,max=101,single_line"`
	FirstName string `json:"firstName,omitempty" validate:"max=50,single_line"`
	LastName  string `json:"lastName,omitempty" validate:"max=50,single_line"`
	Email     string `json:"email" validate:"required,max=254,email,single_line"`
	Subject   string `json:"subject,omitempty" validate:"max=200,single_line"`
	Message   string `json:"message" validate:"required,max=5000"`
}

// SenderName resolves the display name: "name" wins, otherwise first and last name joined.
func (s *ContactSubmission) SenderName() string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(s.FirstName) + " " + strings.TrimSpace(s.LastName))
}

// ValidationError reports which submission fields were rejected and why.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid contact submission: %s", strings.Join(keys, ", "))
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and emails it to the site owner
	SendContactMessage(ctx context.Context, req *ContactSubmission) error
}
