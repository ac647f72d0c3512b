package models

import "strings"

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (f ContactForm) Validate() error {
	switch {
	case len(strings.TrimSpace(f.Name)) < 2:
		return &ValidationError{Field: "name", Message: "Name must be at least 2 characters"}
	case !strings.Contains(f.Email, "@") || strings.HasPrefix(f.Email, "@") || strings.HasSuffix(f.Email, "@"):
		return &ValidationError{Field: "email", Message: "Invalid email address"}
	case len(strings.TrimSpace(f.Phone)) < 10:
		return &ValidationError{Field: "phone", Message: "Phone must be at least 10 digits"}
	case len(strings.TrimSpace(f.Message)) < 10:
		return &ValidationError{Field: "message", Message: "Message must be at least 10 characters"}
	}
	return nil
}
