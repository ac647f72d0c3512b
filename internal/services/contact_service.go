package services

import (
	"context"
	"errors"

	"estateBack/internal/models"
)

// Mailer delivers a contact submission to the site inbox. The transport is
// an external collaborator; only success or failure surfaces to the caller.
type Mailer interface {
	SendContact(form models.ContactForm) error
}

type ContactService struct {
	Mailer Mailer
}

var ErrMailerNotConfigured = errors.New("services: mailer not configured")

func (s *ContactService) SubmitContact(ctx context.Context, form models.ContactForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if s.Mailer == nil {
		return ErrMailerNotConfigured
	}
	return s.Mailer.SendContact(form)
}
