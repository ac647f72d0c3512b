package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"estateBack/internal/models"
)

// SMTPMailer forwards contact submissions to the site inbox over SMTP.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

func (m *SMTPMailer) SendContact(form models.ContactForm) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Username)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Reply-To", form.Email)
	msg.SetHeader("Subject", fmt.Sprintf("New Contact Form Submission from %s", form.Name))
	msg.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage: %s",
		form.Name, form.Email, form.Phone, form.Message))

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return d.DialAndSend(msg)
}
