package domain

import "context"

// Mailer sends a single email message.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named template into subject, html, and text
// bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// RegistrationConfirmedEmailData is the data for the registration
// confirmation template.
type RegistrationConfirmedEmailData struct {
	Email          string
	Name           string
	EventName      string
	RegistrationID string
	PaymentStatus  string
}

// EmailService defines the outbound email operations.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmedEmailData) error
}
