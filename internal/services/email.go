package services

import (
	"context"
	"fmt"
	"log/slog"

	"techfest/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{
		mailer:   mailer,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmedEmailData) error {
	subject, htmlBody, textBody, err := s.renderer.Render("registration_confirmed", data)
	if err != nil {
		return fmt.Errorf("render registration_confirmed: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send confirmation to %s: %w", data.Email, err)
	}
	s.logger.Info("confirmation email sent", "registration_id", data.RegistrationID, "to", data.Email)
	return nil
}
