package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/internal/adapters/email"
	"techfest/internal/domain"
)

func TestEmailService_SendRegistrationConfirmation(t *testing.T) {
	ctx := context.Background()
	data := &domain.RegistrationConfirmedEmailData{
		Email:          "priya@example.com",
		Name:           "Priya N",
		EventName:      "Code Clash",
		RegistrationID: "reg-uuid-1",
		PaymentStatus:  domain.PaymentPaid,
	}

	t.Run("renders embedded template and sends", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, email.NewTemplateRenderer(), testLogger)

		require.NoError(t, svc.SendRegistrationConfirmation(ctx, data))
		require.Len(t, mailer.to, 1)
		assert.Equal(t, "priya@example.com", mailer.to[0])
		assert.Contains(t, mailer.subjects[0], "Code Clash")
	})

	t.Run("mailer error surfaces", func(t *testing.T) {
		mailer := &fakeMailer{err: assert.AnError}
		svc := NewEmailService(mailer, email.NewTemplateRenderer(), testLogger)
		require.Error(t, svc.SendRegistrationConfirmation(ctx, data))
	})
}
