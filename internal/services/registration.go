package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"techfest/internal/domain"
	"techfest/internal/form"
)

const backupContentType = "application/json"

type registrationService struct {
	events         domain.EventService
	repo           domain.RegistrationRepository
	objects        domain.ObjectStore
	backupBucket   string
	email          domain.EmailService
	outbox         *Outbox
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRegistrationService creates the submission pipeline. The relational
// insert and the object-store backup are independent: failure of either is
// reported per-destination and retried through the outbox rather than
// failing the whole submission.
func NewRegistrationService(events domain.EventService,
	repo domain.RegistrationRepository,
	objects domain.ObjectStore,
	backupBucket string,
	email domain.EmailService,
	outbox *Outbox,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		events:         events,
		repo:           repo,
		objects:        objects,
		backupBucket:   backupBucket,
		email:          email,
		outbox:         outbox,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *registrationService) Submit(ctx context.Context, eventID string, reg domain.Registration) (*domain.SubmissionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if reg.RegistrationType == "" {
		reg.RegistrationType = domain.RegistrationSolo
	}
	switch reg.RegistrationType {
	case domain.RegistrationSolo:
		if !event.AllowsSolo() {
			return nil, fmt.Errorf("%w: event %q does not accept solo registrations", domain.ErrInvalidInput, event.Name)
		}
		reg.TeamMembers = nil
	case domain.RegistrationTeam:
		if !event.AllowsTeam() {
			return nil, fmt.Errorf("%w: event %q does not accept team registrations", domain.ErrInvalidInput, event.Name)
		}
		if msgs := form.ValidateTeamMembers(reg.TeamMembers); len(msgs) > 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
		}
	default:
		return nil, fmt.Errorf("%w: unknown registration type %q", domain.ErrInvalidInput, reg.RegistrationType)
	}

	fee := event.FeeFor(reg.RegistrationType)
	reg.UTR = strings.TrimSpace(reg.UTR)
	if fee > 0 && reg.UTR == "" {
		return nil, fmt.Errorf("%w: payment reference (utr) is required for paid events", domain.ErrInvalidInput)
	}
	if fee == 0 {
		// Free events never carry a payment reference.
		reg.UTR = ""
	}

	reg.ID = uuid.NewString()
	reg.EventID = event.ID
	reg.CreatedAt = time.Now().UTC()

	result := &domain.SubmissionResult{Registration: &reg}

	if err := s.repo.Create(ctx, &reg); err != nil {
		s.logger.Error("failed to store registration", "registration_id", reg.ID, "event_id", event.ID, "err", err)
		stored := reg
		s.outbox.Enqueue("registration insert "+reg.ID, func(ctx context.Context) error {
			return s.repo.Create(ctx, &stored)
		})
	} else {
		result.Stored = true
	}

	backup := domain.RegistrationBackup{
		Registration:  reg,
		EventName:     event.Name,
		SubmittedAt:   reg.CreatedAt,
		PaymentStatus: domain.DerivePaymentStatus(fee, reg.UTR),
	}
	payload, err := json.Marshal(backup)
	if err != nil {
		s.logger.Error("failed to marshal registration backup", "registration_id", reg.ID, "err", err)
	} else {
		objectPath := backupObjectPath(&reg)
		if err := s.objects.Upload(ctx, s.backupBucket, objectPath, payload, backupContentType); err != nil {
			s.logger.Error("failed to back up registration", "registration_id", reg.ID, "path", objectPath, "err", err)
			s.outbox.Enqueue("registration backup "+reg.ID, func(ctx context.Context) error {
				return s.objects.Upload(ctx, s.backupBucket, objectPath, payload, backupContentType)
			})
		} else {
			result.BackedUp = true
		}
	}

	if s.email != nil {
		data := &domain.RegistrationConfirmedEmailData{
			Email:          reg.Email,
			Name:           reg.Name,
			EventName:      event.Name,
			RegistrationID: reg.ID,
			PaymentStatus:  backup.PaymentStatus,
		}
		if err := s.email.SendRegistrationConfirmation(ctx, data); err != nil {
			s.logger.Warn("failed to send confirmation email", "registration_id", reg.ID, "err", err)
		}
	}

	return result, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if eventID == "" {
		return s.repo.List(ctx, params)
	}
	return s.repo.ListByEventID(ctx, eventID, params)
}

// backupObjectPath derives the backup object name from fields stored in the
// relational row, so the path can be reconstructed for cascade cleanup.
func backupObjectPath(reg *domain.Registration) string {
	return fmt.Sprintf("%s_%s_%d.json", reg.USN, reg.EventID, reg.CreatedAt.Unix())
}
