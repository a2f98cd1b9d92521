package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"techfest/internal/catalog"
	"techfest/internal/domain"
)

type eventService struct {
	catalog        *catalog.Store[domain.Event]
	regRepo        domain.RegistrationRepository
	objects        domain.ObjectStore
	imagesBucket   string
	backupBucket   string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService creates the event catalog service and admin mutation
// gateway. Every mutation reconstructs the full catalog array and persists it
// through the store.
func NewEventService(store *catalog.Store[domain.Event],
	regRepo domain.RegistrationRepository,
	objects domain.ObjectStore,
	imagesBucket, backupBucket string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		catalog:        store,
		regRepo:        regRepo,
		objects:        objects,
		imagesBucket:   imagesBucket,
		backupBucket:   backupBucket,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalog.Load(ctx), nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	for _, e := range s.catalog.Load(ctx) {
		if e.ID == id {
			event := e
			return &event, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *eventService) CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event.ID = uuid.NewString()
	if event.TeamSize < 1 {
		event.TeamSize = 1
	}
	if event.RegistrationType == "" {
		// registration_type is authoritative for eligibility; when the admin
		// leaves it blank, derive an initial value from the team size.
		if event.TeamSize > 1 {
			event.RegistrationType = domain.RegistrationBoth
		} else {
			event.RegistrationType = domain.RegistrationSolo
		}
	}

	events := append(s.catalog.Load(ctx), event)
	saved := s.catalog.Save(ctx, events)
	return &event, saved, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events := s.catalog.Load(ctx)
	var updated *domain.Event
	for i := range events {
		if events[i].ID != id {
			continue
		}
		mergeEvent(&events[i], upd)
		updated = &events[i]
		break
	}
	if updated == nil {
		return nil, false, domain.ErrNotFound
	}
	saved := s.catalog.Save(ctx, events)
	event := *updated
	return &event, saved, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events := s.catalog.Load(ctx)
	remaining := make([]domain.Event, 0, len(events))
	found := false
	for _, e := range events {
		if e.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, e)
	}
	if !found {
		return false, domain.ErrNotFound
	}
	saved := s.catalog.Save(ctx, remaining)

	// Cascade to the relational store so deleted events leave no orphaned
	// registration rows, then clean up their backup objects best-effort.
	deleted, err := s.regRepo.DeleteByEventID(ctx, id)
	if err != nil {
		s.logger.Error("failed to cascade registration delete", "event_id", id, "err", err)
		return saved, nil
	}
	if len(deleted) > 0 {
		paths := make([]string, 0, len(deleted))
		for _, reg := range deleted {
			paths = append(paths, backupObjectPath(reg))
		}
		if err := s.objects.Remove(ctx, s.backupBucket, paths); err != nil {
			s.logger.Warn("failed to remove registration backups", "event_id", id, "count", len(paths), "err", err)
		}
	}
	return saved, nil
}

func (s *eventService) AttachImage(ctx context.Context, id string, kind domain.ImageKind, filename string, data []byte) (*domain.Event, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(data) == 0 {
		return nil, false, fmt.Errorf("%w: empty image upload", domain.ErrInvalidInput)
	}
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".png"
	}
	objectPath := fmt.Sprintf("%s_%d%s", id, time.Now().Unix(), ext)
	contentType := http.DetectContentType(data)
	if err := s.objects.Upload(ctx, s.imagesBucket, objectPath, data, contentType); err != nil {
		return nil, false, fmt.Errorf("upload image: %w", err)
	}
	url := s.objects.PublicURL(s.imagesBucket, objectPath)
	return s.attachURL(ctx, id, kind, url)
}

func (s *eventService) AttachImageURL(ctx context.Context, id string, kind domain.ImageKind, url string) (*domain.Event, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.attachURL(ctx, id, kind, url)
}

func (s *eventService) attachURL(ctx context.Context, id string, kind domain.ImageKind, url string) (*domain.Event, bool, error) {
	upd := domain.EventUpdate{}
	switch kind {
	case domain.ImageBackground:
		upd.BackgroundImage = &url
	case domain.ImageQRSolo:
		upd.QRCodeSolo = &url
	case domain.ImageQRTeam:
		upd.QRCodeTeam = &url
	default:
		return nil, false, fmt.Errorf("%w: unknown image kind %q", domain.ErrInvalidInput, kind)
	}

	events := s.catalog.Load(ctx)
	var updated *domain.Event
	for i := range events {
		if events[i].ID != id {
			continue
		}
		mergeEvent(&events[i], upd)
		updated = &events[i]
		break
	}
	if updated == nil {
		return nil, false, domain.ErrNotFound
	}
	saved := s.catalog.Save(ctx, events)
	event := *updated
	return &event, saved, nil
}

// mergeEvent applies the non-nil fields of upd onto e (shallow merge).
func mergeEvent(e *domain.Event, upd domain.EventUpdate) {
	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.DateTime != nil {
		e.DateTime = *upd.DateTime
	}
	if upd.Venue != nil {
		e.Venue = *upd.Venue
	}
	if upd.Rules != nil {
		e.Rules = *upd.Rules
	}
	if upd.TeamSize != nil {
		e.TeamSize = *upd.TeamSize
	}
	if upd.Fees != nil {
		e.Fees = *upd.Fees
	}
	if upd.CashPrize != nil {
		e.CashPrize = *upd.CashPrize
	}
	if upd.RegistrationType != nil {
		e.RegistrationType = *upd.RegistrationType
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	if upd.BackgroundImage != nil {
		e.BackgroundImage = *upd.BackgroundImage
	}
	if upd.QRCodeSolo != nil {
		e.QRCodeSolo = *upd.QRCodeSolo
	}
	if upd.QRCodeTeam != nil {
		e.QRCodeTeam = *upd.QRCodeTeam
	}
	if upd.TeamFees != nil {
		e.TeamFees = upd.TeamFees
	}
	if upd.Coordinators != nil {
		e.Coordinators = *upd.Coordinators
	}
}
