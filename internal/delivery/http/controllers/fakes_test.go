package controllers

import (
	"context"
	"io"
	"log/slog"

	"techfest/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeAdminService implements domain.AdminService for handler tests.
type fakeAdminService struct {
	token        string
	err          error
	lastUsername string
	lastPassword string
}

func (f *fakeAdminService) Login(_ context.Context, username, password string) (string, error) {
	f.lastUsername = username
	f.lastPassword = password
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listEventsResult []domain.Event
	listEventsErr    error
	getEventResult   *domain.Event
	getEventErr      error
	createResult     *domain.Event
	createSaved      bool
	createErr        error
	updateResult     *domain.Event
	updateSaved      bool
	updateErr        error
	deleteSaved      bool
	deleteErr        error
	attachResult     *domain.Event
	attachSaved      bool
	attachErr        error

	lastCreateEvent    *domain.Event
	lastUpdateID       string
	lastUpdate         domain.EventUpdate
	lastDeleteID       string
	lastAttachID       string
	lastAttachKind     domain.ImageKind
	lastAttachFilename string
	lastAttachData     []byte
	lastAttachURL      string
}

func (f *fakeEventService) ListEvents(_ context.Context) ([]domain.Event, error) {
	return f.listEventsResult, f.listEventsErr
}

func (f *fakeEventService) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	return f.getEventResult, f.getEventErr
}

func (f *fakeEventService) CreateEvent(_ context.Context, event domain.Event) (*domain.Event, bool, error) {
	f.lastCreateEvent = &event
	return f.createResult, f.createSaved, f.createErr
}

func (f *fakeEventService) UpdateEvent(_ context.Context, id string, upd domain.EventUpdate) (*domain.Event, bool, error) {
	f.lastUpdateID = id
	f.lastUpdate = upd
	return f.updateResult, f.updateSaved, f.updateErr
}

func (f *fakeEventService) DeleteEvent(_ context.Context, id string) (bool, error) {
	f.lastDeleteID = id
	return f.deleteSaved, f.deleteErr
}

func (f *fakeEventService) AttachImage(_ context.Context, id string, kind domain.ImageKind, filename string, data []byte) (*domain.Event, bool, error) {
	f.lastAttachID = id
	f.lastAttachKind = kind
	f.lastAttachFilename = filename
	f.lastAttachData = data
	return f.attachResult, f.attachSaved, f.attachErr
}

func (f *fakeEventService) AttachImageURL(_ context.Context, id string, kind domain.ImageKind, url string) (*domain.Event, bool, error) {
	f.lastAttachID = id
	f.lastAttachKind = kind
	f.lastAttachURL = url
	return f.attachResult, f.attachSaved, f.attachErr
}

// fakeSponsorService implements domain.SponsorService for handler tests.
type fakeSponsorService struct {
	listResult   []domain.Sponsor
	listErr      error
	createResult *domain.Sponsor
	createSaved  bool
	createErr    error
	updateResult *domain.Sponsor
	updateSaved  bool
	updateErr    error
	deleteSaved  bool
	deleteErr    error

	lastCreate   *domain.Sponsor
	lastUpdateID string
	lastDeleteID string
}

func (f *fakeSponsorService) ListSponsors(_ context.Context) ([]domain.Sponsor, error) {
	return f.listResult, f.listErr
}

func (f *fakeSponsorService) CreateSponsor(_ context.Context, sponsor domain.Sponsor) (*domain.Sponsor, bool, error) {
	f.lastCreate = &sponsor
	return f.createResult, f.createSaved, f.createErr
}

func (f *fakeSponsorService) UpdateSponsor(_ context.Context, id string, upd domain.SponsorUpdate) (*domain.Sponsor, bool, error) {
	f.lastUpdateID = id
	return f.updateResult, f.updateSaved, f.updateErr
}

func (f *fakeSponsorService) DeleteSponsor(_ context.Context, id string) (bool, error) {
	f.lastDeleteID = id
	return f.deleteSaved, f.deleteErr
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	submitResult *domain.SubmissionResult
	submitErr    error
	listResult   []*domain.Registration
	listTotal    int
	listErr      error

	lastSubmitEventID string
	lastSubmitReg     *domain.Registration
	lastListEventID   string
	lastListParams    domain.PaginationParams
}

func (f *fakeRegistrationService) Submit(_ context.Context, eventID string, reg domain.Registration) (*domain.SubmissionResult, error) {
	f.lastSubmitEventID = eventID
	f.lastSubmitReg = &reg
	return f.submitResult, f.submitErr
}

func (f *fakeRegistrationService) ListRegistrations(_ context.Context, eventID string, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	f.lastListEventID = eventID
	f.lastListParams = params
	return f.listResult, f.listTotal, f.listErr
}
