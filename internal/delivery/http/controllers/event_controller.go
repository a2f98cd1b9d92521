package controllers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"techfest/internal/delivery/http/helpers"
	"techfest/internal/domain"
)

// maxImageUploadBytes caps multipart image uploads.
const maxImageUploadBytes = 10 << 20

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	DateTime         string   `json:"date_time"`
	Venue            string   `json:"venue"`
	Rules            string   `json:"rules"`
	TeamSize         int      `json:"team_size"`
	Fees             int      `json:"fees"`
	CashPrize        int      `json:"cash_prize"`
	RegistrationType string   `json:"registration_type"`
	Category         string   `json:"category"`
	TeamFees         *int     `json:"team_fees"`
	Coordinators     []string `json:"coordinators"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.TeamSize < 0 {
		errs = append(errs, "team_size must not be negative")
	}
	if c.Fees < 0 {
		errs = append(errs, "fees must not be negative")
	}
	if c.TeamFees != nil && *c.TeamFees < 0 {
		errs = append(errs, "team_fees must not be negative")
	}
	if !validRegistrationType(c.RegistrationType) {
		errs = append(errs, "registration_type must be solo, team, or both")
	}
	return errs
}

func validRegistrationType(t string) bool {
	switch t {
	case "", domain.RegistrationSolo, domain.RegistrationTeam, domain.RegistrationBoth:
		return true
	}
	return false
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}. Absent
// fields leave the stored value unchanged.
type UpdateEventRequest struct {
	domain.EventUpdate
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if u.TeamSize != nil && *u.TeamSize < 1 {
		errs = append(errs, "team_size must be at least 1")
	}
	if u.Fees != nil && *u.Fees < 0 {
		errs = append(errs, "fees must not be negative")
	}
	if u.TeamFees != nil && *u.TeamFees < 0 {
		errs = append(errs, "team_fees must not be negative")
	}
	if u.RegistrationType != nil && !validRegistrationType(*u.RegistrationType) {
		errs = append(errs, "registration_type must be solo, team, or both")
	}
	return errs
}

// AttachImageURLRequest is the JSON request body for POST /events/{eventID}/images
// when attaching a library image by URL instead of uploading a file.
type AttachImageURLRequest struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// Validate implements Validator.
func (a AttachImageURLRequest) Validate() []string {
	var errs []string
	if !validImageKind(a.Kind) {
		errs = append(errs, "kind must be background, qr_solo, or qr_team")
	}
	if a.URL == "" {
		errs = append(errs, "url is required")
	}
	return errs
}

func validImageKind(kind string) bool {
	switch domain.ImageKind(kind) {
	case domain.ImageBackground, domain.ImageQRSolo, domain.ImageQRTeam:
		return true
	}
	return false
}

// EventMutationResponse is the payload for event mutations. Saved reports
// whether the durable write succeeded; the event reflects the applied change
// either way.
type EventMutationResponse struct {
	Event *domain.Event `json:"event"`
	Saved bool          `json:"saved"`
}

// EventsSuccessResponse is the success response envelope for GET /events (200).
type EventsSuccessResponse struct {
	Data  []domain.Event    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns the full event catalog. Public.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventsSuccessResponse "data contains the event array"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns a single event from the catalog. Public.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates a catalog event. The ID is server-generated. Requires admin authentication.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the event and the saved flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, saved, err := c.Service.CreateEvent(r.Context(), domain.Event{
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		DateTime:         req.DateTime,
		Venue:            req.Venue,
		Rules:            req.Rules,
		TeamSize:         req.TeamSize,
		Fees:             req.Fees,
		CashPrize:        req.CashPrize,
		RegistrationType: req.RegistrationType,
		Category:         req.Category,
		TeamFees:         req.TeamFees,
		Coordinators:     req.Coordinators,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, EventMutationResponse{Event: event, Saved: saved})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Shallow-merges the provided fields into the event. Requires admin authentication.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the event and the saved flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, saved, err := c.Service.UpdateEvent(r.Context(), eventID, req.EventUpdate)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventMutationResponse{Event: event, Saved: saved})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event and cascades: its registrations are deleted from the database and their backups removed from storage. Requires admin authentication.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the saved flag"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	saved, err := c.Service.DeleteEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"saved": saved})
}

// AttachImage godoc
// @Summary Attach an image to an event
// @Description Uploads a background or payment QR image (multipart field "image" with form field "kind"), or attaches an image by URL (JSON body). The resulting URL is merged into the event. Requires admin authentication.
// @Tags events
// @Accept mpfd
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event and the saved flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/images [post]
func (c *EventController) AttachImage(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		var req AttachImageURLRequest
		if !helpers.DecodeAndValidate(w, r, &req) {
			return
		}
		event, saved, err := c.Service.AttachImageURL(r.Context(), eventID, domain.ImageKind(req.Kind), req.URL)
		if err != nil {
			writeServiceError(c.Logger, w, r, err)
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, EventMutationResponse{Event: event, Saved: saved})
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form")
		return
	}
	kind := r.FormValue("kind")
	if !validImageKind(kind) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "kind must be background, qr_solo, or qr_team")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing image file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "failed to read image file")
		return
	}

	event, saved, err := c.Service.AttachImage(r.Context(), eventID, domain.ImageKind(kind), header.Filename, data)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventMutationResponse{Event: event, Saved: saved})
}
