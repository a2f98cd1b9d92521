package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"techfest/internal/delivery/http/helpers"
	"techfest/internal/domain"
)

// SubmitRegistrationRequest is the request body for
// POST /events/{eventID}/registrations.
type SubmitRegistrationRequest struct {
	Name             string              `json:"name"`
	USN              string              `json:"usn"`
	Branch           string              `json:"branch"`
	Phone            string              `json:"phone"`
	Email            string              `json:"email"`
	RegistrationType string              `json:"registration_type"`
	UTR              string              `json:"utr"`
	TeamMembers      []domain.TeamMember `json:"team_members"`
}

// Validate implements Validator. Team composition and payment rules depend on
// the event and are enforced by the service.
func (s SubmitRegistrationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(s.USN) == "" {
		errs = append(errs, "usn is required")
	}
	if strings.TrimSpace(s.Branch) == "" {
		errs = append(errs, "branch is required")
	}
	if strings.TrimSpace(s.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(s.Email) {
		errs = append(errs, "email format is invalid")
	}
	if !validRegistrationType(s.RegistrationType) || s.RegistrationType == domain.RegistrationBoth {
		errs = append(errs, "registration_type must be solo or team")
	}
	return errs
}

// RegistrationListResponse is the payload for GET /registrations.
type RegistrationListResponse struct {
	Registrations []*domain.Registration `json:"registrations"`
	Pagination    helpers.PaginationMeta `json:"pagination"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit a registration
// @Description Registers a participant (solo or team of 4) for an event. Paid events require a UTR payment reference. The response reports per-destination persistence: stored (database) and backed_up (object storage).
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param registration body SubmitRegistrationRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse "data contains the registration and the stored/backed_up flags"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [post]
func (c *RegistrationController) Submit(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req SubmitRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.Submit(r.Context(), eventID, domain.Registration{
		Name:             strings.TrimSpace(req.Name),
		USN:              strings.TrimSpace(req.USN),
		Branch:           strings.TrimSpace(req.Branch),
		Phone:            strings.TrimSpace(req.Phone),
		Email:            strings.TrimSpace(req.Email),
		RegistrationType: req.RegistrationType,
		UTR:              req.UTR,
		TeamMembers:      req.TeamMembers,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}

// List godoc
// @Summary List registrations
// @Description Returns registrations, optionally filtered by event_id, with pagination. Requires admin authentication.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param event_id query string false "Filter by event ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains registrations and pagination metadata"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [get]
func (c *RegistrationController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	eventID := r.URL.Query().Get("event_id")
	regs, total, err := c.Service.ListRegistrations(r.Context(), eventID, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationListResponse{
		Registrations: regs,
		Pagination:    helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
