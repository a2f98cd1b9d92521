package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"techfest/internal/delivery/http/helpers"
	"techfest/internal/domain"
)

// CreateSponsorRequest is the request body for POST /sponsors.
type CreateSponsorRequest struct {
	Name    string `json:"name"`
	Tier    string `json:"tier"`
	Logo    string `json:"logo"`
	Website string `json:"website"`
}

// Validate implements Validator.
func (c CreateSponsorRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !domain.ValidTier(c.Tier) {
		errs = append(errs, "tier must be title, platinum, gold, or silver")
	}
	return errs
}

// UpdateSponsorRequest is the request body for PATCH /sponsors/{sponsorID}.
// Absent fields leave the stored value unchanged.
type UpdateSponsorRequest struct {
	domain.SponsorUpdate
}

// Validate implements Validator.
func (u UpdateSponsorRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if u.Tier != nil && !domain.ValidTier(*u.Tier) {
		errs = append(errs, "tier must be title, platinum, gold, or silver")
	}
	return errs
}

// SponsorMutationResponse is the payload for sponsor mutations.
type SponsorMutationResponse struct {
	Sponsor *domain.Sponsor `json:"sponsor"`
	Saved   bool            `json:"saved"`
}

type SponsorController struct {
	Logger  *slog.Logger
	Service domain.SponsorService
}

func NewSponsorController(logger *slog.Logger, svc domain.SponsorService) *SponsorController {
	return &SponsorController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSponsors godoc
// @Summary List sponsors
// @Description Returns the full sponsor catalog. Public.
// @Tags sponsors
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the sponsor array"
// @Router /sponsors [get]
func (c *SponsorController) ListSponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := c.Service.ListSponsors(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sponsors)
}

// CreateSponsor godoc
// @Summary Create a sponsor
// @Description Adds a sponsor to the catalog. The ID is server-generated. Requires admin authentication.
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sponsor body CreateSponsorRequest true "Sponsor data"
// @Success 201 {object} helpers.APIResponse "data contains the sponsor and the saved flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /sponsors [post]
func (c *SponsorController) CreateSponsor(w http.ResponseWriter, r *http.Request) {
	var req CreateSponsorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sponsor, saved, err := c.Service.CreateSponsor(r.Context(), domain.Sponsor{
		Name:    strings.TrimSpace(req.Name),
		Tier:    req.Tier,
		Logo:    req.Logo,
		Website: req.Website,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SponsorMutationResponse{Sponsor: sponsor, Saved: saved})
}

// UpdateSponsor godoc
// @Summary Update a sponsor
// @Description Shallow-merges the provided fields into the sponsor. Requires admin authentication.
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sponsorID path string true "Sponsor ID"
// @Param sponsor body UpdateSponsorRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the sponsor and the saved flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sponsors/{sponsorID} [patch]
func (c *SponsorController) UpdateSponsor(w http.ResponseWriter, r *http.Request) {
	sponsorID := r.PathValue("sponsorID")
	if sponsorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sponsorID")
		return
	}
	var req UpdateSponsorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sponsor, saved, err := c.Service.UpdateSponsor(r.Context(), sponsorID, req.SponsorUpdate)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SponsorMutationResponse{Sponsor: sponsor, Saved: saved})
}

// DeleteSponsor godoc
// @Summary Delete a sponsor
// @Description Removes the sponsor from the catalog. Requires admin authentication.
// @Tags sponsors
// @Produce json
// @Security BearerAuth
// @Param sponsorID path string true "Sponsor ID"
// @Success 200 {object} helpers.APIResponse "data contains the saved flag"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sponsors/{sponsorID} [delete]
func (c *SponsorController) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	sponsorID := r.PathValue("sponsorID")
	if sponsorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sponsorID")
		return
	}
	saved, err := c.Service.DeleteSponsor(r.Context(), sponsorID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"saved": saved})
}
