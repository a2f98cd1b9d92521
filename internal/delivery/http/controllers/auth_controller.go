package controllers

import (
	"log/slog"
	"net/http"

	"techfest/internal/delivery/http/helpers"
	"techfest/internal/domain"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Username == "" {
		errs = append(errs, "username is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the success payload for POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// LoginSuccessResponse is the success response envelope for POST /auth/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAuthController(logger *slog.Logger, svc domain.AdminService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Admin login
// @Description Authenticates an admin and returns a signed bearer token. Credentials are verified server-side against salted hashes; no credential material is returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains the bearer token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token})
}
