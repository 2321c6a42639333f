package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/service"
	"github.com/aussiebroadwan/clinicdesk/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinicdesk/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleSignup registers a new account.
//
//	@Summary		Sign up
//	@Description	Registers a new account. The admin role is only accepted while no accounts exist.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.SignupRequest						true	"Account details"
//	@Success		201		{object}	clinicsdk.Envelope[clinicsdk.User]			"Created account"
//	@Failure		400		{object}	clinicsdk.ErrorResponse						"Validation failed"
//	@Failure		403		{object}	clinicsdk.ErrorResponse						"Admin signup closed"
//	@Failure		409		{object}	clinicsdk.ErrorResponse						"Email already registered"
//	@Failure		429		{object}	clinicsdk.ErrorResponse						"Rate limited"
//	@Router			/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.AuthService.Signup(r.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusCreated, "User registered successfully", toUser(u))
}

// HandleLogin exchanges credentials for an access token.
//
//	@Summary		Log in
//	@Description	Verifies email and password and returns a bearer access token. Tokens cannot be refreshed or revoked.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.LoginRequest							true	"Credentials"
//	@Success		200		{object}	clinicsdk.Envelope[clinicsdk.LoginResponse]	"Access token"
//	@Failure		400		{object}	clinicsdk.ErrorResponse							"Malformed request"
//	@Failure		401		{object}	clinicsdk.ErrorResponse							"Invalid email or password"
//	@Failure		429		{object}	clinicsdk.ErrorResponse							"Rate limited"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Login successful", clinicsdk.LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(res.ExpiresAt).Seconds()),
		User:        toUser(res.User),
	})
}

// HandleMe returns the caller's stored profile.
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clinicsdk.Envelope[clinicsdk.User]	"Caller profile"
//	@Failure		401	{object}	clinicsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		404	{object}	clinicsdk.ErrorResponse				"Account no longer exists"
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.AuthService.Me(r.Context(), httpx.IdentityFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Success", toUser(u))
}
