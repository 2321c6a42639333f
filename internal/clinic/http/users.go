package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/domain"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/service"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinicdesk/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate adds an account.
//
//	@Summary		Create user
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.CreateUserRequest			true	"Account details"
//	@Success		201		{object}	clinicsdk.Envelope[clinicsdk.User]	"Created account"
//	@Failure		400		{object}	clinicsdk.ErrorResponse				"Validation failed"
//	@Failure		401		{object}	clinicsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		403		{object}	clinicsdk.ErrorResponse				"Admin only"
//	@Failure		409		{object}	clinicsdk.ErrorResponse				"Email already registered"
//	@Router			/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.UserService.Create(r.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusCreated, "User created successfully", toUser(u))
}

// HandleList returns every account.
//
//	@Summary		List users
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clinicsdk.Envelope[[]clinicsdk.User]	"Accounts"
//	@Failure		401	{object}	clinicsdk.ErrorResponse					"Missing or invalid token"
//	@Failure		403	{object}	clinicsdk.ErrorResponse					"Admin only"
//	@Router			/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Success", toUsers(users))
}

// HandleGet returns one account. Members may only read their own.
//
//	@Summary		Get user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int									true	"User ID"
//	@Success		200	{object}	clinicsdk.Envelope[clinicsdk.User]	"Account"
//	@Failure		401	{object}	clinicsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		403	{object}	clinicsdk.ErrorResponse				"Not your account"
//	@Failure		404	{object}	clinicsdk.ErrorResponse				"User not found"
//	@Router			/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	caller := httpx.IdentityFromContext(r.Context())
	if caller == nil {
		httpx.WriteUnauthorized(w, "Authentication required")
		return
	}
	if !authz.IsAuthorizedForResource(caller.Subject, caller.Role, strconv.FormatInt(id, 10)) {
		httpx.WriteForbidden(w, "You don't have permission to view this user")
		return
	}

	u, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Success", toUser(u))
}

// HandleUpdate changes name and/or role.
//
//	@Summary		Update user
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"User ID"
//	@Param			request	body		clinicsdk.UpdateUserRequest			true	"Fields to change"
//	@Success		200		{object}	clinicsdk.Envelope[clinicsdk.User]	"Updated account"
//	@Failure		400		{object}	clinicsdk.ErrorResponse				"Validation failed"
//	@Failure		401		{object}	clinicsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		403		{object}	clinicsdk.ErrorResponse				"Admin only"
//	@Failure		404		{object}	clinicsdk.ErrorResponse				"User not found"
//	@Router			/users/{id} [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req clinicsdk.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.UserService.Update(r.Context(), id, domain.UserPatch{
		Name: req.Name,
		Role: req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "User updated successfully", toUser(u))
}

// HandleDelete removes an account. Tokens already issued to it keep
// working until they expire.
//
//	@Summary		Delete user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	httpx.Envelope			"Deleted"
//	@Failure		401	{object}	clinicsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	clinicsdk.ErrorResponse	"Admin only"
//	@Failure		404	{object}	clinicsdk.ErrorResponse	"User not found"
//	@Router			/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.UserService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "User deleted successfully", nil)
}
