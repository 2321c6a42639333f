package http

import (
	"net/http"

	"github.com/aussiebroadwan/clinicdesk/internal/clinic/domain"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/service"
	"github.com/aussiebroadwan/clinicdesk/pkg/authz"
	"github.com/aussiebroadwan/clinicdesk/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinicdesk/pkg/httpx"
)

type ClinicsHandler struct {
	ClinicService *service.ClinicService
}

// activeOnly reports whether the caller is limited to active clinics.
func activeOnly(r *http.Request) bool {
	id := httpx.IdentityFromContext(r.Context())
	return id == nil || id.Role != authz.RoleAdmin
}

// HandleCreate adds an active clinic.
//
//	@Summary		Create clinic
//	@Tags			Clinics
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.CreateClinicRequest			true	"Clinic details"
//	@Success		201		{object}	clinicsdk.Envelope[clinicsdk.Clinic]	"Created clinic"
//	@Failure		400		{object}	clinicsdk.ErrorResponse					"Validation failed"
//	@Failure		401		{object}	clinicsdk.ErrorResponse					"Missing or invalid token"
//	@Failure		403		{object}	clinicsdk.ErrorResponse					"Admin only"
//	@Router			/clinics [post].
func (h *ClinicsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.CreateClinicRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.ClinicService.Create(r.Context(), service.CreateClinicInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusCreated, "Clinic created successfully", toClinic(c))
}

// HandleList returns clinics. Members only see active ones.
//
//	@Summary		List clinics
//	@Tags			Clinics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clinicsdk.Envelope[[]clinicsdk.Clinic]	"Clinics"
//	@Failure		401	{object}	clinicsdk.ErrorResponse					"Missing or invalid token"
//	@Router			/clinics [get].
func (h *ClinicsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.ClinicService.List(r.Context(), activeOnly(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Success", toClinics(clinics))
}

// HandleGet returns one clinic. Inactive clinics are not found for members.
//
//	@Summary		Get clinic
//	@Tags			Clinics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int										true	"Clinic ID"
//	@Success		200	{object}	clinicsdk.Envelope[clinicsdk.Clinic]	"Clinic"
//	@Failure		401	{object}	clinicsdk.ErrorResponse					"Missing or invalid token"
//	@Failure		404	{object}	clinicsdk.ErrorResponse					"Clinic not found"
//	@Router			/clinics/{id} [get].
func (h *ClinicsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.ClinicService.Get(r.Context(), id, activeOnly(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Success", toClinic(c))
}

// HandleUpdate changes any of name, address and is_active.
//
//	@Summary		Update clinic
//	@Tags			Clinics
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int										true	"Clinic ID"
//	@Param			request	body		clinicsdk.UpdateClinicRequest			true	"Fields to change"
//	@Success		200		{object}	clinicsdk.Envelope[clinicsdk.Clinic]	"Updated clinic"
//	@Failure		400		{object}	clinicsdk.ErrorResponse					"Validation failed"
//	@Failure		401		{object}	clinicsdk.ErrorResponse					"Missing or invalid token"
//	@Failure		403		{object}	clinicsdk.ErrorResponse					"Admin only"
//	@Failure		404		{object}	clinicsdk.ErrorResponse					"Clinic not found"
//	@Router			/clinics/{id} [patch].
func (h *ClinicsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req clinicsdk.UpdateClinicRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.ClinicService.Update(r.Context(), id, domain.ClinicPatch{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Clinic updated successfully", toClinic(c))
}

// HandleDelete removes a clinic.
//
//	@Summary		Delete clinic
//	@Tags			Clinics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Clinic ID"
//	@Success		200	{object}	httpx.Envelope			"Deleted"
//	@Failure		401	{object}	clinicsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	clinicsdk.ErrorResponse	"Admin only"
//	@Failure		404	{object}	clinicsdk.ErrorResponse	"Clinic not found"
//	@Router			/clinics/{id} [delete].
func (h *ClinicsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.ClinicService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Clinic deleted successfully", nil)
}
