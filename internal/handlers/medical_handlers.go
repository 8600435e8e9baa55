package handlers

import (
	"errors"
	"net/http"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MedicalHandler handles allergy and vaccination catalog operations
type MedicalHandler struct {
	common *CommonServices
}

// NewMedicalHandler creates a new medical handler
func NewMedicalHandler(common *CommonServices) *MedicalHandler {
	return &MedicalHandler{common: common}
}

// AllergyResponse represents an allergy in API responses
type AllergyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func toAllergyResponse(a *db.Allergy) AllergyResponse {
	return AllergyResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: helpers.TextOrEmpty(a.Description),
		Active:      a.Active,
		CreatedAt:   a.CreatedAt.Unix(),
		UpdatedAt:   a.UpdatedAt.Unix(),
	}
}

// VaccinationResponse represents a vaccination type in API responses
type VaccinationResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	DurationMonths int32  `json:"duration_months"`
	Active         bool   `json:"active"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

func toVaccinationResponse(v *db.Vaccination) VaccinationResponse {
	return VaccinationResponse{
		ID:             v.ID.String(),
		Name:           v.Name,
		Description:    helpers.TextOrEmpty(v.Description),
		DurationMonths: v.DurationMonths,
		Active:         v.Active,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
}

// CreateAllergyRequest represents the request body for creating an allergy
type CreateAllergyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// UpdateAllergyRequest represents the request body for updating an allergy
type UpdateAllergyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateVaccinationRequest represents the request body for creating a vaccination type
type CreateVaccinationRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description"`
	DurationMonths int32   `json:"duration_months" binding:"required"`
}

// UpdateVaccinationRequest represents the request body for updating a vaccination type
type UpdateVaccinationRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	DurationMonths *int32  `json:"duration_months"`
}

// @Summary Create an allergy
// @Tags medical
// @Accept json
// @Produce json
// @Param request body CreateAllergyRequest true "Allergy details"
// @Success 201 {object} AllergyResponse
// @Security BearerAuth
// @Router /allergies [post]
func (h *MedicalHandler) CreateAllergy(c *gin.Context) {
	var req CreateAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	allergy, err := h.common.Medical.CreateAllergy(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "allergy", &allergy.ID, nil)
	c.JSON(http.StatusCreated, toAllergyResponse(allergy))
}

// @Summary List allergies
// @Tags medical
// @Produce json
// @Param include_inactive query bool false "Include soft-deleted allergies"
// @Success 200 {array} AllergyResponse
// @Security BearerAuth
// @Router /allergies [get]
func (h *MedicalHandler) ListAllergies(c *gin.Context) {
	allergies, err := h.common.Medical.ListAllergies(c.Request.Context(), c.Query("include_inactive") == "true")
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list allergies", err)
		return
	}

	resp := make([]AllergyResponse, 0, len(allergies))
	for i := range allergies {
		resp = append(resp, toAllergyResponse(&allergies[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary Get an allergy
// @Tags medical
// @Produce json
// @Param allergy_id path string true "Allergy ID"
// @Success 200 {object} AllergyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /allergies/{allergy_id} [get]
func (h *MedicalHandler) GetAllergy(c *gin.Context) {
	id, ok := parseUUIDParam(c, "allergy_id")
	if !ok {
		return
	}

	allergy, err := h.common.Medical.GetAllergy(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAllergyNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get allergy", err)
		return
	}
	c.JSON(http.StatusOK, toAllergyResponse(allergy))
}

// @Summary Update an allergy
// @Tags medical
// @Accept json
// @Produce json
// @Param allergy_id path string true "Allergy ID"
// @Param request body UpdateAllergyRequest true "Fields to update"
// @Success 200 {object} AllergyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /allergies/{allergy_id} [put]
func (h *MedicalHandler) UpdateAllergy(c *gin.Context) {
	id, ok := parseUUIDParam(c, "allergy_id")
	if !ok {
		return
	}

	var req UpdateAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	allergy, err := h.common.Medical.UpdateAllergy(c.Request.Context(), services.UpdateAllergyParams{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrAllergyNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "allergy", &id, nil)
	c.JSON(http.StatusOK, toAllergyResponse(allergy))
}

// @Summary Delete an allergy
// @Tags medical
// @Produce json
// @Param allergy_id path string true "Allergy ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /allergies/{allergy_id} [delete]
func (h *MedicalHandler) DeleteAllergy(c *gin.Context) {
	id, ok := parseUUIDParam(c, "allergy_id")
	if !ok {
		return
	}

	if err := h.common.Medical.SetAllergyActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrAllergyNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete allergy", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "allergy", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Allergy deleted"})
}

// @Summary Create a vaccination type
// @Tags medical
// @Accept json
// @Produce json
// @Param request body CreateVaccinationRequest true "Vaccination details"
// @Success 201 {object} VaccinationResponse
// @Security BearerAuth
// @Router /vaccinations [post]
func (h *MedicalHandler) CreateVaccination(c *gin.Context) {
	var req CreateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	vaccination, err := h.common.Medical.CreateVaccination(c.Request.Context(), services.CreateVaccinationParams{
		Name:           req.Name,
		Description:    req.Description,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "vaccination", &vaccination.ID, nil)
	c.JSON(http.StatusCreated, toVaccinationResponse(vaccination))
}

// @Summary List vaccination types
// @Tags medical
// @Produce json
// @Param include_inactive query bool false "Include soft-deleted vaccinations"
// @Success 200 {array} VaccinationResponse
// @Security BearerAuth
// @Router /vaccinations [get]
func (h *MedicalHandler) ListVaccinations(c *gin.Context) {
	vaccinations, err := h.common.Medical.ListVaccinations(c.Request.Context(), c.Query("include_inactive") == "true")
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list vaccinations", err)
		return
	}

	resp := make([]VaccinationResponse, 0, len(vaccinations))
	for i := range vaccinations {
		resp = append(resp, toVaccinationResponse(&vaccinations[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary Get a vaccination type
// @Tags medical
// @Produce json
// @Param vaccination_id path string true "Vaccination ID"
// @Success 200 {object} VaccinationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaccinations/{vaccination_id} [get]
func (h *MedicalHandler) GetVaccination(c *gin.Context) {
	id, ok := parseUUIDParam(c, "vaccination_id")
	if !ok {
		return
	}

	vaccination, err := h.common.Medical.GetVaccination(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVaccinationNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get vaccination", err)
		return
	}
	c.JSON(http.StatusOK, toVaccinationResponse(vaccination))
}

// @Summary Update a vaccination type
// @Tags medical
// @Accept json
// @Produce json
// @Param vaccination_id path string true "Vaccination ID"
// @Param request body UpdateVaccinationRequest true "Fields to update"
// @Success 200 {object} VaccinationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaccinations/{vaccination_id} [put]
func (h *MedicalHandler) UpdateVaccination(c *gin.Context) {
	id, ok := parseUUIDParam(c, "vaccination_id")
	if !ok {
		return
	}

	var req UpdateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	vaccination, err := h.common.Medical.UpdateVaccination(c.Request.Context(), services.UpdateVaccinationParams{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		if errors.Is(err, services.ErrVaccinationNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "vaccination", &id, nil)
	c.JSON(http.StatusOK, toVaccinationResponse(vaccination))
}

// @Summary Delete a vaccination type
// @Tags medical
// @Produce json
// @Param vaccination_id path string true "Vaccination ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaccinations/{vaccination_id} [delete]
func (h *MedicalHandler) DeleteVaccination(c *gin.Context) {
	id, ok := parseUUIDParam(c, "vaccination_id")
	if !ok {
		return
	}

	if err := h.common.Medical.SetVaccinationActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrVaccinationNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete vaccination", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "vaccination", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Vaccination deleted"})
}
