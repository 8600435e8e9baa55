package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PetHandler handles patient (pet) operations
type PetHandler struct {
	common *CommonServices
}

// NewPetHandler creates a new pet handler
func NewPetHandler(common *CommonServices) *PetHandler {
	return &PetHandler{common: common}
}

// PetResponse represents a pet in API responses
type PetResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Gender         string  `json:"gender"`
	Dob            string  `json:"dob"`
	SpeciesID      string  `json:"species_id"`
	BreedID        string  `json:"breed_id"`
	ClientID       string  `json:"client_id"`
	Weight         *string `json:"weight,omitempty"`
	Color          string  `json:"color,omitempty"`
	MedicalHistory string  `json:"medical_history,omitempty"`
	Active         bool    `json:"active"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

func toPetResponse(p *db.Pet) PetResponse {
	resp := PetResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Gender:         p.Gender,
		Dob:            p.Dob.Format("2006-01-02"),
		SpeciesID:      p.SpeciesID.String(),
		BreedID:        p.BreedID.String(),
		ClientID:       p.ClientID.String(),
		Color:          p.Color,
		MedicalHistory: helpers.TextOrEmpty(p.MedicalHistory),
		Active:         p.Active,
		CreatedAt:      p.CreatedAt.Unix(),
		UpdatedAt:      p.UpdatedAt.Unix(),
	}
	if p.Weight.Valid {
		w := helpers.NumericToDecimal(p.Weight).StringFixed(2)
		resp.Weight = &w
	}
	return resp
}

// CreatePetRequest represents the request body for registering a pet
type CreatePetRequest struct {
	Name           string          `json:"name" binding:"required"`
	Gender         string          `json:"gender"`
	Dob            string          `json:"dob" binding:"required"`
	SpeciesID      uuid.UUID       `json:"species_id" binding:"required"`
	BreedID        uuid.UUID       `json:"breed_id" binding:"required"`
	ClientID       uuid.UUID       `json:"client_id" binding:"required"`
	Weight         *helpers.Amount `json:"weight"`
	Color          string          `json:"color"`
	MedicalHistory *string         `json:"medical_history"`
}

// UpdatePetRequest represents the request body for updating a pet
type UpdatePetRequest struct {
	Name           *string         `json:"name"`
	Gender         *string         `json:"gender"`
	Dob            *string         `json:"dob"`
	SpeciesID      *uuid.UUID      `json:"species_id"`
	BreedID        *uuid.UUID      `json:"breed_id"`
	ClientID       *uuid.UUID      `json:"client_id"`
	Weight         *helpers.Amount `json:"weight"`
	Color          *string         `json:"color"`
	MedicalHistory *string         `json:"medical_history"`
}

// @Summary Register a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param request body CreatePetRequest true "Pet details"
// @Success 201 {object} PetResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /pets [post]
func (h *PetHandler) CreatePet(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dob, err := time.Parse("2006-01-02", req.Dob)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid dob, expected YYYY-MM-DD", err)
		return
	}

	var weight *decimal.Decimal
	if req.Weight != nil {
		weight = &req.Weight.Decimal
	}

	pet, err := h.common.Pets.CreatePet(c.Request.Context(), services.CreatePetParams{
		Name:           req.Name,
		Gender:         req.Gender,
		Dob:            dob,
		SpeciesID:      req.SpeciesID,
		BreedID:        req.BreedID,
		ClientID:       req.ClientID,
		Weight:         weight,
		Color:          req.Color,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound),
			errors.Is(err, services.ErrSpeciesNotFound),
			errors.Is(err, services.ErrBreedNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		default:
			sendError(c, http.StatusBadRequest, err.Error(), err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "pet", &pet.ID, nil)
	c.JSON(http.StatusCreated, toPetResponse(pet))
}

// @Summary List pets
// @Tags pets
// @Produce json
// @Param client_id query string false "Filter by owner"
// @Param search query string false "Name fragment"
// @Param include_inactive query bool false "Include soft-deleted pets"
// @Success 200 {array} PetResponse
// @Security BearerAuth
// @Router /pets [get]
func (h *PetHandler) ListPets(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	params := services.ListPetsParams{
		IncludeInactive: c.Query("include_inactive") == "true",
		Search:          c.Query("search"),
		Limit:           pagination.Limit,
		Offset:          pagination.Offset,
	}
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid client_id", err)
			return
		}
		params.ClientID = &clientID
	}

	pets, total, err := h.common.Pets.ListPets(c.Request.Context(), params)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list pets", err)
		return
	}

	resp := make([]PetResponse, 0, len(pets))
	for i := range pets {
		resp = append(resp, toPetResponse(&pets[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "meta": listMeta(total, pagination)})
}

// @Summary Get a pet
// @Tags pets
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {object} PetResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pets/{pet_id} [get]
func (h *PetHandler) GetPet(c *gin.Context) {
	id, ok := parseUUIDParam(c, "pet_id")
	if !ok {
		return
	}

	pet, err := h.common.Pets.GetPet(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get pet", err)
		return
	}
	c.JSON(http.StatusOK, toPetResponse(pet))
}

// @Summary Update a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Param request body UpdatePetRequest true "Fields to update"
// @Success 200 {object} PetResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pets/{pet_id} [put]
func (h *PetHandler) UpdatePet(c *gin.Context) {
	id, ok := parseUUIDParam(c, "pet_id")
	if !ok {
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := services.UpdatePetParams{
		ID:             id,
		Name:           req.Name,
		Gender:         req.Gender,
		SpeciesID:      req.SpeciesID,
		BreedID:        req.BreedID,
		ClientID:       req.ClientID,
		Color:          req.Color,
		MedicalHistory: req.MedicalHistory,
	}
	if req.Dob != nil {
		dob, err := time.Parse("2006-01-02", *req.Dob)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid dob, expected YYYY-MM-DD", err)
			return
		}
		params.Dob = &dob
	}
	if req.Weight != nil {
		params.Weight = &req.Weight.Decimal
	}

	pet, err := h.common.Pets.UpdatePet(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetNotFound),
			errors.Is(err, services.ErrClientNotFound),
			errors.Is(err, services.ErrSpeciesNotFound),
			errors.Is(err, services.ErrBreedNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		default:
			sendError(c, http.StatusBadRequest, err.Error(), err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "pet", &id, nil)
	c.JSON(http.StatusOK, toPetResponse(pet))
}

// @Summary Delete a pet
// @Description Soft-delete; the pet can be restored later
// @Tags pets
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pets/{pet_id} [delete]
func (h *PetHandler) DeletePet(c *gin.Context) {
	id, ok := parseUUIDParam(c, "pet_id")
	if !ok {
		return
	}

	if err := h.common.Pets.SetPetActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete pet", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "pet", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Pet deleted"})
}

// @Summary Restore a pet
// @Tags pets
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pets/{pet_id}/restore [post]
func (h *PetHandler) RestorePet(c *gin.Context) {
	id, ok := parseUUIDParam(c, "pet_id")
	if !ok {
		return
	}

	if err := h.common.Pets.SetPetActive(c.Request.Context(), id, true); err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to restore pet", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "restore", "pet", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Pet restored"})
}
