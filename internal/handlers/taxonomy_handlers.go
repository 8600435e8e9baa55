package handlers

import (
	"errors"
	"net/http"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaxonomyHandler handles species and breed operations
type TaxonomyHandler struct {
	common *CommonServices
}

// NewTaxonomyHandler creates a new taxonomy handler
func NewTaxonomyHandler(common *CommonServices) *TaxonomyHandler {
	return &TaxonomyHandler{common: common}
}

// SpeciesResponse represents a species in API responses
type SpeciesResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func toSpeciesResponse(s *db.Species) SpeciesResponse {
	return SpeciesResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Active:    s.Active,
		CreatedAt: s.CreatedAt.Unix(),
		UpdatedAt: s.UpdatedAt.Unix(),
	}
}

// BreedResponse represents a breed in API responses
type BreedResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SpeciesID string `json:"species_id"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func toBreedResponse(b *db.Breed) BreedResponse {
	return BreedResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		SpeciesID: b.SpeciesID.String(),
		Active:    b.Active,
		CreatedAt: b.CreatedAt.Unix(),
		UpdatedAt: b.UpdatedAt.Unix(),
	}
}

// CreateSpeciesRequest represents the request body for creating a species
type CreateSpeciesRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateSpeciesRequest represents the request body for updating a species
type UpdateSpeciesRequest struct {
	Name *string `json:"name"`
}

// CreateBreedRequest represents the request body for creating a breed
type CreateBreedRequest struct {
	Name      string    `json:"name" binding:"required"`
	SpeciesID uuid.UUID `json:"species_id" binding:"required"`
}

// UpdateBreedRequest represents the request body for updating a breed
type UpdateBreedRequest struct {
	Name      *string    `json:"name"`
	SpeciesID *uuid.UUID `json:"species_id"`
}

// @Summary Create a species
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param request body CreateSpeciesRequest true "Species details"
// @Success 201 {object} SpeciesResponse
// @Security BearerAuth
// @Router /species [post]
func (h *TaxonomyHandler) CreateSpecies(c *gin.Context) {
	var req CreateSpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	species, err := h.common.Taxonomy.CreateSpecies(c.Request.Context(), req.Name)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "species", &species.ID, nil)
	c.JSON(http.StatusCreated, toSpeciesResponse(species))
}

// @Summary List species
// @Tags taxonomy
// @Produce json
// @Param include_inactive query bool false "Include soft-deleted species"
// @Success 200 {array} SpeciesResponse
// @Security BearerAuth
// @Router /species [get]
func (h *TaxonomyHandler) ListSpecies(c *gin.Context) {
	species, err := h.common.Taxonomy.ListSpecies(c.Request.Context(), c.Query("include_inactive") == "true")
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list species", err)
		return
	}

	resp := make([]SpeciesResponse, 0, len(species))
	for i := range species {
		resp = append(resp, toSpeciesResponse(&species[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary Get a species
// @Tags taxonomy
// @Produce json
// @Param species_id path string true "Species ID"
// @Success 200 {object} SpeciesResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /species/{species_id} [get]
func (h *TaxonomyHandler) GetSpecies(c *gin.Context) {
	id, ok := parseUUIDParam(c, "species_id")
	if !ok {
		return
	}

	species, err := h.common.Taxonomy.GetSpecies(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSpeciesNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get species", err)
		return
	}
	c.JSON(http.StatusOK, toSpeciesResponse(species))
}

// @Summary Update a species
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param species_id path string true "Species ID"
// @Param request body UpdateSpeciesRequest true "Fields to update"
// @Success 200 {object} SpeciesResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /species/{species_id} [put]
func (h *TaxonomyHandler) UpdateSpecies(c *gin.Context) {
	id, ok := parseUUIDParam(c, "species_id")
	if !ok {
		return
	}

	var req UpdateSpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	species, err := h.common.Taxonomy.UpdateSpecies(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrSpeciesNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "species", &id, nil)
	c.JSON(http.StatusOK, toSpeciesResponse(species))
}

// @Summary Delete a species
// @Tags taxonomy
// @Produce json
// @Param species_id path string true "Species ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /species/{species_id} [delete]
func (h *TaxonomyHandler) DeleteSpecies(c *gin.Context) {
	id, ok := parseUUIDParam(c, "species_id")
	if !ok {
		return
	}

	if err := h.common.Taxonomy.SetSpeciesActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrSpeciesNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete species", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "species", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Species deleted"})
}

// @Summary Create a breed
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param request body CreateBreedRequest true "Breed details"
// @Success 201 {object} BreedResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /breeds [post]
func (h *TaxonomyHandler) CreateBreed(c *gin.Context) {
	var req CreateBreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	breed, err := h.common.Taxonomy.CreateBreed(c.Request.Context(), req.Name, req.SpeciesID)
	if err != nil {
		if errors.Is(err, services.ErrSpeciesNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "breed", &breed.ID, nil)
	c.JSON(http.StatusCreated, toBreedResponse(breed))
}

// @Summary List breeds
// @Tags taxonomy
// @Produce json
// @Param species_id query string false "Filter by species"
// @Param include_inactive query bool false "Include soft-deleted breeds"
// @Success 200 {array} BreedResponse
// @Security BearerAuth
// @Router /breeds [get]
func (h *TaxonomyHandler) ListBreeds(c *gin.Context) {
	var speciesID *uuid.UUID
	if raw := c.Query("species_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid species_id", err)
			return
		}
		speciesID = &id
	}

	breeds, err := h.common.Taxonomy.ListBreeds(c.Request.Context(), c.Query("include_inactive") == "true", speciesID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list breeds", err)
		return
	}

	resp := make([]BreedResponse, 0, len(breeds))
	for i := range breeds {
		resp = append(resp, toBreedResponse(&breeds[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary Get a breed
// @Tags taxonomy
// @Produce json
// @Param breed_id path string true "Breed ID"
// @Success 200 {object} BreedResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /breeds/{breed_id} [get]
func (h *TaxonomyHandler) GetBreed(c *gin.Context) {
	id, ok := parseUUIDParam(c, "breed_id")
	if !ok {
		return
	}

	breed, err := h.common.Taxonomy.GetBreed(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrBreedNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get breed", err)
		return
	}
	c.JSON(http.StatusOK, toBreedResponse(breed))
}

// @Summary Update a breed
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param breed_id path string true "Breed ID"
// @Param request body UpdateBreedRequest true "Fields to update"
// @Success 200 {object} BreedResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /breeds/{breed_id} [put]
func (h *TaxonomyHandler) UpdateBreed(c *gin.Context) {
	id, ok := parseUUIDParam(c, "breed_id")
	if !ok {
		return
	}

	var req UpdateBreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	breed, err := h.common.Taxonomy.UpdateBreed(c.Request.Context(), services.UpdateBreedParams{
		ID:        id,
		Name:      req.Name,
		SpeciesID: req.SpeciesID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBreedNotFound), errors.Is(err, services.ErrSpeciesNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		default:
			sendError(c, http.StatusBadRequest, err.Error(), err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "breed", &id, nil)
	c.JSON(http.StatusOK, toBreedResponse(breed))
}

// @Summary Delete a breed
// @Tags taxonomy
// @Produce json
// @Param breed_id path string true "Breed ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /breeds/{breed_id} [delete]
func (h *TaxonomyHandler) DeleteBreed(c *gin.Context) {
	id, ok := parseUUIDParam(c, "breed_id")
	if !ok {
		return
	}

	if err := h.common.Taxonomy.SetBreedActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrBreedNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete breed", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "breed", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Breed deleted"})
}
