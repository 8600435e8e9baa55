package handlers

import (
	"errors"
	"net/http"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles pet-owner operations
type ClientHandler struct {
	common *CommonServices
}

// NewClientHandler creates a new client handler
func NewClientHandler(common *CommonServices) *ClientHandler {
	return &ClientHandler{common: common}
}

// ClientResponse represents a pet owner in API responses
type ClientResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Gender           string `json:"gender"`
	PhoneNumber      string `json:"phone_number"`
	OtherContactInfo string `json:"other_contact_info,omitempty"`
	Active           bool   `json:"active"`
	CreatedAt        int64  `json:"created_at"`
	UpdatedAt        int64  `json:"updated_at"`
}

func toClientResponse(cl *db.Client) ClientResponse {
	return ClientResponse{
		ID:               cl.ID.String(),
		Name:             cl.Name,
		Gender:           cl.Gender,
		PhoneNumber:      cl.PhoneNumber,
		OtherContactInfo: helpers.TextOrEmpty(cl.OtherContactInfo),
		Active:           cl.Active,
		CreatedAt:        cl.CreatedAt.Unix(),
		UpdatedAt:        cl.UpdatedAt.Unix(),
	}
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	Name             string  `json:"name" binding:"required"`
	Gender           string  `json:"gender"`
	PhoneNumber      string  `json:"phone_number" binding:"required"`
	OtherContactInfo *string `json:"other_contact_info"`
}

// UpdateClientRequest represents the request body for updating a client
type UpdateClientRequest struct {
	Name             *string `json:"name"`
	Gender           *string `json:"gender"`
	PhoneNumber      *string `json:"phone_number"`
	OtherContactInfo *string `json:"other_contact_info"`
}

// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body CreateClientRequest true "Client details"
// @Success 201 {object} ClientResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	client, err := h.common.Clients.CreateClient(c.Request.Context(), services.CreateClientParams{
		Name:             req.Name,
		Gender:           req.Gender,
		PhoneNumber:      req.PhoneNumber,
		OtherContactInfo: req.OtherContactInfo,
	})
	if err != nil {
		if errors.Is(err, services.ErrPhoneNumberTaken) {
			sendError(c, http.StatusConflict, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "client", &client.ID, nil)
	c.JSON(http.StatusCreated, toClientResponse(client))
}

// @Summary List clients
// @Description List pet owners, searchable by name or phone number
// @Tags clients
// @Produce json
// @Param search query string false "Name or phone fragment"
// @Param include_inactive query bool false "Include soft-deleted clients"
// @Success 200 {array} ClientResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	clients, total, err := h.common.Clients.ListClients(c.Request.Context(), services.ListClientsParams{
		IncludeInactive: c.Query("include_inactive") == "true",
		Search:          c.Query("search"),
		Limit:           pagination.Limit,
		Offset:          pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list clients", err)
		return
	}

	resp := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, toClientResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "meta": listMeta(total, pagination)})
}

// @Summary Get a client
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseUUIDParam(c, "client_id")
	if !ok {
		return
	}

	client, err := h.common.Clients.GetClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get client", err)
		return
	}
	c.JSON(http.StatusOK, toClientResponse(client))
}

// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param request body UpdateClientRequest true "Fields to update"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseUUIDParam(c, "client_id")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	client, err := h.common.Clients.UpdateClient(c.Request.Context(), services.UpdateClientParams{
		ID:               id,
		Name:             req.Name,
		Gender:           req.Gender,
		PhoneNumber:      req.PhoneNumber,
		OtherContactInfo: req.OtherContactInfo,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, services.ErrPhoneNumberTaken):
			sendError(c, http.StatusConflict, err.Error(), nil)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to update client", err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "client", &id, nil)
	c.JSON(http.StatusOK, toClientResponse(client))
}

// @Summary Delete a client
// @Description Soft-delete; the client can be restored later
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseUUIDParam(c, "client_id")
	if !ok {
		return
	}

	if err := h.common.Clients.SetClientActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete client", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "client", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Client deleted"})
}

// @Summary Restore a client
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/restore [post]
func (h *ClientHandler) RestoreClient(c *gin.Context) {
	id, ok := parseUUIDParam(c, "client_id")
	if !ok {
		return
	}

	if err := h.common.Clients.SetClientActive(c.Request.Context(), id, true); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to restore client", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "restore", "client", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Client restored"})
}
