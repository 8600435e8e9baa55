package handlers

import (
	"errors"
	"net/http"

	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler handles staff management (admin only)
type UserHandler struct {
	common *CommonServices
}

// NewUserHandler creates a new user handler
func NewUserHandler(common *CommonServices) *UserHandler {
	return &UserHandler{common: common}
}

// UpdateUserRequest represents the request body for updating a user
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
}

// @Summary List staff accounts
// @Tags users
// @Produce json
// @Success 200 {array} UserResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	includeInactive := c.Query("include_inactive") == "true"

	users, err := h.common.Users.ListUsers(c.Request.Context(), includeInactive, pagination.Limit, pagination.Offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary Get a staff account
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{user_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := h.common.Users.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get user", err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary Update a staff account
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{user_id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.common.Users.UpdateUser(c.Request.Context(), services.UpdateUserParams{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "user", &id, nil)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary Deactivate a staff account
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{user_id} [delete]
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.common.Users.SetUserActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to deactivate user", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "deactivate", "user", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "User deactivated"})
}

// @Summary Restore a staff account
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{user_id}/restore [post]
func (h *UserHandler) RestoreUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.common.Users.SetUserActive(c.Request.Context(), id, true); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to restore user", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "restore", "user", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "User restored"})
}
