package handlers

import (
	"errors"
	"net/http"

	"github.com/dogtorvet/dogtorvet-api/internal/auth"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and token refresh
type AuthHandler struct {
	common *CommonServices
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(common *CommonServices) *AuthHandler {
	return &AuthHandler{common: common}
}

// UserResponse represents a staff account in API responses
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func toUserResponse(u *db.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.Unix(),
		UpdatedAt: u.UpdatedAt.Unix(),
	}
}

// RegisterRequest represents the request body for registering a user
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the authenticated user and its token pair
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// RefreshRequest represents the request body for refreshing tokens
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents the request body for changing a password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// @Summary Register a staff account
// @Description Create a new staff account (admin only)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.common.Users.Register(c.Request.Context(), services.RegisterParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			sendError(c, http.StatusConflict, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "user", &user.ID, nil)
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// @Summary Log in
// @Description Exchange credentials for an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, pair, err := h.common.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendError(c, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User:         toUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} services.TokenPair
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	pair, err := h.common.Users.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrWrongTokenType) {
			sendError(c, http.StatusUnauthorized, "Invalid or expired refresh token", nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Refresh failed", err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := currentUserID(c)
	if userID == nil {
		sendError(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	user, err := h.common.Users.GetUser(c.Request.Context(), *userID)
	if err != nil {
		sendError(c, http.StatusNotFound, "User not found", err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary Log out
// @Description Tokens are stateless; logout records the event and the client discards its tokens
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := currentUserID(c)
	if userID == nil {
		sendError(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	h.common.Audit.Record(c.Request.Context(), userID, "logout", "user", userID, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out"})
}

// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := currentUserID(c)
	if userID == nil {
		sendError(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.common.Users.ChangePassword(c.Request.Context(), *userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendError(c, http.StatusUnauthorized, "Current password is incorrect", nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Password updated"})
}
