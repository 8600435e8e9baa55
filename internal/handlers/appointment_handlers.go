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
)

// AppointmentHandler handles appointment scheduling operations
type AppointmentHandler struct {
	common *CommonServices
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(common *CommonServices) *AppointmentHandler {
	return &AppointmentHandler{common: common}
}

// AppointmentResponse represents an appointment in API responses
type AppointmentResponse struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"client_id"`
	PetID           string  `json:"pet_id"`
	ServiceID       *string `json:"service_id,omitempty"`
	UserID          *string `json:"user_id,omitempty"`
	AppointmentDate string  `json:"appointment_date"`
	DurationMinutes int32   `json:"duration_minutes"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes,omitempty"`
	Diagnosis       string  `json:"diagnosis,omitempty"`
	Treatment       string  `json:"treatment,omitempty"`
	Active          bool    `json:"active"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

func toAppointmentResponse(a *db.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:              a.ID.String(),
		ClientID:        a.ClientID.String(),
		PetID:           a.PetID.String(),
		AppointmentDate: a.AppointmentDate.Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status,
		Notes:           helpers.TextOrEmpty(a.Notes),
		Diagnosis:       helpers.TextOrEmpty(a.Diagnosis),
		Treatment:       helpers.TextOrEmpty(a.Treatment),
		Active:          a.Active,
		CreatedAt:       a.CreatedAt.Unix(),
		UpdatedAt:       a.UpdatedAt.Unix(),
	}
	if a.ServiceID.Valid {
		s := uuid.UUID(a.ServiceID.Bytes).String()
		resp.ServiceID = &s
	}
	if a.UserID.Valid {
		u := uuid.UUID(a.UserID.Bytes).String()
		resp.UserID = &u
	}
	return resp
}

// CreateAppointmentRequest represents the request body for scheduling an appointment
type CreateAppointmentRequest struct {
	ClientID        uuid.UUID  `json:"client_id" binding:"required"`
	PetID           uuid.UUID  `json:"pet_id" binding:"required"`
	ServiceID       *uuid.UUID `json:"service_id"`
	UserID          *uuid.UUID `json:"user_id"`
	AppointmentDate time.Time  `json:"appointment_date" binding:"required"`
	DurationMinutes int32      `json:"duration_minutes" binding:"required"`
	Notes           *string    `json:"notes"`
}

// UpdateAppointmentRequest represents the request body for updating an appointment
type UpdateAppointmentRequest struct {
	ServiceID       *uuid.UUID `json:"service_id"`
	UserID          *uuid.UUID `json:"user_id"`
	AppointmentDate *time.Time `json:"appointment_date"`
	DurationMinutes *int32     `json:"duration_minutes"`
	Status          *string    `json:"status"`
	Notes           *string    `json:"notes"`
	Diagnosis       *string    `json:"diagnosis"`
	Treatment       *string    `json:"treatment"`
}

// @Summary Schedule an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body CreateAppointmentRequest true "Appointment details"
// @Success 201 {object} AppointmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	appointment, err := h.common.Appointments.CreateAppointment(c.Request.Context(), services.CreateAppointmentParams{
		ClientID:        req.ClientID,
		PetID:           req.PetID,
		ServiceID:       req.ServiceID,
		UserID:          req.UserID,
		AppointmentDate: req.AppointmentDate,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound),
			errors.Is(err, services.ErrPetNotFound),
			errors.Is(err, services.ErrServiceNotFound):
			sendError(c, http.StatusNotFound, err.Error(), nil)
		default:
			sendError(c, http.StatusBadRequest, err.Error(), err)
		}
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "create", "appointment", &appointment.ID, nil)
	c.JSON(http.StatusCreated, toAppointmentResponse(appointment))
}

// @Summary List appointments
// @Tags appointments
// @Produce json
// @Param client_id query string false "Filter by client"
// @Param status query string false "Filter by status"
// @Param from query string false "Start of date range (RFC 3339)"
// @Param to query string false "End of date range (RFC 3339)"
// @Param include_inactive query bool false "Include cancelled-and-removed appointments"
// @Success 200 {array} AppointmentResponse
// @Security BearerAuth
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	params := services.ListAppointmentsParams{
		IncludeInactive: c.Query("include_inactive") == "true",
		Status:          c.Query("status"),
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
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid from, expected RFC 3339", err)
			return
		}
		params.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid to, expected RFC 3339", err)
			return
		}
		params.To = &to
	}

	appointments, err := h.common.Appointments.ListAppointments(c.Request.Context(), params)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list appointments", err)
		return
	}

	resp := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		resp = append(resp, toAppointmentResponse(&appointments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary List upcoming appointments
// @Description Scheduled and confirmed appointments from now onward
// @Tags appointments
// @Produce json
// @Success 200 {array} AppointmentResponse
// @Security BearerAuth
// @Router /appointments/upcoming [get]
func (h *AppointmentHandler) ListUpcomingAppointments(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	appointments, err := h.common.Appointments.ListUpcomingAppointments(c.Request.Context(), pagination.Limit)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list upcoming appointments", err)
		return
	}

	resp := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		resp = append(resp, toAppointmentResponse(&appointments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary Get an appointment
// @Tags appointments
// @Produce json
// @Param appointment_id path string true "Appointment ID"
// @Success 200 {object} AppointmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments/{appointment_id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "appointment_id")
	if !ok {
		return
	}

	appointment, err := h.common.Appointments.GetAppointment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get appointment", err)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(appointment))
}

// @Summary Update an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment_id path string true "Appointment ID"
// @Param request body UpdateAppointmentRequest true "Fields to update"
// @Success 200 {object} AppointmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments/{appointment_id} [put]
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "appointment_id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	appointment, err := h.common.Appointments.UpdateAppointment(c.Request.Context(), services.UpdateAppointmentParams{
		ID:              id,
		ServiceID:       req.ServiceID,
		UserID:          req.UserID,
		AppointmentDate: req.AppointmentDate,
		DurationMinutes: req.DurationMinutes,
		Status:          req.Status,
		Notes:           req.Notes,
		Diagnosis:       req.Diagnosis,
		Treatment:       req.Treatment,
	})
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "update", "appointment", &id, nil)
	c.JSON(http.StatusOK, toAppointmentResponse(appointment))
}

// @Summary Cancel an appointment
// @Tags appointments
// @Produce json
// @Param appointment_id path string true "Appointment ID"
// @Success 200 {object} AppointmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments/{appointment_id}/cancel [post]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "appointment_id")
	if !ok {
		return
	}

	appointment, err := h.common.Appointments.CancelAppointment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to cancel appointment", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "cancel", "appointment", &id, nil)
	c.JSON(http.StatusOK, toAppointmentResponse(appointment))
}

// @Summary Delete an appointment
// @Description Soft-delete; the appointment can be restored later
// @Tags appointments
// @Produce json
// @Param appointment_id path string true "Appointment ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments/{appointment_id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "appointment_id")
	if !ok {
		return
	}

	if err := h.common.Appointments.SetAppointmentActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			sendError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete appointment", err)
		return
	}

	h.common.Audit.Record(c.Request.Context(), currentUserID(c), "delete", "appointment", &id, nil)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Appointment deleted"})
}
