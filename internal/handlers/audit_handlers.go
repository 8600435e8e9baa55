package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditHandler handles audit log queries
type AuditHandler struct {
	common *CommonServices
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(common *CommonServices) *AuditHandler {
	return &AuditHandler{common: common}
}

// AuditLogResponse represents one audit entry in API responses
type AuditLogResponse struct {
	ID         string                 `json:"id"`
	UserID     *string                `json:"user_id,omitempty"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   *string                `json:"entity_id,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  string                 `json:"created_at"`
}

func toAuditLogResponse(l *db.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:         l.ID.String(),
		Action:     l.Action,
		EntityType: l.EntityType,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
	if l.UserID.Valid {
		u := uuid.UUID(l.UserID.Bytes).String()
		resp.UserID = &u
	}
	if l.EntityID.Valid {
		e := uuid.UUID(l.EntityID.Bytes).String()
		resp.EntityID = &e
	}
	if len(l.Details) > 0 {
		// details are stored as JSON; a decode failure leaves them out
		_ = json.Unmarshal(l.Details, &resp.Details)
	}
	return resp
}

// @Summary List audit log entries
// @Tags audit
// @Produce json
// @Param entity_type query string false "Filter by entity type"
// @Success 200 {array} AuditLogResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	logs, err := h.common.Audit.ListAuditLogs(c.Request.Context(), c.Query("entity_type"), pagination.Limit, pagination.Offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list audit logs", err)
		return
	}

	resp := make([]AuditLogResponse, 0, len(logs))
	for i := range logs {
		resp = append(resp, toAuditLogResponse(&logs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
