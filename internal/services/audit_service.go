package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuditService records who changed what. Recording is best-effort: a failed
// audit write is logged but never fails the operation it describes.
type AuditService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(queries db.Querier) *AuditService {
	return &AuditService{queries: queries, logger: logger.Log}
}

// Record writes one audit entry. Details may be nil.
func (s *AuditService) Record(ctx context.Context, userID *uuid.UUID, action, entityType string, entityID *uuid.UUID, details map[string]interface{}) {
	var payload []byte
	if details != nil {
		var err error
		if payload, err = json.Marshal(details); err != nil {
			s.logger.Warn("Failed to marshal audit details", zap.Error(err))
			payload = nil
		}
	}

	_, err := s.queries.CreateAuditLog(ctx, db.CreateAuditLogParams{
		UserID:     helpers.UUIDFromPtr(userID),
		Action:     action,
		EntityType: entityType,
		EntityID:   helpers.UUIDFromPtr(entityID),
		Details:    payload,
	})
	if err != nil {
		s.logger.Warn("Failed to write audit log",
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.Error(err),
		)
	}
}

// ListAuditLogs returns a page of audit entries, optionally filtered by
// entity type.
func (s *AuditService) ListAuditLogs(ctx context.Context, entityType string, limit, offset int32) ([]db.AuditLog, error) {
	logs, err := s.queries.ListAuditLogs(ctx, db.ListAuditLogsParams{
		EntityType: entityType,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}
