package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createAuditLog = `
INSERT INTO audit_logs (user_id, action, entity_type, entity_id, details)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, action, entity_type, entity_id, details, created_at
`

type CreateAuditLogParams struct {
	UserID     pgtype.UUID
	Action     string
	EntityType string
	EntityID   pgtype.UUID
	Details    []byte
}

func (q *Queries) CreateAuditLog(ctx context.Context, arg CreateAuditLogParams) (AuditLog, error) {
	row := q.db.QueryRow(ctx, createAuditLog, arg.UserID, arg.Action, arg.EntityType, arg.EntityID, arg.Details)
	var i AuditLog
	err := row.Scan(&i.ID, &i.UserID, &i.Action, &i.EntityType, &i.EntityID, &i.Details, &i.CreatedAt)
	return i, err
}

const listAuditLogs = `
SELECT id, user_id, action, entity_type, entity_id, details, created_at
FROM audit_logs
WHERE ($1::text = '' OR entity_type = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListAuditLogsParams struct {
	EntityType string
	Limit      int32
	Offset     int32
}

func (q *Queries) ListAuditLogs(ctx context.Context, arg ListAuditLogsParams) ([]AuditLog, error) {
	rows, err := q.db.Query(ctx, listAuditLogs, arg.EntityType, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AuditLog
	for rows.Next() {
		var i AuditLog
		if err := rows.Scan(&i.ID, &i.UserID, &i.Action, &i.EntityType, &i.EntityID, &i.Details, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
