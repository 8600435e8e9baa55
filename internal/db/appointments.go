package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createAppointment = `
INSERT INTO appointments (client_id, pet_id, service_id, user_id, appointment_date, duration_minutes, status, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, client_id, pet_id, service_id, user_id, appointment_date, duration_minutes, status, notes, diagnosis, treatment, active, created_at, updated_at
`

type CreateAppointmentParams struct {
	ClientID        uuid.UUID
	PetID           uuid.UUID
	ServiceID       pgtype.UUID
	UserID          pgtype.UUID
	AppointmentDate time.Time
	DurationMinutes int32
	Status          string
	Notes           pgtype.Text
}

func (q *Queries) CreateAppointment(ctx context.Context, arg CreateAppointmentParams) (Appointment, error) {
	row := q.db.QueryRow(ctx, createAppointment,
		arg.ClientID, arg.PetID, arg.ServiceID, arg.UserID, arg.AppointmentDate, arg.DurationMinutes, arg.Status, arg.Notes)
	var i Appointment
	err := row.Scan(&i.ID, &i.ClientID, &i.PetID, &i.ServiceID, &i.UserID, &i.AppointmentDate, &i.DurationMinutes, &i.Status, &i.Notes, &i.Diagnosis, &i.Treatment, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getAppointment = `
SELECT id, client_id, pet_id, service_id, user_id, appointment_date, duration_minutes, status, notes, diagnosis, treatment, active, created_at, updated_at
FROM appointments WHERE id = $1
`

func (q *Queries) GetAppointment(ctx context.Context, id uuid.UUID) (Appointment, error) {
	row := q.db.QueryRow(ctx, getAppointment, id)
	var i Appointment
	err := row.Scan(&i.ID, &i.ClientID, &i.PetID, &i.ServiceID, &i.UserID, &i.AppointmentDate, &i.DurationMinutes, &i.Status, &i.Notes, &i.Diagnosis, &i.Treatment, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listAppointments = `
SELECT id, client_id, pet_id, service_id, user_id, appointment_date, duration_minutes, status, notes, diagnosis, treatment, active, created_at, updated_at
FROM appointments
WHERE (active OR $1::bool)
  AND ($2::uuid IS NULL OR client_id = $2)
  AND ($3::text = '' OR status = $3)
  AND ($4::timestamptz IS NULL OR appointment_date >= $4)
  AND ($5::timestamptz IS NULL OR appointment_date < $5)
ORDER BY appointment_date DESC
LIMIT $6 OFFSET $7
`

type ListAppointmentsParams struct {
	IncludeInactive bool
	ClientID        pgtype.UUID
	Status          string
	From            pgtype.Timestamptz
	To              pgtype.Timestamptz
	Limit           int32
	Offset          int32
}

func (q *Queries) ListAppointments(ctx context.Context, arg ListAppointmentsParams) ([]Appointment, error) {
	rows, err := q.db.Query(ctx, listAppointments,
		arg.IncludeInactive, arg.ClientID, arg.Status, arg.From, arg.To, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Appointment
	for rows.Next() {
		var i Appointment
		if err := rows.Scan(&i.ID, &i.ClientID, &i.PetID, &i.ServiceID, &i.UserID, &i.AppointmentDate, &i.DurationMinutes, &i.Status, &i.Notes, &i.Diagnosis, &i.Treatment, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listUpcomingAppointments = `
SELECT id, client_id, pet_id, service_id, user_id, appointment_date, duration_minutes, status, notes, diagnosis, treatment, active, created_at, updated_at
FROM appointments
WHERE active AND status IN ('scheduled', 'confirmed') AND appointment_date >= now()
ORDER BY appointment_date
LIMIT $1
`

func (q *Queries) ListUpcomingAppointments(ctx context.Context, limit int32) ([]Appointment, error) {
	rows, err := q.db.Query(ctx, listUpcomingAppointments, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Appointment
	for rows.Next() {
		var i Appointment
		if err := rows.Scan(&i.ID, &i.ClientID, &i.PetID, &i.ServiceID, &i.UserID, &i.AppointmentDate, &i.DurationMinutes, &i.Status, &i.Notes, &i.Diagnosis, &i.Treatment, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateAppointment = `
UPDATE appointments SET
    service_id       = COALESCE($2, service_id),
    user_id          = COALESCE($3, user_id),
    appointment_date = COALESCE($4, appointment_date),
    duration_minutes = COALESCE($5, duration_minutes),
    status           = COALESCE($6, status),
    notes            = COALESCE($7, notes),
    diagnosis        = COALESCE($8, diagnosis),
    treatment        = COALESCE($9, treatment),
    updated_at       = now()
WHERE id = $1
RETURNING id, client_id, pet_id, service_id, user_id, appointment_date, duration_minutes, status, notes, diagnosis, treatment, active, created_at, updated_at
`

type UpdateAppointmentParams struct {
	ID              uuid.UUID
	ServiceID       pgtype.UUID
	UserID          pgtype.UUID
	AppointmentDate pgtype.Timestamptz
	DurationMinutes pgtype.Int4
	Status          pgtype.Text
	Notes           pgtype.Text
	Diagnosis       pgtype.Text
	Treatment       pgtype.Text
}

func (q *Queries) UpdateAppointment(ctx context.Context, arg UpdateAppointmentParams) (Appointment, error) {
	row := q.db.QueryRow(ctx, updateAppointment,
		arg.ID, arg.ServiceID, arg.UserID, arg.AppointmentDate, arg.DurationMinutes, arg.Status, arg.Notes, arg.Diagnosis, arg.Treatment)
	var i Appointment
	err := row.Scan(&i.ID, &i.ClientID, &i.PetID, &i.ServiceID, &i.UserID, &i.AppointmentDate, &i.DurationMinutes, &i.Status, &i.Notes, &i.Diagnosis, &i.Treatment, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setAppointmentActive = `
UPDATE appointments SET active = $2, updated_at = now() WHERE id = $1
`

type SetAppointmentActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetAppointmentActive(ctx context.Context, arg SetAppointmentActiveParams) error {
	_, err := q.db.Exec(ctx, setAppointmentActive, arg.ID, arg.Active)
	return err
}
