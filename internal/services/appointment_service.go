package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dogtorvet/dogtorvet-api/internal/constants"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// ErrAppointmentNotFound is returned when the requested appointment does not exist
var ErrAppointmentNotFound = errors.New("appointment not found")

var appointmentStatuses = map[string]bool{
	constants.AppointmentScheduled:  true,
	constants.AppointmentConfirmed:  true,
	constants.AppointmentInProgress: true,
	constants.AppointmentCompleted:  true,
	constants.AppointmentCancelled:  true,
}

// AppointmentService handles visit scheduling and the visit record
// (diagnosis/treatment) filled in during the appointment.
type AppointmentService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(queries db.Querier) *AppointmentService {
	return &AppointmentService{queries: queries, logger: logger.Log}
}

// CreateAppointmentParams contains parameters for scheduling an appointment
type CreateAppointmentParams struct {
	ClientID        uuid.UUID
	PetID           uuid.UUID
	ServiceID       *uuid.UUID
	UserID          *uuid.UUID
	AppointmentDate time.Time
	DurationMinutes int32
	Notes           *string
}

// CreateAppointment schedules a visit. The pet must belong to the client.
func (s *AppointmentService) CreateAppointment(ctx context.Context, params CreateAppointmentParams) (*db.Appointment, error) {
	if params.AppointmentDate.IsZero() {
		return nil, errors.New("appointment date is required")
	}
	if params.DurationMinutes < 1 {
		return nil, errors.New("duration must be at least one minute")
	}

	pet, err := s.queries.GetPet(ctx, params.PetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to verify pet: %w", err)
	}
	if pet.ClientID != params.ClientID {
		return nil, errors.New("pet does not belong to the given client")
	}

	appointment, err := s.queries.CreateAppointment(ctx, db.CreateAppointmentParams{
		ClientID:        params.ClientID,
		PetID:           params.PetID,
		ServiceID:       helpers.UUIDFromPtr(params.ServiceID),
		UserID:          helpers.UUIDFromPtr(params.UserID),
		AppointmentDate: params.AppointmentDate,
		DurationMinutes: params.DurationMinutes,
		Status:          constants.AppointmentScheduled,
		Notes:           helpers.TextFromPtr(params.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.logger.Info("Appointment scheduled",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("pet_id", appointment.PetID.String()),
		zap.Time("date", appointment.AppointmentDate),
	)
	return &appointment, nil
}

// GetAppointment returns a single appointment.
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*db.Appointment, error) {
	appointment, err := s.queries.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// ListAppointmentsParams contains parameters for listing appointments
type ListAppointmentsParams struct {
	IncludeInactive bool
	ClientID        *uuid.UUID
	Status          string
	From            *time.Time
	To              *time.Time
	Limit           int32
	Offset          int32
}

// ListAppointments returns appointments filtered by client, status and date
// window.
func (s *AppointmentService) ListAppointments(ctx context.Context, params ListAppointmentsParams) ([]db.Appointment, error) {
	if params.Status != "" && !appointmentStatuses[params.Status] {
		return nil, fmt.Errorf("unknown status %q", params.Status)
	}

	arg := db.ListAppointmentsParams{
		IncludeInactive: params.IncludeInactive,
		ClientID:        helpers.UUIDFromPtr(params.ClientID),
		Status:          params.Status,
		Limit:           params.Limit,
		Offset:          params.Offset,
	}
	if params.From != nil {
		arg.From = pgtype.Timestamptz{Time: *params.From, Valid: true}
	}
	if params.To != nil {
		arg.To = pgtype.Timestamptz{Time: *params.To, Valid: true}
	}

	appointments, err := s.queries.ListAppointments(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// ListUpcomingAppointments returns the next scheduled or confirmed visits,
// soonest first, for the dashboard.
func (s *AppointmentService) ListUpcomingAppointments(ctx context.Context, limit int32) ([]db.Appointment, error) {
	appointments, err := s.queries.ListUpcomingAppointments(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming appointments: %w", err)
	}
	return appointments, nil
}

// UpdateAppointmentParams contains the editable fields of an appointment.
type UpdateAppointmentParams struct {
	ID              uuid.UUID
	ServiceID       *uuid.UUID
	UserID          *uuid.UUID
	AppointmentDate *time.Time
	DurationMinutes *int32
	Status          *string
	Notes           *string
	Diagnosis       *string
	Treatment       *string
}

// UpdateAppointment applies a partial update, including status moves and the
// visit record.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, params UpdateAppointmentParams) (*db.Appointment, error) {
	if params.Status != nil && !appointmentStatuses[*params.Status] {
		return nil, fmt.Errorf("unknown status %q", *params.Status)
	}
	if params.DurationMinutes != nil && *params.DurationMinutes < 1 {
		return nil, errors.New("duration must be at least one minute")
	}

	arg := db.UpdateAppointmentParams{
		ID:              params.ID,
		ServiceID:       helpers.UUIDFromPtr(params.ServiceID),
		UserID:          helpers.UUIDFromPtr(params.UserID),
		DurationMinutes: helpers.Int4FromPtr(params.DurationMinutes),
		Status:          helpers.TextFromPtr(params.Status),
		Notes:           helpers.TextFromPtr(params.Notes),
		Diagnosis:       helpers.TextFromPtr(params.Diagnosis),
		Treatment:       helpers.TextFromPtr(params.Treatment),
	}
	if params.AppointmentDate != nil {
		arg.AppointmentDate = pgtype.Timestamptz{Time: *params.AppointmentDate, Valid: true}
	}

	appointment, err := s.queries.UpdateAppointment(ctx, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &appointment, nil
}

// CancelAppointment is a convenience wrapper that moves an appointment to
// cancelled.
func (s *AppointmentService) CancelAppointment(ctx context.Context, id uuid.UUID) (*db.Appointment, error) {
	status := constants.AppointmentCancelled
	return s.UpdateAppointment(ctx, UpdateAppointmentParams{ID: id, Status: &status})
}

// SetAppointmentActive soft-deletes or restores an appointment.
func (s *AppointmentService) SetAppointmentActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetAppointment(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetAppointmentActive(ctx, db.SetAppointmentActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set appointment active: %w", err)
	}
	return nil
}
