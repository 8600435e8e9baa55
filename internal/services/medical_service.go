package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	// ErrAllergyNotFound is returned when the requested allergy does not exist
	ErrAllergyNotFound = errors.New("allergy not found")
	// ErrVaccinationNotFound is returned when the requested vaccination does not exist
	ErrVaccinationNotFound = errors.New("vaccination not found")
)

// MedicalService manages the allergy and vaccination reference catalogs.
type MedicalService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewMedicalService creates a new medical service
func NewMedicalService(queries db.Querier) *MedicalService {
	return &MedicalService{queries: queries, logger: logger.Log}
}

// CreateAllergy adds an allergy definition.
func (s *MedicalService) CreateAllergy(ctx context.Context, name string, description *string) (*db.Allergy, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	allergy, err := s.queries.CreateAllergy(ctx, db.CreateAllergyParams{
		Name:        name,
		Description: helpers.TextFromPtr(description),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create allergy: %w", err)
	}
	s.logger.Info("Allergy created", zap.String("allergy_id", allergy.ID.String()))
	return &allergy, nil
}

// GetAllergy returns a single allergy.
func (s *MedicalService) GetAllergy(ctx context.Context, id uuid.UUID) (*db.Allergy, error) {
	allergy, err := s.queries.GetAllergy(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAllergyNotFound
		}
		return nil, fmt.Errorf("failed to get allergy: %w", err)
	}
	return &allergy, nil
}

// ListAllergies returns all allergy definitions.
func (s *MedicalService) ListAllergies(ctx context.Context, includeInactive bool) ([]db.Allergy, error) {
	allergies, err := s.queries.ListAllergies(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list allergies: %w", err)
	}
	return allergies, nil
}

// UpdateAllergyParams contains the editable fields of an allergy.
type UpdateAllergyParams struct {
	ID          uuid.UUID
	Name        *string
	Description *string
}

// UpdateAllergy applies a partial update.
func (s *MedicalService) UpdateAllergy(ctx context.Context, params UpdateAllergyParams) (*db.Allergy, error) {
	allergy, err := s.queries.UpdateAllergy(ctx, db.UpdateAllergyParams{
		ID:          params.ID,
		Name:        helpers.TextFromPtr(params.Name),
		Description: helpers.TextFromPtr(params.Description),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAllergyNotFound
		}
		return nil, fmt.Errorf("failed to update allergy: %w", err)
	}
	return &allergy, nil
}

// SetAllergyActive soft-deletes or restores an allergy.
func (s *MedicalService) SetAllergyActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetAllergy(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetAllergyActive(ctx, db.SetAllergyActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set allergy active: %w", err)
	}
	return nil
}

// CreateVaccinationParams contains parameters for creating a vaccination type
type CreateVaccinationParams struct {
	Name           string
	Description    *string
	DurationMonths int32
}

// CreateVaccination adds a vaccination type with its protection duration.
func (s *MedicalService) CreateVaccination(ctx context.Context, params CreateVaccinationParams) (*db.Vaccination, error) {
	if params.Name == "" {
		return nil, errors.New("name is required")
	}
	if params.DurationMonths < 1 {
		return nil, errors.New("duration must be at least one month")
	}
	vaccination, err := s.queries.CreateVaccination(ctx, db.CreateVaccinationParams{
		Name:           params.Name,
		Description:    helpers.TextFromPtr(params.Description),
		DurationMonths: params.DurationMonths,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vaccination: %w", err)
	}
	s.logger.Info("Vaccination created", zap.String("vaccination_id", vaccination.ID.String()))
	return &vaccination, nil
}

// GetVaccination returns a single vaccination type.
func (s *MedicalService) GetVaccination(ctx context.Context, id uuid.UUID) (*db.Vaccination, error) {
	vaccination, err := s.queries.GetVaccination(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVaccinationNotFound
		}
		return nil, fmt.Errorf("failed to get vaccination: %w", err)
	}
	return &vaccination, nil
}

// ListVaccinations returns all vaccination types.
func (s *MedicalService) ListVaccinations(ctx context.Context, includeInactive bool) ([]db.Vaccination, error) {
	vaccinations, err := s.queries.ListVaccinations(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaccinations: %w", err)
	}
	return vaccinations, nil
}

// UpdateVaccinationParams contains the editable fields of a vaccination type.
type UpdateVaccinationParams struct {
	ID             uuid.UUID
	Name           *string
	Description    *string
	DurationMonths *int32
}

// UpdateVaccination applies a partial update.
func (s *MedicalService) UpdateVaccination(ctx context.Context, params UpdateVaccinationParams) (*db.Vaccination, error) {
	if params.DurationMonths != nil && *params.DurationMonths < 1 {
		return nil, errors.New("duration must be at least one month")
	}
	vaccination, err := s.queries.UpdateVaccination(ctx, db.UpdateVaccinationParams{
		ID:             params.ID,
		Name:           helpers.TextFromPtr(params.Name),
		Description:    helpers.TextFromPtr(params.Description),
		DurationMonths: helpers.Int4FromPtr(params.DurationMonths),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVaccinationNotFound
		}
		return nil, fmt.Errorf("failed to update vaccination: %w", err)
	}
	return &vaccination, nil
}

// SetVaccinationActive soft-deletes or restores a vaccination type.
func (s *MedicalService) SetVaccinationActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetVaccination(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetVaccinationActive(ctx, db.SetVaccinationActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set vaccination active: %w", err)
	}
	return nil
}
