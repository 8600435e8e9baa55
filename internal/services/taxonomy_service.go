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
	// ErrSpeciesNotFound is returned when the requested species does not exist
	ErrSpeciesNotFound = errors.New("species not found")
	// ErrBreedNotFound is returned when the requested breed does not exist
	ErrBreedNotFound = errors.New("breed not found")
)

// TaxonomyService manages the species/breed reference data used to classify
// patients.
type TaxonomyService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTaxonomyService creates a new taxonomy service
func NewTaxonomyService(queries db.Querier) *TaxonomyService {
	return &TaxonomyService{queries: queries, logger: logger.Log}
}

// CreateSpecies adds a species.
func (s *TaxonomyService) CreateSpecies(ctx context.Context, name string) (*db.Species, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	species, err := s.queries.CreateSpecies(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create species: %w", err)
	}
	s.logger.Info("Species created", zap.String("species_id", species.ID.String()))
	return &species, nil
}

// GetSpecies returns a single species.
func (s *TaxonomyService) GetSpecies(ctx context.Context, id uuid.UUID) (*db.Species, error) {
	species, err := s.queries.GetSpecies(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("failed to get species: %w", err)
	}
	return &species, nil
}

// ListSpecies returns all species. The list is small enough to skip
// pagination.
func (s *TaxonomyService) ListSpecies(ctx context.Context, includeInactive bool) ([]db.Species, error) {
	species, err := s.queries.ListSpecies(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}
	return species, nil
}

// UpdateSpecies renames a species.
func (s *TaxonomyService) UpdateSpecies(ctx context.Context, id uuid.UUID, name *string) (*db.Species, error) {
	species, err := s.queries.UpdateSpecies(ctx, db.UpdateSpeciesParams{
		ID:   id,
		Name: helpers.TextFromPtr(name),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("failed to update species: %w", err)
	}
	return &species, nil
}

// SetSpeciesActive soft-deletes or restores a species.
func (s *TaxonomyService) SetSpeciesActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetSpecies(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetSpeciesActive(ctx, db.SetSpeciesActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set species active: %w", err)
	}
	return nil
}

// CreateBreed adds a breed under an existing species.
func (s *TaxonomyService) CreateBreed(ctx context.Context, name string, speciesID uuid.UUID) (*db.Breed, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if _, err := s.GetSpecies(ctx, speciesID); err != nil {
		return nil, err
	}

	breed, err := s.queries.CreateBreed(ctx, db.CreateBreedParams{Name: name, SpeciesID: speciesID})
	if err != nil {
		return nil, fmt.Errorf("failed to create breed: %w", err)
	}
	s.logger.Info("Breed created",
		zap.String("breed_id", breed.ID.String()),
		zap.String("species_id", speciesID.String()),
	)
	return &breed, nil
}

// GetBreed returns a single breed.
func (s *TaxonomyService) GetBreed(ctx context.Context, id uuid.UUID) (*db.Breed, error) {
	breed, err := s.queries.GetBreed(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBreedNotFound
		}
		return nil, fmt.Errorf("failed to get breed: %w", err)
	}
	return &breed, nil
}

// ListBreeds returns breeds, optionally filtered to one species.
func (s *TaxonomyService) ListBreeds(ctx context.Context, includeInactive bool, speciesID *uuid.UUID) ([]db.Breed, error) {
	breeds, err := s.queries.ListBreeds(ctx, db.ListBreedsParams{
		IncludeInactive: includeInactive,
		SpeciesID:       helpers.UUIDFromPtr(speciesID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list breeds: %w", err)
	}
	return breeds, nil
}

// UpdateBreedParams contains the editable fields of a breed.
type UpdateBreedParams struct {
	ID        uuid.UUID
	Name      *string
	SpeciesID *uuid.UUID
}

// UpdateBreed renames a breed or moves it to another species.
func (s *TaxonomyService) UpdateBreed(ctx context.Context, params UpdateBreedParams) (*db.Breed, error) {
	if params.SpeciesID != nil {
		if _, err := s.GetSpecies(ctx, *params.SpeciesID); err != nil {
			return nil, err
		}
	}

	breed, err := s.queries.UpdateBreed(ctx, db.UpdateBreedParams{
		ID:        params.ID,
		Name:      helpers.TextFromPtr(params.Name),
		SpeciesID: helpers.UUIDFromPtr(params.SpeciesID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBreedNotFound
		}
		return nil, fmt.Errorf("failed to update breed: %w", err)
	}
	return &breed, nil
}

// SetBreedActive soft-deletes or restores a breed.
func (s *TaxonomyService) SetBreedActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetBreed(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetBreedActive(ctx, db.SetBreedActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set breed active: %w", err)
	}
	return nil
}
