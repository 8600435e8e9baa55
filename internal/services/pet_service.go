package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrPetNotFound is returned when the requested pet does not exist
var ErrPetNotFound = errors.New("pet not found")

// PetService handles business logic for patients.
type PetService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewPetService creates a new pet service
func NewPetService(queries db.Querier) *PetService {
	return &PetService{queries: queries, logger: logger.Log}
}

// CreatePetParams contains parameters for creating a pet
type CreatePetParams struct {
	Name           string
	Gender         string
	Dob            time.Time
	SpeciesID      uuid.UUID
	BreedID        uuid.UUID
	ClientID       uuid.UUID
	Weight         *decimal.Decimal
	Color          string
	MedicalHistory *string
}

// CreatePet registers a patient. The owner, species and breed must exist,
// and the breed must belong to the species.
func (s *PetService) CreatePet(ctx context.Context, params CreatePetParams) (*db.Pet, error) {
	if params.Name == "" {
		return nil, errors.New("name is required")
	}

	if _, err := s.queries.GetClient(ctx, params.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to verify client: %w", err)
	}

	breed, err := s.queries.GetBreed(ctx, params.BreedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBreedNotFound
		}
		return nil, fmt.Errorf("failed to verify breed: %w", err)
	}
	if breed.SpeciesID != params.SpeciesID {
		return nil, errors.New("breed does not belong to the given species")
	}

	weight := pgtype.Numeric{}
	if params.Weight != nil {
		weight = helpers.DecimalToNumeric(*params.Weight)
	}

	pet, err := s.queries.CreatePet(ctx, db.CreatePetParams{
		Name:           params.Name,
		Gender:         params.Gender,
		Dob:            params.Dob,
		SpeciesID:      params.SpeciesID,
		BreedID:        params.BreedID,
		ClientID:       params.ClientID,
		Weight:         weight,
		Color:          params.Color,
		MedicalHistory: helpers.TextFromPtr(params.MedicalHistory),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	s.logger.Info("Pet created",
		zap.String("pet_id", pet.ID.String()),
		zap.String("client_id", pet.ClientID.String()),
	)
	return &pet, nil
}

// GetPet returns a single pet.
func (s *PetService) GetPet(ctx context.Context, id uuid.UUID) (*db.Pet, error) {
	pet, err := s.queries.GetPet(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return &pet, nil
}

// ListPetsParams contains parameters for listing pets
type ListPetsParams struct {
	IncludeInactive bool
	ClientID        *uuid.UUID
	Search          string
	Limit           int32
	Offset          int32
}

// ListPets returns a page of pets, optionally scoped to one owner.
func (s *PetService) ListPets(ctx context.Context, params ListPetsParams) ([]db.Pet, int64, error) {
	pets, err := s.queries.ListPets(ctx, db.ListPetsParams{
		IncludeInactive: params.IncludeInactive,
		ClientID:        helpers.UUIDFromPtr(params.ClientID),
		Search:          params.Search,
		Limit:           params.Limit,
		Offset:          params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pets: %w", err)
	}

	total, err := s.queries.CountPets(ctx, db.CountPetsParams{
		IncludeInactive: params.IncludeInactive,
		ClientID:        helpers.UUIDFromPtr(params.ClientID),
		Search:          params.Search,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pets: %w", err)
	}
	return pets, total, nil
}

// UpdatePetParams contains the editable fields of a pet.
type UpdatePetParams struct {
	ID             uuid.UUID
	Name           *string
	Gender         *string
	Dob            *time.Time
	SpeciesID      *uuid.UUID
	BreedID        *uuid.UUID
	ClientID       *uuid.UUID
	Weight         *decimal.Decimal
	Color          *string
	MedicalHistory *string
}

// UpdatePet applies a partial update. Species/breed consistency is
// re-checked when either changes.
func (s *PetService) UpdatePet(ctx context.Context, params UpdatePetParams) (*db.Pet, error) {
	if params.SpeciesID != nil || params.BreedID != nil {
		current, err := s.GetPet(ctx, params.ID)
		if err != nil {
			return nil, err
		}
		speciesID := current.SpeciesID
		if params.SpeciesID != nil {
			speciesID = *params.SpeciesID
		}
		breedID := current.BreedID
		if params.BreedID != nil {
			breedID = *params.BreedID
		}
		breed, err := s.queries.GetBreed(ctx, breedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrBreedNotFound
			}
			return nil, fmt.Errorf("failed to verify breed: %w", err)
		}
		if breed.SpeciesID != speciesID {
			return nil, errors.New("breed does not belong to the given species")
		}
	}

	arg := db.UpdatePetParams{
		ID:             params.ID,
		Name:           helpers.TextFromPtr(params.Name),
		Gender:         helpers.TextFromPtr(params.Gender),
		SpeciesID:      helpers.UUIDFromPtr(params.SpeciesID),
		BreedID:        helpers.UUIDFromPtr(params.BreedID),
		ClientID:       helpers.UUIDFromPtr(params.ClientID),
		Color:          helpers.TextFromPtr(params.Color),
		MedicalHistory: helpers.TextFromPtr(params.MedicalHistory),
	}
	if params.Dob != nil {
		arg.Dob = pgtype.Date{Time: *params.Dob, Valid: true}
	}
	if params.Weight != nil {
		arg.Weight = helpers.DecimalToNumeric(*params.Weight)
	}

	pet, err := s.queries.UpdatePet(ctx, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}
	return &pet, nil
}

// SetPetActive soft-deletes or restores a pet.
func (s *PetService) SetPetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetPet(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetPetActive(ctx, db.SetPetActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set pet active: %w", err)
	}
	return nil
}
