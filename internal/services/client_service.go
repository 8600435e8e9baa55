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
	// ErrClientNotFound is returned when the requested client does not exist
	ErrClientNotFound = errors.New("client not found")
	// ErrPhoneNumberTaken is returned when another client already has the number
	ErrPhoneNumberTaken = errors.New("phone number already registered")
)

// ClientService handles business logic for pet owners.
type ClientService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewClientService creates a new client service
func NewClientService(queries db.Querier) *ClientService {
	return &ClientService{queries: queries, logger: logger.Log}
}

// CreateClientParams contains parameters for creating a client
type CreateClientParams struct {
	Name             string
	Gender           string
	PhoneNumber      string
	OtherContactInfo *string
}

// CreateClient registers a pet owner. Phone numbers are unique and double as
// the reception desk's lookup key.
func (s *ClientService) CreateClient(ctx context.Context, params CreateClientParams) (*db.Client, error) {
	if params.Name == "" || params.PhoneNumber == "" {
		return nil, errors.New("name and phone number are required")
	}

	if _, err := s.queries.GetClientByPhone(ctx, params.PhoneNumber); err == nil {
		return nil, ErrPhoneNumberTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check phone number: %w", err)
	}

	client, err := s.queries.CreateClient(ctx, db.CreateClientParams{
		Name:             params.Name,
		Gender:           params.Gender,
		PhoneNumber:      params.PhoneNumber,
		OtherContactInfo: helpers.TextFromPtr(params.OtherContactInfo),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.Info("Client created", zap.String("client_id", client.ID.String()))
	return &client, nil
}

// GetClient returns a single client.
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*db.Client, error) {
	client, err := s.queries.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// ListClientsParams contains parameters for listing clients
type ListClientsParams struct {
	IncludeInactive bool
	Search          string
	Limit           int32
	Offset          int32
}

// ListClients returns a page of clients matched by name or phone number.
func (s *ClientService) ListClients(ctx context.Context, params ListClientsParams) ([]db.Client, int64, error) {
	clients, err := s.queries.ListClients(ctx, db.ListClientsParams{
		IncludeInactive: params.IncludeInactive,
		Search:          params.Search,
		Limit:           params.Limit,
		Offset:          params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	total, err := s.queries.CountClients(ctx, db.CountClientsParams{
		IncludeInactive: params.IncludeInactive,
		Search:          params.Search,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return clients, total, nil
}

// UpdateClientParams contains the editable fields of a client.
type UpdateClientParams struct {
	ID               uuid.UUID
	Name             *string
	Gender           *string
	PhoneNumber      *string
	OtherContactInfo *string
}

// UpdateClient applies a partial update, re-checking phone uniqueness when
// the number changes.
func (s *ClientService) UpdateClient(ctx context.Context, params UpdateClientParams) (*db.Client, error) {
	if params.PhoneNumber != nil {
		existing, err := s.queries.GetClientByPhone(ctx, *params.PhoneNumber)
		if err == nil && existing.ID != params.ID {
			return nil, ErrPhoneNumberTaken
		} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to check phone number: %w", err)
		}
	}

	client, err := s.queries.UpdateClient(ctx, db.UpdateClientParams{
		ID:               params.ID,
		Name:             helpers.TextFromPtr(params.Name),
		Gender:           helpers.TextFromPtr(params.Gender),
		PhoneNumber:      helpers.TextFromPtr(params.PhoneNumber),
		OtherContactInfo: helpers.TextFromPtr(params.OtherContactInfo),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return &client, nil
}

// SetClientActive soft-deletes or restores a client.
func (s *ClientService) SetClientActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetClientActive(ctx, db.SetClientActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set client active: %w", err)
	}
	return nil
}
