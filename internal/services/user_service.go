package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dogtorvet/dogtorvet-api/internal/auth"
	"github.com/dogtorvet/dogtorvet-api/internal/constants"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials is returned on a failed login. The message never
	// reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering a duplicate email
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when the requested user does not exist
	ErrUserNotFound = errors.New("user not found")
)

// UserService handles registration, authentication and staff management.
type UserService struct {
	queries db.Querier
	tokens  *auth.TokenManager
	logger  *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(queries db.Querier, tokens *auth.TokenManager) *UserService {
	return &UserService{
		queries: queries,
		tokens:  tokens,
		logger:  logger.Log,
	}
}

// TokenPair is the access/refresh pair returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterParams contains parameters for registering a user
type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// Register creates a staff account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (*db.User, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || params.Password == "" {
		return nil, errors.New("email and password are required")
	}
	if len(params.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	role := params.Role
	if role == "" {
		role = constants.RoleStaff
	}
	if role != constants.RoleAdmin && role != constants.RoleVet && role != constants.RoleStaff {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	if _, err := s.queries.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.queries.CreateUser(ctx, db.CreateUserParams{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)
	return &user, nil
}

// Login verifies credentials and issues a token pair. Deactivated accounts
// fail the same way as bad credentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*db.User, *TokenPair, error) {
	user, err := s.queries.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.Active || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return &user, pair, nil
}

// RefreshTokens exchanges a valid refresh token for a fresh pair.
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.queries.GetUser(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.Active {
		return nil, auth.ErrInvalidToken
	}

	return s.issueTokens(user)
}

func (s *UserService) issueTokens(user db.User) (*TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// GetUser returns a single user.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*db.User, error) {
	user, err := s.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListUsers returns a page of staff accounts.
func (s *UserService) ListUsers(ctx context.Context, includeInactive bool, limit, offset int32) ([]db.User, error) {
	users, err := s.queries.ListUsers(ctx, db.ListUsersParams{
		IncludeInactive: includeInactive,
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUserParams contains the editable fields of a user; nil leaves a
// field unchanged.
type UpdateUserParams struct {
	ID        uuid.UUID
	FirstName *string
	LastName  *string
	Email     *string
	Role      *string
}

// UpdateUser applies a partial profile update.
func (s *UserService) UpdateUser(ctx context.Context, params UpdateUserParams) (*db.User, error) {
	if params.Role != nil {
		role := *params.Role
		if role != constants.RoleAdmin && role != constants.RoleVet && role != constants.RoleStaff {
			return nil, fmt.Errorf("unknown role %q", role)
		}
	}
	if params.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*params.Email))
		params.Email = &lowered
	}

	user, err := s.queries.UpdateUser(ctx, db.UpdateUserParams{
		ID:        params.ID,
		FirstName: helpers.TextFromPtr(params.FirstName),
		LastName:  helpers.TextFromPtr(params.LastName),
		Email:     helpers.TextFromPtr(params.Email),
		Role:      helpers.TextFromPtr(params.Role),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, current) {
		return ErrInvalidCredentials
	}
	if len(next) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	if err := s.queries.UpdateUserPassword(ctx, db.UpdateUserPasswordParams{ID: id, PasswordHash: hash}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("Password changed", zap.String("user_id", id.String()))
	return nil
}

// SetUserActive deactivates or restores an account. Deactivation takes
// effect on the next request since tokens are checked against the user row.
func (s *UserService) SetUserActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetUserActive(ctx, db.SetUserActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set user active: %w", err)
	}
	return nil
}
