package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dogtorvet/dogtorvet-api/internal/auth"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/mocks"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret-key", 30*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	return tm
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name      string
		params    services.RegisterParams
		mockSetup func(m *mocks.MockQuerier)
		wantErr   string
	}{
		{
			name: "registers with lowered email and default role",
			params: services.RegisterParams{
				FirstName: "Dana",
				LastName:  "Reyes",
				Email:     "Dana.Reyes@Clinic.Test",
				Password:  "correct-horse",
			},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "dana.reyes@clinic.test").Return(db.User{}, pgx.ErrNoRows)
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateUserParams) (db.User, error) {
						assert.Equal(t, "dana.reyes@clinic.test", arg.Email)
						assert.Equal(t, "staff", arg.Role)
						assert.NotEqual(t, "correct-horse", arg.PasswordHash)
						return db.User{ID: uuid.New(), Email: arg.Email, Role: arg.Role, PasswordHash: arg.PasswordHash, Active: true}, nil
					})
			},
		},
		{
			name: "rejects duplicate email",
			params: services.RegisterParams{
				Email:    "taken@clinic.test",
				Password: "correct-horse",
			},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "taken@clinic.test").Return(db.User{ID: uuid.New()}, nil)
			},
			wantErr: "email already registered",
		},
		{
			name: "rejects short password",
			params: services.RegisterParams{
				Email:    "short@clinic.test",
				Password: "short",
			},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   "at least 8 characters",
		},
		{
			name: "rejects unknown role",
			params: services.RegisterParams{
				Email:    "r@clinic.test",
				Password: "correct-horse",
				Role:     "janitor",
			},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   "unknown role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			service := services.NewUserService(mockQuerier, testTokenManager(t))
			_, err := service.Register(context.Background(), tt.params)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	activeUser := db.User{
		ID:           uuid.New(),
		Email:        "vet@clinic.test",
		PasswordHash: hash,
		Role:         "vet",
		Active:       true,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func(m *mocks.MockQuerier)
		wantErr   error
	}{
		{
			name:     "issues tokens on valid credentials",
			email:    "vet@clinic.test",
			password: "correct-horse",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "vet@clinic.test").Return(activeUser, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "vet@clinic.test",
			password: "wrong",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "vet@clinic.test").Return(activeUser, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@clinic.test",
			password: "correct-horse",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "nobody@clinic.test").Return(db.User{}, pgx.ErrNoRows)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "deactivated account",
			email:    "vet@clinic.test",
			password: "correct-horse",
			mockSetup: func(m *mocks.MockQuerier) {
				inactive := activeUser
				inactive.Active = false
				m.EXPECT().GetUserByEmail(gomock.Any(), "vet@clinic.test").Return(inactive, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			tm := testTokenManager(t)
			service := services.NewUserService(mockQuerier, tm)
			user, pair, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, activeUser.ID, user.ID)
			require.NotNil(t, pair)

			claims, err := tm.Verify(pair.AccessToken, auth.TokenTypeAccess)
			require.NoError(t, err)
			assert.Equal(t, activeUser.ID, claims.UserID())

			_, err = tm.Verify(pair.AccessToken, auth.TokenTypeRefresh)
			assert.ErrorIs(t, err, auth.ErrWrongTokenType)
		})
	}
}

func TestUserService_RefreshTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := db.User{ID: uuid.New(), Email: "vet@clinic.test", Role: "vet", Active: true}
	tm := testTokenManager(t)
	refresh, err := tm.IssueRefreshToken(user)
	require.NoError(t, err)

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetUser(gomock.Any(), user.ID).Return(user, nil)

	service := services.NewUserService(mockQuerier, tm)
	pair, err := service.RefreshTokens(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestUserService_RefreshTokens_RejectsAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := db.User{ID: uuid.New(), Email: "vet@clinic.test", Role: "vet", Active: true}
	tm := testTokenManager(t)
	access, err := tm.IssueAccessToken(user)
	require.NoError(t, err)

	service := services.NewUserService(mocks.NewMockQuerier(ctrl), tm)
	_, err = service.RefreshTokens(context.Background(), access)
	assert.ErrorIs(t, err, auth.ErrWrongTokenType)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := auth.HashPassword("old-password")
	require.NoError(t, err)
	user := db.User{ID: uuid.New(), PasswordHash: hash, Active: true}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetUser(gomock.Any(), user.ID).Return(user, nil)
	mockQuerier.EXPECT().UpdateUserPassword(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateUserPasswordParams) error {
			assert.True(t, auth.CheckPassword(arg.PasswordHash, "new-password-1"))
			return nil
		})

	service := services.NewUserService(mockQuerier, testTokenManager(t))
	err = service.ChangePassword(context.Background(), user.ID, "old-password", "new-password-1")
	require.NoError(t, err)
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := auth.HashPassword("old-password")
	require.NoError(t, err)
	user := db.User{ID: uuid.New(), PasswordHash: hash, Active: true}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetUser(gomock.Any(), user.ID).Return(user, nil)

	service := services.NewUserService(mockQuerier, testTokenManager(t))
	err = service.ChangePassword(context.Background(), user.ID, "not-it", "new-password-1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
