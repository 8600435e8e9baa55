package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dogtorvet/dogtorvet-api/internal/auth"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/handlers"
	"github.com/dogtorvet/dogtorvet-api/internal/mocks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse-battery")
	require.NoError(t, err)

	userID := uuid.New()
	user := db.User{
		ID:           userID,
		FirstName:    "Maria",
		LastName:     "Dolittle",
		Email:        "maria@clinic.test",
		PasswordHash: hash,
		Role:         "vet",
		Active:       true,
	}

	tests := []struct {
		name       string
		body       map[string]any
		mockSetup  func(m *mocks.MockQuerier)
		wantStatus int
	}{
		{
			name: "valid credentials",
			body: map[string]any{"email": "maria@clinic.test", "password": "correct-horse-battery"},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "maria@clinic.test").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: map[string]any{"email": "maria@clinic.test", "password": "nope"},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "maria@clinic.test").Return(user, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       map[string]any{"email": "maria@clinic.test"},
			mockSetup:  func(m *mocks.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(m)
			common := newTestCommon(t, m)

			router := gin.New()
			h := handlers.NewAuthHandler(common)
			router.POST("/auth/login", h.Login)

			w := performJSON(router, http.MethodPost, "/auth/login", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus == http.StatusOK {
				var resp handlers.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.AccessToken)
				assert.NotEmpty(t, resp.RefreshToken)
				assert.Equal(t, userID.String(), resp.User.ID)

				claims, err := common.Tokens.Verify(resp.AccessToken, auth.TokenTypeAccess)
				require.NoError(t, err)
				assert.Equal(t, "maria@clinic.test", claims.Email)
			}
		})
	}
}

func TestAuthHandler_Refresh_RejectsAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockQuerier(ctrl)
	common := newTestCommon(t, m)

	user := db.User{ID: uuid.New(), Email: "maria@clinic.test", Role: "vet", Active: true}
	accessToken, err := common.Tokens.IssueAccessToken(user)
	require.NoError(t, err)

	router := gin.New()
	h := handlers.NewAuthHandler(common)
	router.POST("/auth/refresh", h.Refresh)

	w := performJSON(router, http.MethodPost, "/auth/refresh", map[string]any{
		"refresh_token": accessToken,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
