package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bvieira/accounts-server/internal/api/http/httpctx"
	"github.com/bvieira/accounts-server/internal/apierr"
	"github.com/bvieira/accounts-server/internal/model"
	"github.com/bvieira/accounts-server/internal/testutil"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (model.PublicUser, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(model.PublicUser), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (model.PublicUser, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.PublicUser), args.String(1), args.Error(2)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (model.PublicUser, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.PublicUser), args.Error(1)
}

func publicUser() model.PublicUser {
	return model.PublicUser{
		ID:        uuid.New(),
		Name:      "Ana",
		Email:     "ana@example.com",
		IsActive:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestAuth_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *mockAuthService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"name":"Ana","email":"ana@example.com","password":"123456"}`,
			setupMock: func(svc *mockAuthService) {
				svc.On("Register", mock.Anything, "Ana", "ana@example.com", "123456").Return(publicUser(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request_body",
		},
		{
			name:       "missing fields",
			body:       `{"name":"Ana"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "missing_fields",
		},
		{
			name: "invalid email",
			body: `{"name":"Ana","email":"email_invalido","password":"123456"}`,
			setupMock: func(svc *mockAuthService) {
				svc.On("Register", mock.Anything, "Ana", "email_invalido", "123456").
					Return(model.PublicUser{}, apierr.NewErrInvalidEmailFormat("email_invalido"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "invalid_email_format",
		},
		{
			name: "email taken",
			body: `{"name":"Ana","email":"ana@example.com","password":"123456"}`,
			setupMock: func(svc *mockAuthService) {
				svc.On("Register", mock.Anything, "Ana", "ana@example.com", "123456").
					Return(model.PublicUser{}, apierr.NewErrEmailIsTaken("ana@example.com"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "email_already_in_use",
		},
		{
			name: "infrastructure failure",
			body: `{"name":"Ana","email":"ana@example.com","password":"123456"}`,
			setupMock: func(svc *mockAuthService) {
				svc.On("Register", mock.Anything, "Ana", "ana@example.com", "123456").
					Return(model.PublicUser{}, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{}
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var resp errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)
			}
		})
	}
}

func TestAuth_Register_ResponseOmitsHash(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Register", mock.Anything, "Ana", "ana@example.com", "123456").Return(publicUser(), nil)
	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"name":"Ana","email":"ana@example.com","password":"123456"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestAuth_Login(t *testing.T) {
	user := publicUser()

	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *mockAuthService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"email":"ana@example.com","password":"123456"}`,
			setupMock: func(svc *mockAuthService) {
				svc.On("Login", mock.Anything, "ana@example.com", "123456").Return(user, "signed-token", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"ana@example.com","password":"wrong1"}`,
			setupMock: func(svc *mockAuthService) {
				svc.On("Login", mock.Anything, "ana@example.com", "wrong1").
					Return(model.PublicUser{}, "", apierr.NewErrInvalidCredentials())
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "invalid_credentials",
		},
		{
			name: "disabled account",
			body: `{"email":"ana@example.com","password":"123456"}`,
			setupMock: func(svc *mockAuthService) {
				svc.On("Login", mock.Anything, "ana@example.com", "123456").
					Return(model.PublicUser{}, "", apierr.NewErrAccountDisabled())
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "account_disabled",
		},
		{
			name:       "missing fields",
			body:       `{"email":"ana@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "missing_fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{}
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var resp loginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "signed-token", resp.Token)
				assert.Equal(t, user.ID, resp.User.ID)
			}
			if tt.wantCode != "" {
				var resp errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)
			}
		})
	}
}

func TestAuth_Me(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	user := publicUser()

	t.Run("user in context", func(t *testing.T) {
		h := NewAuth(&mockAuthService{}, ctxMgr, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req = req.WithContext(ctxMgr.SetUserToContext(req.Context(), user))
		rec := httptest.NewRecorder()

		h.Me(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.PublicUser
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("no user in context", func(t *testing.T) {
		h := NewAuth(&mockAuthService{}, ctxMgr, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rec := httptest.NewRecorder()

		h.Me(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
