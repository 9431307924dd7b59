package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trendai/demand-insights-api/internal/domain"
	"github.com/trendai/demand-insights-api/internal/usecases/authenticating"
	authmocks "github.com/trendai/demand-insights-api/internal/usecases/authenticating/mocks"
	"github.com/trendai/demand-insights-api/pkg/apiErrors"
	"github.com/trendai/demand-insights-api/pkg/middleware"
)

func withClaims(r *http.Request, claims *domain.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, claims)
	return r.WithContext(ctx)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(service *authmocks.MockAuthenticator)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Login bem-sucedido retorna token e usuário",
			body: `{"email":"admin@trendai.com","password":"admin123"}`,
			setup: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().
					Login(gomock.Any(), "admin@trendai.com", "admin123").
					Return("token-jwt", &domain.User{Email: "admin@trendai.com", Role: domain.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "token-jwt", resp.Token)
				assert.Equal(t, "admin@trendai.com", resp.User.Email)
			},
		},
		{
			name: "Credenciais inválidas retornam 401",
			body: `{"email":"admin@trendai.com","password":"wrong"}`,
			setup: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().
					Login(gomock.Any(), "admin@trendai.com", "wrong").
					Return("", nil, authenticating.NewAuthError(
						authenticating.ErrInvalidCredentials,
						apiErrors.ErrInvalidCredentials,
						"Email ou senha incorretos",
					))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "Conta desativada retorna 403",
			body: `{"email":"user@trendai.com","password":"user123"}`,
			setup: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().
					Login(gomock.Any(), "user@trendai.com", "user123").
					Return("", nil, authenticating.NewUserAuthError(
						authenticating.ErrUserDisabled,
						apiErrors.ErrUserDisabled,
						"user@trendai.com",
						"Conta desativada",
					))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Corpo inválido retorna 400",
			body:       `{invalid`,
			setup:      func(service *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			Login(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(service *authmocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name: "Cadastro bem-sucedido retorna 201",
			body: `{"email":"novo@trendai.com","password":"Sup3r@Senha","first_name":"Ana","last_name":"Silva"}`,
			setup: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *authenticating.RegisterRequest) (*domain.User, error) {
						assert.Equal(t, "novo@trendai.com", req.Email)
						return &domain.User{Email: req.Email, Role: domain.RoleUser, IsActive: true}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Email duplicado retorna conflito",
			body: `{"email":"admin@trendai.com","password":"Sup3r@Senha","first_name":"Ana","last_name":"Silva"}`,
			setup: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, authenticating.NewAuthError(
						authenticating.ErrUserAlreadyExists,
						apiErrors.ErrUserAlreadyExists,
						"Email já cadastrado",
					))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			Register(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetProfile(t *testing.T) {
	t.Run("Perfil do usuário autenticado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		service.EXPECT().
			GetProfile(gomock.Any(), "user@trendai.com").
			Return(&domain.User{Email: "user@trendai.com", Name: "Demo User"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/profile", nil)
		req = withClaims(req, &domain.Claims{UserEmail: "user@trendai.com", UserRole: domain.RoleUser})
		rec := httptest.NewRecorder()

		GetProfile(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "Demo User", user.Name)
	})

	t.Run("Sem claims no contexto retorna 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/profile", nil)
		rec := httptest.NewRecorder()

		GetProfile(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("Papel e status não são alteráveis pelo próprio usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		service.EXPECT().
			UpdateProfile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.UpdateUserRequest) (*domain.User, error) {
				assert.Equal(t, "user@trendai.com", req.Email)
				assert.Nil(t, req.Role)
				assert.Nil(t, req.IsActive)
				return &domain.User{Email: req.Email, Name: *req.Name}, nil
			})

		active := false
		role := domain.RoleAdmin
		name := "Novo Nome"
		body, err := json.Marshal(domain.UpdateUserRequest{
			Email:    "outro@trendai.com",
			Name:     &name,
			Role:     &role,
			IsActive: &active,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/v1/auth/profile", bytes.NewReader(body))
		req = withClaims(req, &domain.Claims{UserEmail: "user@trendai.com", UserRole: domain.RoleUser})
		rec := httptest.NewRecorder()

		UpdateProfile(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestChangePasswordHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		claims     *domain.Claims
		setup      func(service *authmocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name:   "Troca de senha bem-sucedida",
			body:   `{"current_password":"user123","new_password":"N0va@Senha"}`,
			claims: &domain.Claims{UserEmail: "user@trendai.com"},
			setup: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().
					ChangePassword(gomock.Any(), "user@trendai.com", "user123", "N0va@Senha").
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Campos ausentes retornam 400",
			body:       `{"current_password":"","new_password":""}`,
			claims:     &domain.Claims{UserEmail: "user@trendai.com"},
			setup:      func(service *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Senha atual incorreta retorna 401",
			body:   `{"current_password":"wrong","new_password":"N0va@Senha"}`,
			claims: &domain.Claims{UserEmail: "user@trendai.com"},
			setup: func(service *authmocks.MockAuthenticator) {
				service.EXPECT().
					ChangePassword(gomock.Any(), "user@trendai.com", "wrong", "N0va@Senha").
					Return(authenticating.NewAuthError(
						authenticating.ErrInvalidCredentials,
						apiErrors.ErrInvalidCredentials,
						"Senha atual incorreta",
					))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/change-password", bytes.NewBufferString(tt.body))
			if tt.claims != nil {
				req = withClaims(req, tt.claims)
			}
			rec := httptest.NewRecorder()

			ChangePassword(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
