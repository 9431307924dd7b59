package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/trendai/demand-insights-api/internal/domain"
	"github.com/trendai/demand-insights-api/internal/usecases/authenticating"
	"github.com/trendai/demand-insights-api/pkg/apiErrors"
	"github.com/trendai/demand-insights-api/pkg/middleware"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
}

type SetUserStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

type ResetPasswordResponse struct {
	Password string `json:"password"`
}

// ListUsers retorna a listagem paginada de usuários (apenas admin)
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		offset := 0

		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}
		if raw := r.URL.Query().Get("offset"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro offset inválido", nil)
				return
			}
			offset = parsed
		}

		page, err := service.ListUsers(r.Context(), limit, offset)
		if err != nil {
			logrus.WithError(err).Error("users: failed to list users")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			logrus.WithError(err).Error("users: failed to encode response")
		}
	}
}

// AdminCreateUser cria um usuário com papel arbitrário (apenas admin)
func AdminCreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user := &domain.User{
			Email:   req.Email,
			Name:    req.Name,
			Role:    req.Role,
			Company: req.Company,
		}

		created, err := service.CreateUser(r.Context(), user, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		created.PasswordHash = ""

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.WithError(err).Error("users: failed to encode response")
		}
	}
}

// SetUserStatus ativa ou desativa uma conta (apenas admin). Contas não são
// removidas; desativação preserva o registro.
func SetUserStatus(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := httprouter.ParamsFromContext(r.Context()).ByName("email")

		var req SetUserStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.IsActive == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo is_active é obrigatório", nil)
			return
		}

		user, err := service.SetUserStatus(r.Context(), email, *req.IsActive)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_email": user.Email,
			"is_active":  user.IsActive,
		}).Info("users: account status changed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logrus.WithError(err).Error("users: failed to encode response")
		}
	}
}

// ResetPassword gera uma nova senha forte para o usuário alvo (apenas
// admin). A senha é retornada uma única vez na resposta.
func ResetPassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		email := httprouter.ParamsFromContext(r.Context()).ByName("email")

		password, err := service.ResetPassword(r.Context(), claims.UserEmail, email)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		logrus.WithField("user_email", email).Info("users: password reset by admin")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ResetPasswordResponse{Password: password}); err != nil {
			logrus.WithError(err).Error("users: failed to encode response")
		}
	}
}
