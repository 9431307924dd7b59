package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de usuário
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa um usuário do dashboard, chaveado por email. Usuários não
// são removidos no fluxo normal; desativação é preferida.
type User struct {
	Email        string     `json:"email" bson:"email"`
	Name         string     `json:"name" bson:"name"`
	Role         string     `json:"role" bson:"role"`
	PasswordHash string     `json:"-" bson:"password"`
	Company      string     `json:"company,omitempty" bson:"company,omitempty"`
	IsActive     bool       `json:"is_active" bson:"isActive"`
	CreatedAt    time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}

// UpdateUserRequest carrega campos opcionais para atualização de perfil
type UpdateUserRequest struct {
	Email    string  `json:"email"`
	Name     *string `json:"name,omitempty"`
	Company  *string `json:"company,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// UserPage é a resposta paginada da listagem de usuários
type UserPage struct {
	Users  []*User `json:"users"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// Claims são as claims do token JWT
type Claims struct {
	UserEmail  string `json:"user_email"`
	UserName   string `json:"user_name"`
	UserRole   string `json:"user_role"`
	UserActive bool   `json:"user_active"`
	jwt.RegisteredClaims
}
