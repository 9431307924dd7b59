package authenticating

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendai/demand-insights-api/infrastructure/repository"
	"github.com/trendai/demand-insights-api/internal/config"
	"github.com/trendai/demand-insights-api/internal/domain"
	"github.com/trendai/demand-insights-api/pkg/apiErrors"
)

const tokenTTL = 7 * 24 * time.Hour

// RegisterRequest carrega os dados do cadastro self-service
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
}

type Authenticator interface {
	Register(ctx context.Context, req *RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetProfile(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, req *domain.UpdateUserRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
	CreateUser(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) (*domain.UserPage, error)
	SetUserStatus(ctx context.Context, email string, active bool) (*domain.User, error)
	ResetPassword(ctx context.Context, requestorEmail, targetEmail string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register cria um usuário self-service. O papel é sempre "user";
// administradores são criados pela rota de admin.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	if err := s.ValidatePasswordStrength(req.Password); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest, err.Error())
	}

	user := &domain.User{
		Email:    handleEmail(req.Email),
		Name:     fmt.Sprintf("%s %s", strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName)),
		Role:     domain.RoleUser,
		Company:  req.Company,
		IsActive: true,
	}

	return s.createUser(ctx, user, req.Password)
}

// CreateUser cria um usuário com papel arbitrário (fluxo de admin)
func (s *Service) CreateUser(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleUser {
		return nil, NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, fmt.Sprintf("papel desconhecido: %s", user.Role))
	}

	user.Email = handleEmail(user.Email)
	user.IsActive = true

	return s.createUser(ctx, user, password)
}

func (s *Service) createUser(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = time.Now().UTC()

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if !user.IsActive {
		return "", nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.Email, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.Email, "Email ou senha incorretos")
	}

	token, err := generateJWT(user, s.cfg.SecretKey)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, user, nil
}

func (s *Service) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar perfil de usuário")
		return nil, err
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, req *domain.UpdateUserRequest) (*domain.User, error) {
	if req.Email == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email é obrigatório")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(req.Email))
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Company != nil {
		user.Company = *req.Company
	}
	if req.Role != nil {
		if *req.Role != domain.RoleAdmin && *req.Role != domain.RoleUser {
			return nil, NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, fmt.Sprintf("papel desconhecido: %s", *req.Role))
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	now := time.Now().UTC()
	user.UpdatedAt = &now

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) (*domain.UserPage, error) {
	page, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	for _, u := range page.Users {
		u.PasswordHash = ""
	}

	return page, nil
}

// SetUserStatus ativa ou desativa uma conta. Desativação é preferida à
// remoção: o registro permanece para auditoria e pode ser reativado.
func (s *Service) SetUserStatus(ctx context.Context, email string, active bool) (*domain.User, error) {
	isActive := active
	return s.UpdateProfile(ctx, &domain.UpdateUserRequest{
		Email:    email,
		IsActive: &isActive,
	})
}

// ChangePassword permite que um usuário altere sua própria senha
func (s *Service) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.Email, "Senha atual incorreta")
	}

	if currentPassword == newPassword {
		return NewAuthError(ErrSamePassword, apiErrors.ErrInvalidRequest, "Nova senha deve ser diferente da atual")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	now := time.Now().UTC()
	user.UpdatedAt = &now

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	return nil
}

// ResetPassword gera uma senha forte para o usuário alvo. Apenas
// administradores podem resetar senhas de terceiros.
func (s *Service) ResetPassword(ctx context.Context, requestorEmail, targetEmail string) (string, error) {
	requestor, err := s.userRepo.GetUserByEmail(ctx, handleEmail(requestorEmail))
	if err != nil {
		return "", err
	}
	if requestor == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário solicitante não encontrado")
	}
	if requestor.Role != domain.RoleAdmin {
		return "", NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, requestor.Email, "Apenas administradores podem resetar senhas")
	}

	target, err := s.userRepo.GetUserByEmail(ctx, handleEmail(targetEmail))
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário alvo não encontrado")
	}

	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	target.PasswordHash = string(hashedPassword)
	now := time.Now().UTC()
	target.UpdatedAt = &now

	if err := s.userRepo.UpdateUser(ctx, target); err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	return newPassword, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ValidatePasswordStrength verifica se a senha atende aos requisitos de segurança
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserEmail:  user.Email,
		UserName:   user.Name,
		UserRole:   user.Role,
		UserActive: user.IsActive,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	allChars     = lowerChars + upperChars + numberChars + specialChars
)

// generateStrongPassword gera uma senha forte com o comprimento especificado
// incluindo letras maiúsculas, minúsculas, números e caracteres especiais
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	password := make([]byte, length)

	sets := []string{lowerChars, upperChars, numberChars, specialChars}
	for i, set := range sets {
		c, err := getRandomChar(set)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	for i := len(sets); i < length; i++ {
		c, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	// Embaralhar para que os caracteres obrigatórios não fiquem em posição fixa
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
