// Package auth maneja registro, login y emisión de tokens.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tupyme/inventario-api/internal/application/dto"
	"github.com/tupyme/inventario-api/internal/domain"
	"github.com/tupyme/inventario-api/internal/domain/entity"
	"github.com/tupyme/inventario-api/internal/domain/repository"
	"github.com/tupyme/inventario-api/pkg/jwt"
)

// JWTConfig parámetros de firma de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, orgRepo: orgRepo, jwtCfg: jwtCfg}
}

// Register crea la organización y su primer usuario con rol admin.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	org := &entity.Organization{
		ID:        uuid.New().String(),
		Nombre:    strings.TrimSpace(in.OrganizationName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if org.Nombre == "" {
		org.Nombre = strings.TrimSpace(in.Name)
	}
	if err := uc.orgRepo.Create(org); err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		Email:          email,
		PasswordHash:   string(hash),
		Name:           strings.TrimSpace(in.Name),
		Role:           entity.RoleAdmin,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica credenciales y devuelve un token firmado.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrganizationID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		Status:         u.Status,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
