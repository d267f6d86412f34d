package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/jportela/tienda-api/internal/domain/entity"
	"github.com/jportela/tienda-api/internal/domain/repository"
	"github.com/jportela/tienda-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL vigencia del token de recuperación de contraseña.
const resetTokenTTL = time.Hour

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Mailer puerto de correo que necesita auth (recuperación de contraseña).
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación de contraseña.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	mailer      Mailer
	jwtCfg      JWTConfig
	frontendURL string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mailer Mailer, jwtCfg JWTConfig, frontendURL string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg, frontendURL: frontendURL}
}

// Register crea un usuario: normaliza el email a minúsculas, hashea el password
// con bcrypt y persiste. Devuelve ErrEmailAlreadyExists si el email ya existe
// (la comparación es case-insensitive porque el email se guarda en minúsculas).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
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
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

// ForgotPassword genera un token de recuperación con vigencia de una hora y
// envía el enlace por correo. Si el email no existe no retorna error: el
// handler responde siempre el mismo mensaje para no revelar qué emails existen.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	token, err := newResetToken()
	if err != nil {
		return err
	}
	expires := time.Now().Add(resetTokenTTL)
	user.ResetPasswordToken = token
	user.ResetPasswordExpires = &expires
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	resetURL := uc.frontendURL + "/reset-password?token=" + token
	return uc.mailer.SendPasswordReset(ctx, user.Email, resetURL)
}

// ResetPassword valida el token (existencia y vigencia), actualiza la
// contraseña y limpia los campos de recuperación.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.GetByResetToken(in.Token)
	if err != nil {
		return err
	}
	if user == nil || user.ResetPasswordExpires == nil || time.Now().After(*user.ResetPasswordExpires) {
		return domain.ErrInvalidResetToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = nil
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// newResetToken genera 20 bytes aleatorios en hex (40 caracteres).
func newResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
