package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jportela/tienda-api/internal/application/auth"
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/jportela/tienda-api/internal/domain/entity"
)

const frontendURL = "http://localhost:5173"

var jwtCfg = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "tienda-api-test"}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByResetToken(token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}
	for _, u := range r.byID {
		if u.ResetPasswordToken == token {
			return u, nil
		}
	}
	return nil, nil
}

// fakeMailer captura el último enlace de recuperación enviado.
type fakeMailer struct {
	lastTo  string
	lastURL string
	sent    int
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, to, resetURL string) error {
	m.lastTo = to
	m.lastURL = resetURL
	m.sent++
	return nil
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo, *fakeMailer) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	return auth.NewAuthUseCase(repo, mailer, jwtCfg, frontendURL), repo, mailer
}

func register(t *testing.T, uc *auth.AuthUseCase, email string) *dto.AuthResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: email, Password: "secreta1"})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_DevuelveTokenYUsuarioClient(t *testing.T) {
	uc, _, _ := newAuthUC()

	out := register(t, uc, "ana@tienda.test")

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@tienda.test", out.User.Email)
	assert.Equal(t, entity.RoleClient, out.User.Role, "los registros públicos siempre son client")
}

func TestRegister_NormalizaEmailAMinusculas(t *testing.T) {
	uc, repo, _ := newAuthUC()

	out := register(t, uc, "  Ana@Tienda.TEST ")

	assert.Equal(t, "ana@tienda.test", out.User.Email)
	stored, err := repo.GetByEmail("ana@tienda.test")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

// El duplicado se detecta aunque cambie la capitalización del email.
func TestRegister_EmailDuplicadoCaseInsensitive(t *testing.T) {
	uc, _, _ := newAuthUC()

	register(t, uc, "ana@tienda.test")
	_, err := uc.Register(dto.RegisterRequest{Name: "Otra Ana", Email: "ANA@tienda.test", Password: "secreta2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_NoGuardaPasswordEnClaro(t *testing.T) {
	uc, repo, _ := newAuthUC()

	register(t, uc, "ana@tienda.test")
	stored, err := repo.GetByEmail("ana@tienda.test")
	require.NoError(t, err)

	assert.NotEqual(t, "secreta1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta1")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _, _ := newAuthUC()
	register(t, uc, "ana@tienda.test")

	out, err := uc.Login(dto.LoginRequest{Email: "Ana@Tienda.test", Password: "secreta1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@tienda.test", out.User.Email)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@tienda.test", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _, _ := newAuthUC()
	register(t, uc, "ana@tienda.test")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@tienda.test", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_EnviaEnlaceConToken(t *testing.T) {
	uc, repo, mailer := newAuthUC()
	register(t, uc, "ana@tienda.test")

	require.NoError(t, uc.ForgotPassword(context.Background(), "ana@tienda.test"))

	assert.Equal(t, "ana@tienda.test", mailer.lastTo)
	assert.True(t, strings.HasPrefix(mailer.lastURL, frontendURL+"/reset-password?token="),
		"el enlace debe apuntar al frontend")

	stored, err := repo.GetByEmail("ana@tienda.test")
	require.NoError(t, err)
	assert.Len(t, stored.ResetPasswordToken, 40, "token de 20 bytes en hex")
	require.NotNil(t, stored.ResetPasswordExpires)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *stored.ResetPasswordExpires, time.Minute)
}

// Un email desconocido no es error ni envía correo: el handler responde
// siempre el mismo mensaje.
func TestForgotPassword_EmailDesconocido_Silencioso(t *testing.T) {
	uc, _, mailer := newAuthUC()

	require.NoError(t, uc.ForgotPassword(context.Background(), "nadie@tienda.test"))
	assert.Zero(t, mailer.sent)
}

func TestResetPassword_CambiaPasswordYLimpiaToken(t *testing.T) {
	uc, repo, _ := newAuthUC()
	register(t, uc, "ana@tienda.test")
	require.NoError(t, uc.ForgotPassword(context.Background(), "ana@tienda.test"))
	stored, _ := repo.GetByEmail("ana@tienda.test")
	token := stored.ResetPasswordToken

	err := uc.ResetPassword(dto.ResetPasswordRequest{Token: token, Password: "nueva-clave"})
	require.NoError(t, err)

	// La contraseña nueva sirve para login y el token queda invalidado.
	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.test", Password: "nueva-clave"})
	require.NoError(t, err)
	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: token, Password: "otra-mas"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken, "el token es de un solo uso")
}

func TestResetPassword_TokenExpirado(t *testing.T) {
	uc, repo, _ := newAuthUC()
	register(t, uc, "ana@tienda.test")
	require.NoError(t, uc.ForgotPassword(context.Background(), "ana@tienda.test"))

	stored, _ := repo.GetByEmail("ana@tienda.test")
	expired := time.Now().Add(-time.Minute)
	stored.ResetPasswordExpires = &expired
	require.NoError(t, repo.Update(stored))

	err := uc.ResetPassword(dto.ResetPasswordRequest{Token: stored.ResetPasswordToken, Password: "nueva-clave"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestResetPassword_TokenDesconocido(t *testing.T) {
	uc, _, _ := newAuthUC()

	err := uc.ResetPassword(dto.ResetPasswordRequest{Token: "inexistente", Password: "nueva-clave"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}
