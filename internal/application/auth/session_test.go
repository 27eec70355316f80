package auth_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/auth"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/dto"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	loginResp *dto.LoginResponse
	loginErr  error
	me        *entity.User
	meErr     error
	verify    *dto.TwoFactorResponse
	verifyErr error
	plainErr  error
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeBackend) Login(_ context.Context, _, _ string) (*dto.LoginResponse, error) {
	f.record("login")
	return f.loginResp, f.loginErr
}

func (f *fakeBackend) Register(_ context.Context, _ dto.RegisterRequest) (*dto.LoginResponse, error) {
	f.record("register")
	if f.plainErr != nil {
		return nil, f.plainErr
	}
	return &dto.LoginResponse{Token: "tok-registro"}, nil
}

func (f *fakeBackend) Me(_ context.Context) (*entity.User, error) {
	f.record("me")
	if f.meErr != nil {
		return nil, f.meErr
	}
	u := *f.me
	return &u, nil
}

func (f *fakeBackend) VerifyTwoFactor(_ context.Context, _ string) (*dto.TwoFactorResponse, error) {
	f.record("verify")
	return f.verify, f.verifyErr
}

func (f *fakeBackend) ForgotPassword(_ context.Context, _ string) error {
	f.record("forgot")
	return f.plainErr
}

func (f *fakeBackend) ResetPassword(_ context.Context, _, _ string) error {
	f.record("reset")
	return f.plainErr
}

type fakeNotifier struct {
	errors    []string
	successes []string
}

func (f *fakeNotifier) Error(msg string)   { f.errors = append(f.errors, msg) }
func (f *fakeNotifier) Success(msg string) { f.successes = append(f.successes, msg) }

type fixture struct {
	api     *fakeBackend
	store   *storage.MemoryStore
	tokens  *auth.TokenStore
	notify  *fakeNotifier
	session *auth.SessionManager
}

func newFixture(t *testing.T, api *fakeBackend) *fixture {
	t.Helper()
	store := storage.NewMemoryStore()
	tokens := auth.NewTokenStore(store, zerolog.Nop())
	notify := &fakeNotifier{}
	s, err := auth.NewSessionManager(api, tokens, notify, auth.DemoCredentials{
		Email:    "admin@urbanfarm.com",
		Password: "password123",
	}, zerolog.Nop())
	require.NoError(t, err)
	return &fixture{api: api, store: store, tokens: tokens, notify: notify, session: s}
}

func (f *fixture) persistedToken(t *testing.T) (string, bool) {
	t.Helper()
	var tok string
	found, err := storage.GetJSON(context.Background(), f.store, storage.KeyToken, &tok)
	require.NoError(t, err)
	return tok, found
}

var manager = &entity.User{ID: 7, Username: "ana", Email: "ana@granja.co", Role: "ROLE_MANAGER"}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DemoNuncaLlamaAlBackend(t *testing.T) {
	f := newFixture(t, &fakeBackend{})

	ok := f.session.Login(context.Background(), "Admin@UrbanFarm.com", "password123")
	require.True(t, ok)

	assert.Empty(t, f.api.calls, "el login demo no toca el backend")
	assert.True(t, f.session.Authenticated())
	u := f.session.User()
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	tok, found := f.persistedToken(t)
	assert.True(t, found)
	assert.Equal(t, auth.DemoToken, tok)
}

func TestLogin_DemoConPasswordIncorrectoDelegaAlBackend(t *testing.T) {
	f := newFixture(t, &fakeBackend{loginErr: &domain.APIError{Status: 401, Err: domain.ErrUnauthorized}})

	assert.False(t, f.session.Login(context.Background(), "admin@urbanfarm.com", "otra"))
	assert.Equal(t, []string{"login"}, f.api.calls)
	assert.Equal(t, []string{"Credenciales inválidas"}, f.notify.errors, "un 401 de login sí se muestra")
}

func TestLogin_Backend(t *testing.T) {
	f := newFixture(t, &fakeBackend{loginResp: &dto.LoginResponse{Token: "tok-1"}, me: manager})

	require.True(t, f.session.Login(context.Background(), "ana@granja.co", "secreta"))
	assert.Equal(t, []string{"login", "me"}, f.api.calls)

	u := f.session.User()
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleManager, u.Role, "ROLE_ se normaliza")

	tok, _ := f.persistedToken(t)
	assert.Equal(t, "tok-1", tok)
}

func TestLogin_FallaNoPersisteToken(t *testing.T) {
	cases := map[string]*fakeBackend{
		"respuesta no 2xx": {loginErr: &domain.APIError{Status: 500}},
		"sin token":        {loginResp: &dto.LoginResponse{}},
		"perfil falla":     {loginResp: &dto.LoginResponse{Token: "tok-1"}, meErr: &domain.APIError{Status: 500}},
	}
	for name, api := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, api)
			assert.False(t, f.session.Login(context.Background(), "x@y.co", "z"))
			_, found := f.persistedToken(t)
			assert.False(t, found)
			assert.Empty(t, f.tokens.Token())
			assert.False(t, f.session.Authenticated())
		})
	}
}

func TestLogin_ErrorYaReportadoNoSeDuplica(t *testing.T) {
	f := newFixture(t, &fakeBackend{loginErr: &domain.APIError{Status: 503, Message: "caído"}})
	assert.False(t, f.session.Login(context.Background(), "x@y.co", "z"))
	assert.Empty(t, f.notify.errors)
}

func TestLogin_DosFactores(t *testing.T) {
	f := newFixture(t, &fakeBackend{
		loginResp: &dto.LoginResponse{Token: "tok-pre", RequiresTwoFactor: true},
		verify:    &dto.TwoFactorResponse{Token: "tok-final"},
		me:        manager,
	})
	ctx := context.Background()

	require.True(t, f.session.Login(ctx, "ana@granja.co", "secreta"))
	assert.True(t, f.session.PendingTwoFactor())
	assert.False(t, f.session.Authenticated())

	require.True(t, f.session.VerifyTwoFactor(ctx, "123456"))
	assert.False(t, f.session.PendingTwoFactor())
	assert.True(t, f.session.Authenticated())

	tok, _ := f.persistedToken(t)
	assert.Equal(t, "tok-final", tok, "el token rotado se persiste")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión: logout, desalojo, registro
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout(t *testing.T) {
	f := newFixture(t, &fakeBackend{})
	ctx := context.Background()
	require.True(t, f.session.Login(ctx, "admin@urbanfarm.com", "password123"))

	f.session.Logout(ctx)
	assert.False(t, f.session.Authenticated())
	assert.Nil(t, f.session.User())
	_, found := f.persistedToken(t)
	assert.False(t, found)
}

func TestDesalojoInvalidaUsuario(t *testing.T) {
	f := newFixture(t, &fakeBackend{loginResp: &dto.LoginResponse{Token: "tok-1"}, me: manager})
	require.True(t, f.session.Login(context.Background(), "ana@granja.co", "secreta"))

	assert.True(t, f.tokens.Evict("tok-1"))
	assert.False(t, f.tokens.Evict("tok-1"), "el segundo desalojo no hace nada")
	assert.Nil(t, f.session.User())
	assert.False(t, f.session.Authenticated())
}

func TestRegister_NoIniciaSesion(t *testing.T) {
	f := newFixture(t, &fakeBackend{})
	assert.True(t, f.session.Register(context.Background(), "ana", "ana@granja.co", "secreta123"))
	assert.False(t, f.session.Authenticated())
	_, found := f.persistedToken(t)
	assert.False(t, found)
}

func TestForgotAndReset(t *testing.T) {
	f := newFixture(t, &fakeBackend{})
	ctx := context.Background()
	assert.True(t, f.session.ForgotPassword(ctx, "ana@granja.co"))
	assert.True(t, f.session.ResetPassword(ctx, "reset-tok", "nueva12345"))
	assert.Equal(t, []string{"forgot", "reset"}, f.api.calls)
	assert.Len(t, f.notify.successes, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore
// ──────────────────────────────────────────────────────────────────────────────

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		ExpiresAt: gojwt.NewNumericDate(exp),
	}).SignedString([]byte("clave-del-backend"))
	require.NoError(t, err)
	return tok
}

func seedToken(t *testing.T, f *fixture, tok string) {
	t.Helper()
	raw, err := json.Marshal(tok)
	require.NoError(t, err)
	require.NoError(t, f.store.Set(context.Background(), storage.KeyToken, raw))
}

func TestRestore(t *testing.T) {
	t.Run("sin token no hace nada", func(t *testing.T) {
		f := newFixture(t, &fakeBackend{me: manager})
		f.session.Restore(context.Background())
		assert.Empty(t, f.api.calls)
		assert.False(t, f.session.Authenticated())
	})

	t.Run("token demo se restaura localmente", func(t *testing.T) {
		f := newFixture(t, &fakeBackend{})
		seedToken(t, f, auth.DemoToken)
		f.session.Restore(context.Background())
		assert.Empty(t, f.api.calls)
		assert.True(t, f.session.Authenticated())
	})

	t.Run("JWT vencido se descarta sin red", func(t *testing.T) {
		f := newFixture(t, &fakeBackend{me: manager})
		seedToken(t, f, signed(t, time.Now().Add(-time.Hour)))
		f.session.Restore(context.Background())
		assert.Empty(t, f.api.calls)
		_, found := f.persistedToken(t)
		assert.False(t, found)
	})

	t.Run("token vigente consulta el perfil", func(t *testing.T) {
		f := newFixture(t, &fakeBackend{me: manager})
		seedToken(t, f, signed(t, time.Now().Add(time.Hour)))
		f.session.Restore(context.Background())
		assert.Equal(t, []string{"me"}, f.api.calls)
		assert.True(t, f.session.Authenticated())
	})

	t.Run("perfil falla limpia el token", func(t *testing.T) {
		f := newFixture(t, &fakeBackend{meErr: &domain.APIError{Status: 500}})
		seedToken(t, f, "opaco")
		f.session.Restore(context.Background())
		assert.False(t, f.session.Authenticated())
		_, found := f.persistedToken(t)
		assert.False(t, found)
	})
}
