package auth

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/storage"
)

// TokenStore dueño del token de sesión persistido bajo la clave "token".
// Lo leen el cliente HTTP (al construir cada petición) y la sesión; lo escriben
// solo los flujos de auth y el desalojo por 401.
type TokenStore struct {
	mu    sync.RWMutex
	token string
	store storage.Store
	log   zerolog.Logger
}

// NewTokenStore construye el almacén; llamar Load para rehidratar.
func NewTokenStore(store storage.Store, log zerolog.Logger) *TokenStore {
	return &TokenStore{store: store, log: log}
}

// Load lee el token persistido. Un valor ilegible se descarta.
func (t *TokenStore) Load(ctx context.Context) error {
	var tok string
	_, err := storage.GetJSON(ctx, t.store, storage.KeyToken, &tok)
	if err != nil {
		t.log.Warn().Err(err).Msg("token persistido ilegible, se descarta")
		_ = t.store.Delete(ctx, storage.KeyToken)
		tok = ""
	}
	t.mu.Lock()
	t.token = tok
	t.mu.Unlock()
	return err
}

// Token devuelve el token vigente ("" si no hay sesión).
func (t *TokenStore) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

// Set reemplaza el token y lo persiste.
func (t *TokenStore) Set(ctx context.Context, token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
	if err := storage.SetJSON(ctx, t.store, storage.KeyToken, token); err != nil {
		t.log.Error().Err(err).Msg("persistir token")
		return err
	}
	return nil
}

// Clear borra el token. Los errores de almacenamiento solo se registran.
func (t *TokenStore) Clear(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clearLocked(ctx)
}

// Evict borra el token solo si sigue siendo token. Devuelve true si esta llamada lo borró,
// así varios 401 concurrentes con el mismo token desalojan una sola vez.
func (t *TokenStore) Evict(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if token == "" || t.token != token {
		return false
	}
	t.clearLocked(context.Background())
	return true
}

func (t *TokenStore) clearLocked(ctx context.Context) {
	t.token = ""
	if err := t.store.Delete(ctx, storage.KeyToken); err != nil {
		t.log.Error().Err(err).Msg("borrar token persistido")
	}
}
