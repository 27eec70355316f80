// Package notification mantiene la lista de notificaciones del operador.
// La lista vive solo en el dashboard y se persiste completa tras cada cambio.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/storage"
)

// Payload datos para crear una notificación. Severity y Category tienen valor por defecto.
type Payload struct {
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Severity  entity.Severity `json:"type"`
	Category  entity.Category `json:"category"`
	ActionURL string          `json:"actionUrl,omitempty"`
}

// Store lista de notificaciones, la más reciente primero.
type Store struct {
	mu     sync.RWMutex
	items  []entity.Notification
	store  storage.Store
	policy *bluemonday.Policy
	log    zerolog.Logger
	now    func() time.Time
}

// NewStore construye el almacén vacío; Load lo rehidrata.
func NewStore(store storage.Store, log zerolog.Logger) *Store {
	return &Store{
		items:  []entity.Notification{},
		store:  store,
		policy: bluemonday.StrictPolicy(),
		log:    log,
		now:    time.Now,
	}
}

// Load rehidrata la lista. Si no hay nada guardado (o la lista está vacía) siembra
// cinco ejemplos; si lo guardado no se puede leer queda vacía y no se siembra.
func (s *Store) Load(ctx context.Context) {
	var stored []entity.Notification
	found, err := storage.GetJSON(ctx, s.store, storage.KeyNotifications, &stored)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err != nil:
		s.log.Warn().Err(err).Msg("notificaciones persistidas ilegibles, se inicia con lista vacía")
		s.items = []entity.Notification{}
	case !found || len(stored) == 0:
		s.items = seed(s.now())
		s.persistLocked(ctx)
	default:
		s.items = stored
	}
}

// List copia de la lista actual.
func (s *Store) List() []entity.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// UnreadCount cantidad de notificaciones sin leer.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// Add asigna id y timestamp y agrega al principio.
func (s *Store) Add(ctx context.Context, p Payload) entity.Notification {
	n := entity.Notification{
		ID:        uuid.NewString(),
		Title:     s.policy.Sanitize(p.Title),
		Message:   s.policy.Sanitize(p.Message),
		Severity:  p.Severity,
		Category:  p.Category,
		Timestamp: s.now(),
		ActionURL: p.ActionURL,
	}
	if n.Severity == "" {
		n.Severity = entity.SeverityInfo
	}
	if n.Category == "" {
		n.Category = entity.CategorySystem
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]entity.Notification{n}, s.items...)
	s.persistLocked(ctx)
	return n
}

// MarkAsRead marca una notificación como leída. Es idempotente; un id desconocido no hace nada.
func (s *Store) MarkAsRead(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Read {
				return
			}
			s.items[i].Read = true
			s.persistLocked(ctx)
			return
		}
	}
}

// MarkAllAsRead marca todas como leídas.
func (s *Store) MarkAllAsRead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Read = true
	}
	s.persistLocked(ctx)
}

// Remove quita la entrada con ese id y deja las demás intactas.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// ClearAll vacía la lista.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []entity.Notification{}
	s.persistLocked(ctx)
}

// persistLocked guarda la lista completa. Los errores solo se registran.
func (s *Store) persistLocked(ctx context.Context) {
	if err := storage.SetJSON(ctx, s.store, storage.KeyNotifications, s.items); err != nil {
		s.log.Error().Err(err).Msg("persistir notificaciones")
	}
}
