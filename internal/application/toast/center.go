// Package toast mantiene la cola de avisos efímeros del operador y el manejador
// central de errores de la API que decide qué se muestra.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// DefaultCapacity cantidad máxima de toasts pendientes; al superarla se descarta el más viejo.
const DefaultCapacity = 50

// Toast aviso efímero. A diferencia de una notificación no se persiste.
type Toast struct {
	ID        string          `json:"id"`
	Level     entity.Severity `json:"type"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Center cola acotada de toasts pendientes de mostrar.
type Center struct {
	mu       sync.Mutex
	capacity int
	pending  []Toast
	now      func() time.Time
}

// NewCenter crea una cola con la capacidad dada (DefaultCapacity si es <= 0).
func NewCenter(capacity int) *Center {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Center{capacity: capacity, now: time.Now}
}

// Push encola un toast y lo devuelve.
func (c *Center) Push(level entity.Severity, message string) Toast {
	t := Toast{ID: uuid.NewString(), Level: level, Message: message, CreatedAt: c.now()}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pending) >= c.capacity {
		c.pending = c.pending[1:]
	}
	c.pending = append(c.pending, t)
	return t
}

// Drain devuelve los toasts pendientes en orden de llegada y vacía la cola.
func (c *Center) Drain() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	if out == nil {
		return []Toast{}
	}
	return out
}

// Len cantidad de toasts pendientes.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
