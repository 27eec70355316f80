// Package storage persiste el estado del operador (token de sesión y notificaciones)
// como valores JSON bajo claves fijas. Equivale al almacenamiento del navegador.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
)

// Claves conocidas.
const (
	KeyToken         = "token"
	KeyNotifications = "notifications"
	KeyPreferences   = "preferences"
)

// Store almacén clave → JSON. Get devuelve domain.ErrNotFound si la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
}

// GetJSON lee la clave y la decodifica en out. found es false si la clave no existe.
func GetJSON(ctx context.Context, s Store, key string, out any) (found bool, err error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("decodificar %q: %w", key, err)
	}
	return true, nil
}

// SetJSON codifica v y lo guarda bajo key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
