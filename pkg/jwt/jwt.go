// Package jwt inspecciona los tokens de sesión emitidos por el backend.
// El dashboard no conoce la clave de firma: los claims se leen sin verificar
// y solo sirven para decisiones locales (p. ej. no restaurar un token vencido).
package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT el token es opaco (no tiene forma header.payload.signature).
var ErrNotJWT = errors.New("jwt: token opaco")

// Claims claims estándar más los campos que el backend suele incluir.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Inspect decodifica los claims sin verificar la firma.
func Inspect(token string) (*Claims, error) {
	if strings.Count(token, ".") != 2 {
		return nil, ErrNotJWT
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("jwt: decodificar claims: %w", err)
	}
	return claims, nil
}

// Expired indica si token es un JWT cuyo exp ya pasó respecto a now.
// Tokens opacos, ilegibles o sin exp se consideran vigentes: el backend decide.
func Expired(token string, now time.Time) bool {
	claims, err := Inspect(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
