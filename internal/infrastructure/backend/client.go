// Package backend es el cliente del API REST de la granja (el sistema de registro).
// Todas las llamadas pasan por Client, que agrega el Bearer token, desaloja la sesión
// ante un 401 y reporta los demás errores al manejador central.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/pkg/config"
)

// TokenSource provee el token vigente. Evict lo descarta solo si sigue siendo el mismo.
type TokenSource interface {
	Token() string
	Evict(token string) bool
}

// ErrorReporter recibe los errores de API que no son 401.
type ErrorReporter interface {
	Report(err error)
}

// Client cliente HTTP configurado una sola vez para todo el dashboard.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	reporter ErrorReporter
	log      zerolog.Logger
}

// NewClient construye el cliente. Timeout cero en cfg deja las peticiones sin límite.
func NewClient(cfg config.BackendConfig, tokens TokenSource, reporter ErrorReporter, log zerolog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout},
		tokens:   tokens,
		reporter: reporter,
		log:      log,
	}
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Do ejecuta una petición JSON. body y out pueden ser nil.
// Los errores de API se devuelven como *domain.APIError (Status 0 si falló el transporte).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	err := c.do(ctx, method, path, body, out)
	if err != nil {
		c.reporter.Report(err)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: codificar cuerpo: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: construir petición: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// El token se lee al construir cada petición.
	token := c.tokens.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.APIError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{Method: method, Path: path, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if token != "" && c.tokens.Evict(token) {
			c.log.Info().Str("path", path).Msg("sesión expirada: token desalojado")
		}
		return &domain.APIError{Status: resp.StatusCode, Method: method, Path: path, Err: domain.ErrUnauthorized}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &domain.APIError{Status: resp.StatusCode, Method: method, Path: path}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			}
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decodificar respuesta: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}
