package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/auth"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/notification"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/prediction"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/search"
	"github.com/jhoicas/urbanfarm-dashboard/internal/application/toast"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/urbanfarm-dashboard/internal/interfaces/http"
	"github.com/jhoicas/urbanfarm-dashboard/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	demoEmail    = "admin@urbanfarm.com"
	demoPassword = "password123"
)

// harness dashboard completo contra un backend falso (httptest) y almacenamiento en memoria.
type harness struct {
	app     *fiber.App
	session *auth.SessionManager
	toasts  *toast.Center
	store   storage.Store

	mu     sync.Mutex
	routes map[string]http.HandlerFunc // "METHOD /api/path"
	calls  []string                    // "METHOD /api/path"
	role   entity.Role
	twoFA  bool
}

func newHarness(t *testing.T, demoMode bool) *harness {
	t.Helper()
	h := &harness{routes: map[string]http.HandlerFunc{}, role: entity.RoleAdmin}

	srv := httptest.NewServer(http.HandlerFunc(h.serve))
	t.Cleanup(srv.Close)

	nop := zerolog.Nop()
	h.store = storage.NewMemoryStore()
	tokens := auth.NewTokenStore(h.store, nop)
	h.toasts = toast.NewCenter(toast.DefaultCapacity)
	reporter := toast.NewReporter(h.toasts, demoMode, nop)
	client := backend.NewClient(config.BackendConfig{BaseURL: srv.URL + "/api"}, tokens, reporter, nop)

	var err error
	h.session, err = auth.NewSessionManager(backend.NewAuthAPI(client), tokens, reporter,
		auth.DemoCredentials{Email: demoEmail, Password: demoPassword}, nop)
	require.NoError(t, err)

	notifications := notification.NewStore(h.store, nop)
	notifications.Load(context.Background())

	h.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(nop)})
	apphttp.Router(h.app, apphttp.RouterDeps{
		AppName: "urbanfarm-test",
		Session: h.session,
		APIs: apphttp.APIs{
			Farms:          backend.NewFarmAPI(client),
			Crops:          backend.NewCropAPI(client),
			Harvests:       backend.NewHarvestAPI(client),
			Inventory:      backend.NewInventoryAPI(client),
			Orders:         backend.NewOrderAPI(client),
			Clients:        backend.NewClientAPI(client),
			Staff:          backend.NewStaffAPI(client),
			Sustainability: backend.NewSustainabilityAPI(client),
		},
		Notifications: notifications,
		Search:        search.NewService(search.NewSampleSource(nil), nop),
		Toasts:        h.toasts,
		Reporter:      reporter,
		Estimator:     prediction.NewEstimator(0, 1),
		Reports:       pdf.NewReportGenerator(),
		Store:         h.store,
		LoginLimiter:  apphttp.NewLoginLimiter(0),
		Log:           nop,
	})
	return h
}

// serve backend falso: /auth/login y /auth/me responden según role y twoFA; el resto según routes.
func (h *harness) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	h.mu.Lock()
	h.calls = append(h.calls, key)
	handler, ok := h.routes[key]
	role, twoFA := h.role, h.twoFA
	h.mu.Unlock()

	switch {
	case ok:
		handler(w, r)
	case key == "POST /api/auth/login":
		writeJSON(w, http.StatusOK, map[string]any{"token": "tok-" + string(role), "requiresTwoFactor": twoFA})
	case key == "GET /api/auth/me":
		writeJSON(w, http.StatusOK, entity.User{ID: 7, Username: "operador", Email: "op@granja.co", Role: "ROLE_" + role})
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no encontrado"})
	}
}

func (h *harness) on(key string, fn http.HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes[key] = fn
}

func (h *harness) called(key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.calls {
		if c == key {
			return true
		}
	}
	return false
}

func (h *harness) backendCalls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.calls...)
}

// loginAs inicia sesión contra el backend falso con el rol indicado y vacía los toasts.
func (h *harness) loginAs(t *testing.T, role entity.Role) {
	t.Helper()
	h.mu.Lock()
	h.role = role
	h.mu.Unlock()
	require.True(t, h.session.Login(context.Background(), "op@granja.co", "secreto123"))
	h.toasts.Drain()
}

func (h *harness) loginDemo(t *testing.T) {
	t.Helper()
	require.True(t, h.session.Login(context.Background(), demoEmail, demoPassword))
	h.toasts.Drain()
}

func (h *harness) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respond(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if v == nil {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, v)
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
