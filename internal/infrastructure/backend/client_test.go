package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/backend"
	"github.com/jhoicas/urbanfarm-dashboard/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeTokens struct {
	mu      sync.Mutex
	token   string
	evicted int
}

func (f *fakeTokens) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeTokens) Evict(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token == "" || f.token != token {
		return false
	}
	f.token = ""
	f.evicted++
	return true
}

type fakeReporter struct {
	mu   sync.Mutex
	errs []error
}

func (f *fakeReporter) Report(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errors.Is(err, domain.ErrUnauthorized) {
		return
	}
	f.errs = append(f.errs, err)
}

func (f *fakeReporter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errs)
}

type recorded struct {
	Method string
	Path   string
	Auth   string
	Body   string
}

// fakeBackend levanta un httptest.Server que registra cada petición y responde con handler.
func fakeBackend(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *[]recorded) {
	t.Helper()
	var mu sync.Mutex
	calls := &[]recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		*calls = append(*calls, recorded{Method: r.Method, Path: r.URL.RequestURI(), Auth: r.Header.Get("Authorization"), Body: string(b)})
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func newClient(srv *httptest.Server, tokens *fakeTokens, rep *fakeReporter) *backend.Client {
	return backend.NewClient(config.BackendConfig{BaseURL: srv.URL + "/api/"}, tokens, rep, zerolog.Nop())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Client
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_AgregaBearer(t *testing.T) {
	srv, calls := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []entity.Farm{{ID: 1, Name: "Azotea"}})
	})
	tokens := &fakeTokens{token: "tok-123"}
	farms := backend.NewFarmAPI(newClient(srv, tokens, &fakeReporter{}))

	got, err := farms.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Azotea", got[0].Name)

	require.Len(t, *calls, 1)
	assert.Equal(t, "Bearer tok-123", (*calls)[0].Auth)
	assert.Equal(t, "/api/farms", (*calls)[0].Path)
}

func TestClient_SinTokenNoEnviaAuthorization(t *testing.T) {
	srv, calls := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []entity.Farm{})
	})
	_, err := backend.NewFarmAPI(newClient(srv, &fakeTokens{}, &fakeReporter{})).GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, (*calls)[0].Auth)
}

func TestClient_401DesalojaUnaSolaVez(t *testing.T) {
	srv, _ := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "expirado"})
	})
	tokens := &fakeTokens{token: "tok-viejo"}
	rep := &fakeReporter{}
	crops := backend.NewCropAPI(newClient(srv, tokens, rep))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := crops.GetAll(context.Background())
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, tokens.evicted, "el token se desaloja una sola vez")
	assert.Empty(t, tokens.Token())
	assert.Zero(t, rep.count(), "un 401 nunca es toast")
}

func TestClient_ErrorConMensaje(t *testing.T) {
	srv, _ := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Nombre duplicado"})
	})
	rep := &fakeReporter{}
	_, err := backend.NewClientAPI(newClient(srv, &fakeTokens{token: "t"}, rep)).Create(context.Background(), entity.Client{Name: "X"})

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Nombre duplicado", apiErr.Message)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, rep.count())
}

func TestClient_ErrorDeTransporte(t *testing.T) {
	srv, _ := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {})
	c := newClient(srv, &fakeTokens{}, &fakeReporter{})
	srv.Close()

	err := c.Do(context.Background(), http.MethodGet, "/farms", nil, nil)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Acciones de dominio
// ──────────────────────────────────────────────────────────────────────────────

func TestDomainActions_RutasYCuerpos(t *testing.T) {
	srv, calls := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})
	c := newClient(srv, &fakeTokens{token: "t"}, &fakeReporter{})
	ctx := context.Background()

	_, err := backend.NewCropAPI(c).RecordHarvest(ctx, 7, decimal.RequireFromString("12.5"), 4)
	require.NoError(t, err)
	require.NoError(t, backend.NewHarvestAPI(c).TransferToInventory(ctx, 3, 9))
	_, err = backend.NewOrderAPI(c).UpdateStatus(ctx, 5, entity.OrderStatusShipped)
	require.NoError(t, err)
	_, err = backend.NewStaffAPI(c).AssignToFarm(ctx, 2, 1)
	require.NoError(t, err)
	_, err = backend.NewInventoryAPI(c).UpdateQuantity(ctx, 4, decimal.RequireFromString("30"))
	require.NoError(t, err)
	require.NoError(t, backend.NewFarmAPI(c).ManageStaff(ctx, 1, 8))

	want := []struct{ method, path, body string }{
		{http.MethodPost, "/api/crops/7/record-harvest", `{"yield":"12.5","qualityRating":4}`},
		{http.MethodPost, "/api/harvests/3/transfer-to-inventory/9", ""},
		{http.MethodPut, "/api/orders/5/update-status", `{"status":"SHIPPED"}`},
		{http.MethodPost, "/api/staff-and-volunteers/2/assign-to-farm/1", ""},
		{http.MethodPut, "/api/inventory/update-quantity/4/30", ""},
		{http.MethodPost, "/api/farms/1/manage-staff/8", ""},
	}
	require.Len(t, *calls, len(want))
	for i, w := range want {
		got := (*calls)[i]
		assert.Equal(t, w.method, got.Method, w.path)
		assert.Equal(t, w.path, got.Path)
		if w.body == "" {
			assert.Empty(t, got.Body, w.path)
		} else {
			assert.JSONEq(t, w.body, got.Body, w.path)
		}
	}
}

func TestCheckAvailability_AceptaAmbosFormatos(t *testing.T) {
	for name, body := range map[string]string{
		"booleano": `true`,
		"objeto":   `{"available": true}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv, calls := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, body)
			})
			ok, err := backend.NewInventoryAPI(newClient(srv, &fakeTokens{}, &fakeReporter{})).
				CheckAvailability(context.Background(), 4, decimal.RequireFromString("2.5"))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "/api/inventory/check-availability/4/2.5", (*calls)[0].Path)
		})
	}
}

func TestSearchAPI_EscapaQuery(t *testing.T) {
	srv, calls := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []entity.SearchResult{{ID: 1, Type: "crop", Name: "Albahaca"}})
	})
	got, err := backend.NewSearchAPI(newClient(srv, &fakeTokens{}, &fakeReporter{})).Search(context.Background(), "tomate cherry")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/api/search?q=tomate+cherry", (*calls)[0].Path)
}

func TestGetAll_RespuestaNullEsListaVacia(t *testing.T) {
	srv, _ := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "null")
	})
	got, err := backend.NewStaffAPI(newClient(srv, &fakeTokens{}, &fakeReporter{})).GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
