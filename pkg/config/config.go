package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del dashboard (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Backend    BackendConfig
	Storage    StorageConfig
	DB         DBConfig
	Demo       DemoConfig
	Search     SearchConfig
	Prediction PredictionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env                string // development, staging, production
	Name               string
	LogLevel           string
	LoginRatePerMinute int
}

// HTTPConfig configuración del servidor de páginas.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig apunta a la API REST de la granja (sistema de registro).
// Timeout cero significa sin límite: las peticiones corren hasta completar o fallar.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Drivers de almacenamiento del estado del cliente (token y notificaciones).
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// StorageConfig dónde se persiste el estado del operador.
type StorageConfig struct {
	Driver string
	Path   string // solo para el driver "file"
}

// DBConfig configuración de PostgreSQL (solo con STORAGE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// DemoConfig credenciales de demostración y bandera de modo demo.
// Mode es la única bandera que decide entre datos de ejemplo y listas vacías ante fallos de la API.
type DemoConfig struct {
	Mode     bool
	Email    string
	Password string
}

// SearchConfig fuente de la búsqueda global.
type SearchConfig struct {
	UseBackend bool
}

// PredictionConfig amplitud del ruido aleatorio del estimador (0 = determinista).
type PredictionConfig struct {
	Jitter float64
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, STORAGE_DRIVER, DEMO_MODE, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:                getString(v, "APP_ENV", "development"),
			Name:               getString(v, "APP_NAME", "urbanfarm-dashboard"),
			LogLevel:           getString(v, "LOG_LEVEL", "info"),
			LoginRatePerMinute: getInt(v, "LOGIN_RATE_PER_MINUTE", 10),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:8080/api"), "/"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", StorageFile)),
			Path:   getString(v, "STORAGE_PATH", ".urbanfarm/state.json"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "urbanfarm"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Demo: DemoConfig{
			Mode:     getBool(v, "DEMO_MODE", false),
			Email:    getString(v, "DEMO_EMAIL", "admin@urbanfarm.com"),
			Password: getString(v, "DEMO_PASSWORD", "password123"),
		},
		Search: SearchConfig{
			UseBackend: getBool(v, "SEARCH_USE_BACKEND", false),
		},
		Prediction: PredictionConfig{
			Jitter: getFloat(v, "PREDICTION_JITTER", 0),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageFile, StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q", c.Storage.Driver)
	}
	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("config: API_BASE_URL inválida: %w", err)
	}
	if c.Prediction.Jitter < 0 || c.Prediction.Jitter > 1 {
		return fmt.Errorf("config: PREDICTION_JITTER fuera de rango [0,1]: %v", c.Prediction.Jitter)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil {
		return def
	}
	return f
}
