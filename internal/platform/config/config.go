package config

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
	Log      LogConfig      `mapstructure:"log"`
	Session  SessionConfig  `mapstructure:"session"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type HTTPConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// MaxUploadBytes limita el body de formularios multipart.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

// DatabaseConfig: si DSN está vacío se usan repos in-memory.
type DatabaseConfig struct {
	DSN            string `mapstructure:"dsn"`
	ConnectRetries uint   `mapstructure:"connect_retries"`
}

type UploadsConfig struct {
	// Dir es la raíz donde se guardan adoptions/, animals/ y rescues/.
	Dir string `mapstructure:"dir"`
	// URLPrefix es la ruta pública bajo la cual se sirve Dir.
	URLPrefix string `mapstructure:"url_prefix"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name"`
	TTL        time.Duration `mapstructure:"ttl"`
	Secure     bool          `mapstructure:"secure"`
}

var (
	// envBindings maps config keys to env vars; the first one set wins.
	envBindings = map[string][]string{
		"app.name":                 {"APP_NAME"},
		"http.addr":                {"HTTP_ADDR"},
		"http.read_timeout":        {"HTTP_READ_TIMEOUT"},
		"http.write_timeout":       {"HTTP_WRITE_TIMEOUT"},
		"http.max_upload_bytes":    {"HTTP_MAX_UPLOAD_BYTES"},
		"database.dsn":             {"DB_DSN", "DATABASE_URL"},
		"database.connect_retries": {"DB_CONNECT_RETRIES"},
		"uploads.dir":              {"UPLOAD_DIR"},
		"uploads.url_prefix":       {"UPLOAD_URL_PREFIX"},
		"log.level":                {"LOG_LEVEL"},
		"log.format":               {"LOG_FORMAT"},
		"session.cookie_name":      {"SESSION_COOKIE_NAME"},
		"session.ttl":              {"SESSION_TTL"},
		"session.secure":           {"SESSION_SECURE"},
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "animal-rescue-portal")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.max_upload_bytes", int64(16<<20))
	v.SetDefault("database.connect_retries", 5)
	v.SetDefault("uploads.dir", "static/uploads")
	v.SetDefault("uploads.url_prefix", "/static/uploads")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("session.cookie_name", "rescue_session")
	v.SetDefault("session.ttl", 7*24*time.Hour)
	v.SetDefault("session.secure", false)
}

// Load carga .env (si existe), luego el archivo opcional filePath y por
// último las variables de entorno, que tienen prioridad.
func Load(filePath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if strings.TrimSpace(filePath) != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// PORT (convención de PaaS) pisa http.addr si viene sola.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && os.Getenv("HTTP_ADDR") == "" {
		cfg.HTTP.Addr = ":" + port
	}

	return cfg, nil
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(envs, 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}
	return nil
}
