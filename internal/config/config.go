package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración del proceso, leída de variables de entorno.
type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string

	AppName   string
	LogLevel  string
	LogFormat string
}

// Load carga .env si existe (best effort) y después lee el entorno. El .env
// nunca pisa variables ya exportadas.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getEnv("PORT", "8080"),
		DBDSN:     getEnv("DB_DSN", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),

		AppName:   getEnv("APP_NAME", "medication-scheduler"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
