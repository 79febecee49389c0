// Package config junta la configuración de runtime desde el entorno.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config son los knobs del server y la selección de backend de storage.
// DatabaseURL/DatabaseName pueden faltar: el server arranca igual y /test
// reporta la ausencia (no se crashea al inicio).
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration

	DatabaseURL  string // connection string del document store (mongo)
	DatabaseName string
	PostgresDSN  string // backend relacional alternativo
	MemoryStore  bool   // STORE=memory, solo para dev/tests
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durenvs(key string, defSec int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(n) * time.Second
}

// Load lee el entorno con defaults.
func Load() Config {
	return Config{
		Addr:            ":" + getenv("PORT", "8000"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 10),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DatabaseName:    os.Getenv("DATABASE_NAME"),
		PostgresDSN:     os.Getenv("DB_DSN"),
		MemoryStore:     os.Getenv("STORE") == "memory",
	}
}
