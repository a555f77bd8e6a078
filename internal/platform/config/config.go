package config

import (
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// Sumber katalog. Jika keduanya kosong, katalog bawaan yang dipakai.
type CatalogConfig struct {
	File string // path file JSON berisi [{id, name, price}]
	DSN  string // Data Source Name untuk tabel products (read-only)
}

type DisplayConfig struct {
	CurrencySymbol string
}

type LogConfig struct {
	Level  string
	Format string // json | console
}

func LoadServerConfig(defaultPort string) ServerConfig {
	port := defaultPort
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}
	timeout := GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 5)
	if timeout <= 0 {
		timeout = 5
	}
	return ServerConfig{
		Port:            ":" + port,
		ShutdownTimeout: time.Duration(timeout) * time.Second,
	}
}

func LoadCatalogConfig() CatalogConfig {
	return CatalogConfig{
		File: GetEnv("CATALOG_FILE", ""),
		DSN:  GetEnv("CATALOG_DB_DSN", ""),
	}
}

func LoadDisplayConfig() DisplayConfig {
	return DisplayConfig{CurrencySymbol: GetEnv("CURRENCY_SYMBOL", "€")}
}

func LoadLogConfig() LogConfig {
	return LogConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "json"),
	}
}

// Helper untuk mendapatkan Environment Variable jika ada, atau default
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	strValue := GetEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
