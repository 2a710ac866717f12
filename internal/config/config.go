package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	AdminUser string
	AdminPass string

	SessionSecret   string
	SessionLifetime time.Duration

	DataDir   string
	ImagesDir string
	PublicDir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	// Matches the one-year cookie lifetime the admin UI expects.
	lifetime, err := time.ParseDuration(getEnv("SESSION_LIFETIME", "8760h"))
	if err != nil {
		lifetime = 8760 * time.Hour
	}

	return &Config{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("ENV", "development"),

		AdminUser: getEnvOrPanic("ADMIN_USER"),
		AdminPass: getEnvOrPanic("ADMIN_PASS"),

		SessionSecret:   getEnvOrPanic("SESSION_SECRET"),
		SessionLifetime: lifetime,

		DataDir:   getEnv("DATA_DIR", "data"),
		ImagesDir: getEnv("IMAGES_DIR", "images"),
		PublicDir: getEnv("PUBLIC_DIR", "public"),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DataPath is the live places document.
func (c *Config) DataPath() string {
	return filepath.Join(c.DataDir, "places.json")
}

// BackupDir holds the timestamped snapshots of the live document.
func (c *Config) BackupDir() string {
	return filepath.Join(c.DataDir, "backup")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
