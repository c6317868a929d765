package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries all process configuration. It is built once in main and
// handed to the pieces that need it; nothing reads the environment after Load.
type Config struct {
	Port      string
	Env       string
	DBPath    string
	JWTSecret string
	UploadDir string

	AdminDefaultPassword string

	CORSOrigin string

	// TrustedProxies is handed to gin's SetTrustedProxies. Client IPs from
	// forwarded headers are only honored when the deployment lists its
	// proxies here; the default trusts nobody.
	TrustedProxies []string
}

// IsProduction reports whether the server runs with production settings
// (release mode, Secure session cookie).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("APP_ENV", "development"),
		DBPath:               getEnv("DB_PATH", "data/wedding.db"),
		JWTSecret:            mustEnv("JWT_SECRET"),
		UploadDir:            getEnv("UPLOAD_DIR", "public/uploads"),
		AdminDefaultPassword: getEnv("ADMIN_DEFAULT_PASSWORD", "Admin123!"),
		CORSOrigin:           getEnv("CORS_ORIGIN", "http://localhost:3000"),
		TrustedProxies:       splitList(os.Getenv("TRUSTED_PROXIES")),
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
