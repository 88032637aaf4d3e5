package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	// Remote store: Postgres by default, Supabase REST when SupabaseURL is set
	SupabaseURL string
	SupabaseKey string

	// Local fallback store (SQLite file)
	LocalStorePath string

	// Fixed shared tenant: every operator of a deployment edits the same record
	TenantID string

	QuietWindowMS int // debounce quiet window for autosave, in milliseconds
	SettleDelayMS int // settle delay before the first export capture

	ExportScale       int // supersampling factor for rasterized pages
	ExportJPEGQuality int // embedded raster quality, small file size over fidelity
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		SupabaseURL: getEnv("SUPABASE_URL", ""),
		SupabaseKey: getEnv("SUPABASE_KEY", ""),

		LocalStorePath: getEnv("LOCAL_STORE_PATH", "certmaster_local.db"),

		TenantID: getEnv("TENANT_ID", "00000000-0000-0000-0000-000000000000"),

		QuietWindowMS: getEnvInt("QUIET_WINDOW_MS", 2000),
		SettleDelayMS: getEnvInt("SETTLE_DELAY_MS", 1000),

		ExportScale:       getEnvInt("EXPORT_SCALE", 2),
		ExportJPEGQuality: getEnvInt("EXPORT_JPEG_QUALITY", 80),
	}

	if AppConfig.SupabaseURL != "" && AppConfig.SupabaseKey == "" {
		log.Println("Warning: SUPABASE_URL is set without SUPABASE_KEY. Requests will be rejected by the remote store.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
