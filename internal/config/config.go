package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Port is the HTTP server port.
	Port int

	// SupabaseURL is the project URL (https://xxx.supabase.co).
	SupabaseURL string

	// SupabaseAnonKey is the anon API key used by PostgREST and Storage.
	SupabaseAnonKey string

	// DatabaseURL is an optional direct Postgres connection string. When
	// set, the server reads posts over SQL instead of PostgREST.
	DatabaseURL string

	// RealtimeURL is the Supabase Realtime websocket endpoint. Derived
	// from SupabaseURL when empty.
	RealtimeURL string

	// StaticLatitude/StaticLongitude pin the client's position instead of
	// an IP lookup. Both must be set to take effect.
	StaticLatitude  *float64
	StaticLongitude *float64

	// GeoIPEndpoint is the IP-geolocation service queried when no static
	// position is configured.
	GeoIPEndpoint string

	// PreferenceBackend selects the preference store: "file" or "keyring".
	PreferenceBackend string
}

// Load reads configuration from the environment, after merging in a .env
// file when one exists, and applies defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Production setups export real environment variables instead.
		log.Println("no .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:              8080,
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:   os.Getenv("SUPABASE_ANON_KEY"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RealtimeURL:       os.Getenv("SUPABASE_REALTIME_URL"),
		GeoIPEndpoint:     "https://ipapi.co/json/",
		PreferenceBackend: "file",
	}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = port
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}

	if ep := os.Getenv("LIGUSTER_GEOIP_ENDPOINT"); ep != "" {
		cfg.GeoIPEndpoint = ep
	}
	if b := os.Getenv("LIGUSTER_PREFERENCES"); b != "" {
		if b != "file" && b != "keyring" {
			return nil, fmt.Errorf("invalid LIGUSTER_PREFERENCES %q (want file or keyring)", b)
		}
		cfg.PreferenceBackend = b
	}

	lat, latSet := os.LookupEnv("LIGUSTER_LATITUDE")
	lng, lngSet := os.LookupEnv("LIGUSTER_LONGITUDE")
	if latSet != lngSet {
		return nil, fmt.Errorf("LIGUSTER_LATITUDE and LIGUSTER_LONGITUDE must be set together")
	}
	if latSet {
		latF, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LIGUSTER_LATITUDE: %w", err)
		}
		lngF, err := strconv.ParseFloat(lng, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LIGUSTER_LONGITUDE: %w", err)
		}
		cfg.StaticLatitude = &latF
		cfg.StaticLongitude = &lngF
	}

	return cfg, nil
}
