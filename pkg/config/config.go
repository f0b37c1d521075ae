package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS       CORSConfig
	Log        LogConfig
	Curriculum CurriculumConfig
	Reports    ReportsConfig
	Seed       SeedConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CurriculumConfig declares the degree policy. It is the single source for
// the Curriculum value injected into the registration and graduation
// engines; there is no ambient curriculum state.
type CurriculumConfig struct {
	TotalCredits      int
	MinTrackElectives int
	RequiredCourses   []string
	// TrackElectives maps a track enum name to its elective course codes.
	TrackElectives map[string][]string
}

// ReportsConfig configures asynchronous report generation.
type ReportsConfig struct {
	Enabled           bool
	StorageDir        string
	SignedURLSecret   string
	SignedURLTTL      time.Duration
	CleanupInterval   time.Duration
	WorkerConcurrency int
	WorkerRetries     int
}

// SeedConfig toggles the bundled sample catalog.
type SeedConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Curriculum = CurriculumConfig{
		TotalCredits:      v.GetInt("CURRICULUM_TOTAL_CREDITS"),
		MinTrackElectives: v.GetInt("CURRICULUM_MIN_TRACK_ELECTIVES"),
		RequiredCourses:   splitAndTrim(v.GetString("CURRICULUM_REQUIRED_COURSES")),
		TrackElectives: map[string][]string{
			"SOFTWARE_ENGINEERING": splitAndTrim(v.GetString("CURRICULUM_ELECTIVES_SOFTWARE_ENGINEERING")),
			"DATA_ANALYTICS":       splitAndTrim(v.GetString("CURRICULUM_ELECTIVES_DATA_ANALYTICS")),
			"NETWORK_SECURITY":     splitAndTrim(v.GetString("CURRICULUM_ELECTIVES_NETWORK_SECURITY")),
			"E_COMMERCE":           splitAndTrim(v.GetString("CURRICULUM_ELECTIVES_E_COMMERCE")),
		},
	}

	cfg.Reports = ReportsConfig{
		Enabled:           v.GetBool("ENABLE_REPORTS"),
		StorageDir:        v.GetString("REPORTS_STORAGE_DIR"),
		SignedURLSecret:   v.GetString("REPORTS_SIGNED_URL_SECRET"),
		SignedURLTTL:      parseDuration(v.GetString("REPORTS_SIGNED_URL_TTL"), 24*time.Hour),
		CleanupInterval:   parseDuration(v.GetString("REPORTS_CLEANUP_INTERVAL"), time.Hour),
		WorkerConcurrency: v.GetInt("REPORTS_WORKER_CONCURRENCY"),
		WorkerRetries:     v.GetInt("REPORTS_WORKER_RETRIES"),
	}

	cfg.Seed = SeedConfig{
		Enabled: v.GetBool("ENABLE_SAMPLE_DATA"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CURRICULUM_TOTAL_CREDITS", 120)
	v.SetDefault("CURRICULUM_MIN_TRACK_ELECTIVES", 2)
	v.SetDefault("CURRICULUM_REQUIRED_COURSES", "CS101,CS102,CS201,MA101")
	v.SetDefault("CURRICULUM_ELECTIVES_SOFTWARE_ENGINEERING", "SE210")
	v.SetDefault("CURRICULUM_ELECTIVES_DATA_ANALYTICS", "DA220")
	v.SetDefault("CURRICULUM_ELECTIVES_NETWORK_SECURITY", "NS230")
	v.SetDefault("CURRICULUM_ELECTIVES_E_COMMERCE", "EC240")

	v.SetDefault("ENABLE_REPORTS", false)
	v.SetDefault("REPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("REPORTS_SIGNED_URL_SECRET", "dev_reports_secret")
	v.SetDefault("REPORTS_SIGNED_URL_TTL", "24h")
	v.SetDefault("REPORTS_CLEANUP_INTERVAL", "1h")
	v.SetDefault("REPORTS_WORKER_CONCURRENCY", 1)
	v.SetDefault("REPORTS_WORKER_RETRIES", 3)

	v.SetDefault("ENABLE_SAMPLE_DATA", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
