package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// RootModeDashboard serves the HTML dashboard on /
	RootModeDashboard = "dashboard"
	// RootModeJSON serves a JSON greeting on /
	RootModeJSON = "json"

	DefaultAppVersion = "0.1.0"
	DefaultAppEnv     = "local"
	DefaultAppName    = "crystalpine-devops-lab"
	DefaultK8sProxy   = "http://localhost:8001"
)

// Config holds the process-level settings read once at startup.
// Version metadata (APP_VERSION, GIT_COMMIT, APP_ENV) is not part of it;
// services.VersionService reads those on every request.
type Config struct {
	AppName         string `validate:"required"`
	Port            int    `validate:"min=1,max=65535"`
	GinMode         string `validate:"oneof=debug release test"`
	RootMode        string `validate:"oneof=dashboard json"`
	DatabaseURL     string
	K8sProbe        bool
	K8sProxyURL     string        `validate:"omitempty,url"`
	CheckTimeout    time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// LookupEnv returns a pointer to the variable's value, or nil when it is unset.
// An empty but set variable yields a pointer to "".
func LookupEnv(key string) *string {
	if value, exists := os.LookupEnv(key); exists {
		return &value
	}
	return nil
}

// Load builds and validates the Config from the environment
func Load() (Config, error) {
	port, err := strconv.Atoi(GetEnv("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}

	k8sProbe, err := strconv.ParseBool(GetEnv("K8S_PROBE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid K8S_PROBE: %w", err)
	}

	checkTimeout, err := time.ParseDuration(GetEnv("CHECK_TIMEOUT", "2s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CHECK_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(GetEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppName:         GetEnv("APP_NAME", DefaultAppName),
		Port:            port,
		GinMode:         GetEnv("GIN_MODE", "release"),
		RootMode:        GetEnv("ROOT_MODE", RootModeDashboard),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		K8sProbe:        k8sProbe,
		K8sProxyURL:     GetEnv("K8S_PROXY_URL", DefaultK8sProxy),
		CheckTimeout:    checkTimeout,
		ShutdownTimeout: shutdownTimeout,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
