package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/spf13/viper"
)

// Report storage backends
const (
	ReportBackendMemory = "memory"
	ReportBackendAzure  = "azure"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Clinic  ClinicConfig
	Reports ReportsConfig
	Audit   AuditConfig
	Sentry  SentryConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	Environment     string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// StoreConfig holds record store configuration
type StoreConfig struct {
	Seed bool
}

// ClinicConfig holds clinic-wide settings used by the reporting functions
type ClinicConfig struct {
	Timezone      string
	WeekStart     string
	CurrentUserID int
	PageSize      int
}

// ReportsConfig holds analytics report storage configuration
type ReportsConfig struct {
	Backend string
	Azure   AzureStorageConfig
}

// AzureStorageConfig holds Azure Blob Storage configuration
type AzureStorageConfig struct {
	AccountName      string
	AccountKey       string
	ConnectionString string
	BlobEndpoint     string
	Container        string
}

// AuditConfig holds audit trail configuration
type AuditConfig struct {
	Capacity int
}

// SentryConfig holds error reporting configuration
type SentryConfig struct {
	DSN string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Read from environment variables
	v.AutomaticEnv()

	// Bind specific environment variables
	bindEnvVars(v)

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.shutdowntimeout", 30*time.Second)
	v.SetDefault("server.corsorigins", []string{"*"})

	// Store defaults
	v.SetDefault("store.seed", true)

	// Clinic defaults
	v.SetDefault("clinic.timezone", "Local")
	v.SetDefault("clinic.weekstart", "sunday")
	v.SetDefault("clinic.currentuserid", 1)
	v.SetDefault("clinic.pagesize", analytics.DefaultPageSize)

	// Report defaults
	v.SetDefault("reports.backend", ReportBackendMemory)
	v.SetDefault("reports.azure.container", "analytics-reports")

	v.SetDefault("audit.capacity", 1000)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.environment", "ENV", "ENVIRONMENT")
	v.BindEnv("server.corsorigins", "CORS_ORIGINS")

	// Store
	v.BindEnv("store.seed", "SEED_DATA")

	// Clinic
	v.BindEnv("clinic.timezone", "CLINIC_TIMEZONE")
	v.BindEnv("clinic.weekstart", "CLINIC_WEEK_START")
	v.BindEnv("clinic.currentuserid", "CURRENT_USER_ID")
	v.BindEnv("clinic.pagesize", "VISIT_PAGE_SIZE")

	// Reports
	v.BindEnv("reports.backend", "REPORTS_BACKEND")
	v.BindEnv("reports.azure.accountname", "AZURE_STORAGE_ACCOUNT_NAME")
	v.BindEnv("reports.azure.accountkey", "AZURE_STORAGE_ACCOUNT_KEY")
	v.BindEnv("reports.azure.connectionstring", "AZURE_STORAGE_CONNECTION_STRING")
	v.BindEnv("reports.azure.blobendpoint", "AZURE_STORAGE_BLOB_ENDPOINT")
	v.BindEnv("reports.azure.container", "AZURE_STORAGE_REPORT_CONTAINER")

	v.BindEnv("audit.capacity", "AUDIT_CAPACITY")

	// Sentry
	v.BindEnv("sentry.dsn", "SENTRY_DSN")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")
	v.BindEnv("logging.format", "LOG_FORMAT")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if _, err := c.WeekStart(); err != nil {
		return err
	}

	if c.Clinic.PageSize <= 0 || c.Clinic.PageSize > analytics.MaxPageSize {
		return fmt.Errorf("clinic.pagesize must be between 1 and %d, got %d", analytics.MaxPageSize, c.Clinic.PageSize)
	}

	switch c.Reports.Backend {
	case ReportBackendMemory:
	case ReportBackendAzure:
		storage := c.Reports.Azure
		if storage.ConnectionString == "" && (storage.AccountName == "" || storage.AccountKey == "") {
			return fmt.Errorf("azure storage credentials are required (either connection string or account name + key)")
		}
		if storage.Container == "" {
			return fmt.Errorf("reports.azure.container is required")
		}
	default:
		return fmt.Errorf("reports.backend must be %q or %q, got %q", ReportBackendMemory, ReportBackendAzure, c.Reports.Backend)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}

// Location returns the clinic time zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Clinic.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid clinic.timezone %q: %w", c.Clinic.Timezone, err)
	}
	return loc, nil
}

// WeekStart returns the first day of the clinic week
func (c *Config) WeekStart() (time.Weekday, error) {
	day, err := analytics.ParseWeekday(c.Clinic.WeekStart)
	if err != nil {
		return time.Sunday, fmt.Errorf("invalid clinic.weekstart: %w", err)
	}
	return day, nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
