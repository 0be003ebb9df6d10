package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`    // How long startup keeps retrying the first connection
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string        `mapstructure:"host_port"`
	Namespace                          string        `mapstructure:"namespace"`
	TaskQueue                          string        `mapstructure:"task_queue"`
	CronSchedule                       string        `mapstructure:"cron_schedule"`
	StepTimeout                        time.Duration `mapstructure:"step_timeout"`
	EnrichAfterRun                     bool          `mapstructure:"enrich_after_run"`
	MaxConcurrentActivityExecutionSize int           `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64       `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int           `mapstructure:"max_concurrent_activity_task_pollers"`
}

// InventoryConfig holds the SFTP inventory configuration
type InventoryConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	PrivateKeyPath string        `mapstructure:"private_key_path"`
	HostKey        string        `mapstructure:"host_key"` // authorized_keys format; empty disables verification
	Directory      string        `mapstructure:"directory"`
	Pattern        string        `mapstructure:"pattern"`
	TrimExtension  bool          `mapstructure:"trim_extension"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// YouTubeConfig holds YouTube Data API configuration
type YouTubeConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Parts           []string      `mapstructure:"parts"`
	Endpoint        string        `mapstructure:"endpoint"`
	MaxRetryElapsed time.Duration `mapstructure:"max_retry_elapsed"`
	RateLimit       RateLimit     `mapstructure:"rate_limit"`
}

// RateLimit holds the client-side request rate of a collaborator
type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// TranscriptConfig holds timed-text transcript configuration
type TranscriptConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Languages []string      `mapstructure:"languages"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit RateLimit     `mapstructure:"rate_limit"`
}

// ModelsConfig holds the paths of the two model artifacts
type ModelsConfig struct {
	PopularityPath string `mapstructure:"popularity_path"`
	SentimentPath  string `mapstructure:"sentiment_path"`
}

// CalendarConfig holds the seeded calendar range
type CalendarConfig struct {
	Start string `mapstructure:"start"` // YYYY-MM-DD
	End   string `mapstructure:"end"`   // YYYY-MM-DD
}

// Range parses the calendar range
func (c CalendarConfig) Range() (time.Time, time.Time, error) {
	start, err := time.Parse(time.DateOnly, c.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid calendar.start: %w", err)
	}
	end, err := time.Parse(time.DateOnly, c.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid calendar.end: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("calendar.end is before calendar.start")
	}
	return start, end, nil
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize int `mapstructure:"pool_size"`
}

// EnricherSettings holds the enricher runner configuration
type EnricherSettings struct {
	Worker WorkerConfig `mapstructure:"worker"`
}

// IngestConfig holds configuration for the ingest trigger
type IngestConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Temporal    TemporalConfig   `mapstructure:"temporal"`
	NATS        NATSConfig       `mapstructure:"nats"`
	Inventory   InventoryConfig  `mapstructure:"inventory"`
	YouTube     YouTubeConfig    `mapstructure:"youtube"`
	Transcript  TranscriptConfig `mapstructure:"transcript"`
	Calendar    CalendarConfig   `mapstructure:"calendar"`
	RunLeaseTTL time.Duration    `mapstructure:"run_lease_ttl"`
	Retention   time.Duration    `mapstructure:"retention"`
}

// WorkerProcessConfig holds configuration for the Temporal worker
type WorkerProcessConfig struct {
	IngestConfig `mapstructure:",squash"`
	Models       ModelsConfig `mapstructure:"models"`
}

// EnricherConfig holds configuration for the enricher
type EnricherConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Models     ModelsConfig     `mapstructure:"models"`
	Enricher   EnricherSettings `mapstructure:"enricher"`
}

// RetentionSweeperConfig holds the continuous retention sweeper configuration
type RetentionSweeperConfig struct {
	Window   time.Duration `mapstructure:"window"`
	Interval time.Duration `mapstructure:"interval"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig       `mapstructure:",squash"`
	Database         DatabaseConfig         `mapstructure:"database"`
	RetentionSweeper RetentionSweeperConfig `mapstructure:"retention_sweeper"`
}

// LoadIngestConfig loads configuration for the ingest trigger
func LoadIngestConfig(configFile string, envPath string) (*IngestConfig, error) {
	v := configureViper("ingest", configFile, envPath)
	setCommonDefaults(v)
	setIngestDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg IngestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWorkerConfig loads configuration for the Temporal worker
func LoadWorkerConfig(configFile string, envPath string) (*WorkerProcessConfig, error) {
	v := configureViper("worker", configFile, envPath)
	setCommonDefaults(v)
	setIngestDefaults(v)
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 4)
	v.SetDefault("temporal.worker_activities_per_second", 10)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 2)
	v.SetDefault("temporal.enrich_after_run", true)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg WorkerProcessConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}
	if err := validateModels(cfg.Models); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnricherConfig loads configuration for the enricher
func LoadEnricherConfig(configFile string, envPath string) (*EnricherConfig, error) {
	v := configureViper("enricher", configFile, envPath)
	setCommonDefaults(v)
	v.SetDefault("enricher.worker.pool_size", 2)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg EnricherConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}
	if err := validateModels(cfg.Models); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)
	setCommonDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("retention_sweeper.window", domain.RetentionWindow.String())
	v.SetDefault("retention_sweeper.interval", "1h")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("database.connect_timeout", "1m")
}

func setIngestDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.task_queue", "video-warehouse")
	v.SetDefault("temporal.step_timeout", "30m")
	v.SetDefault("nats.subject_prefix", "warehouse")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "video-warehouse")
	v.SetDefault("inventory.port", 22)
	v.SetDefault("inventory.directory", ".")
	v.SetDefault("inventory.pattern", "*")
	v.SetDefault("inventory.timeout", "30s")
	v.SetDefault("youtube.timeout", "30s")
	v.SetDefault("youtube.parts", []string{"snippet", "statistics", "contentDetails"})
	v.SetDefault("youtube.max_retry_elapsed", "2m")
	v.SetDefault("youtube.rate_limit.requests_per_second", 5)
	v.SetDefault("youtube.rate_limit.burst", 5)
	v.SetDefault("transcript.base_url", "https://video.google.com/timedtext")
	v.SetDefault("transcript.languages", []string{"en"})
	v.SetDefault("transcript.timeout", "30s")
	v.SetDefault("transcript.rate_limit.requests_per_second", 2)
	v.SetDefault("transcript.rate_limit.burst", 2)
	v.SetDefault("calendar.start", "2005-01-01")
	v.SetDefault("calendar.end", "2035-12-31")
	v.SetDefault("run_lease_ttl", domain.DefaultRunLeaseTTL.String())
	v.SetDefault("retention", domain.RetentionWindow.String())
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func validateDatabase(cfg DatabaseConfig) error {
	if cfg.Host == "" {
		return errors.New("database.host is required")
	}
	if cfg.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

func validateModels(cfg ModelsConfig) error {
	if cfg.PopularityPath == "" {
		return errors.New("models.popularity_path is required")
	}
	if cfg.SentimentPath == "" {
		return errors.New("models.sentiment_path is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/worker/, cmd/ingest/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("VIDEO_WAREHOUSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.connect_timeout",
		// NATS
		"nats.url",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.task_queue",
		"temporal.cron_schedule",
		"temporal.step_timeout",
		"temporal.enrich_after_run",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Inventory
		"inventory.host",
		"inventory.port",
		"inventory.user",
		"inventory.password",
		"inventory.private_key_path",
		"inventory.host_key",
		"inventory.directory",
		"inventory.pattern",
		"inventory.trim_extension",
		"inventory.timeout",
		// YouTube
		"youtube.api_key",
		"youtube.timeout",
		"youtube.parts",
		"youtube.endpoint",
		"youtube.max_retry_elapsed",
		"youtube.rate_limit.requests_per_second",
		"youtube.rate_limit.burst",
		// Transcript
		"transcript.base_url",
		"transcript.languages",
		"transcript.timeout",
		"transcript.rate_limit.requests_per_second",
		"transcript.rate_limit.burst",
		// Models
		"models.popularity_path",
		"models.sentiment_path",
		// Calendar
		"calendar.start",
		"calendar.end",
		// Run
		"run_lease_ttl",
		"retention",
		// Enricher
		"enricher.worker.pool_size",
		// Retention sweeper
		"retention_sweeper.window",
		"retention_sweeper.interval",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
