package config

import "time"

// Config holds runtime settings for the eventhub CLI.
//
// Units: StorageTimeout bounds every single storage call.
type Config struct {
	StorageBackend string `env:"EVENTHUB_STORAGE_BACKEND"`
	DatabaseDSN    string `env:"EVENTHUB_DATABASE_DSN"`
	BoltPath       string `env:"EVENTHUB_BOLT_PATH"`

	S3Bucket       string `env:"EVENTHUB_S3_BUCKET"`
	S3Region       string `env:"EVENTHUB_S3_REGION"`
	S3BaseEndpoint string `env:"EVENTHUB_S3_BASE_ENDPOINT"`
	S3AccessKey    string `env:"EVENTHUB_S3_ACCESS_KEY"`
	S3SecretKey    string `env:"EVENTHUB_S3_SECRET_KEY"`
	S3Prefix       string `env:"EVENTHUB_S3_PREFIX"`

	StorageTimeout time.Duration `env:"EVENTHUB_STORAGE_TIMEOUT"`
	SeedDemoEvents bool          `env:"EVENTHUB_SEED_DEMO_EVENTS"`
	AutoProvision  bool          `env:"EVENTHUB_AUTO_PROVISION"`

	LogLevel    string `env:"EVENTHUB_LOG_LEVEL"`
	LogFormat   string `env:"EVENTHUB_LOG_FORMAT"`
	HistoryFile string `env:"EVENTHUB_HISTORY_FILE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = "sqlite"
	c.DatabaseDSN = "eventhub.db"
	c.BoltPath = "eventhub.bolt"

	c.S3Bucket = "eventhub"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3AccessKey = ""
	c.S3SecretKey = ""
	c.S3Prefix = "eventhub/"

	c.StorageTimeout = 5 * time.Second
	c.SeedDemoEvents = true
	c.AutoProvision = true

	c.LogLevel = "info"
	c.LogFormat = "text"
	c.HistoryFile = ".eventhub_history"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg, args)
	return cfg, nil
}
