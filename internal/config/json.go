package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/flagx"
	"github.com/dmitrijs2005/eventhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero", so a partial file only overrides
// what it names.
type JsonConfig struct {
	StorageBackend *string `json:"storage_backend"`
	DatabaseDSN    *string `json:"database_dsn"`
	BoltPath       *string `json:"bolt_path"`

	S3Bucket       *string `json:"s3_bucket"`
	S3Region       *string `json:"s3_region"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
	S3AccessKey    *string `json:"s3_access_key"`
	S3SecretKey    *string `json:"s3_secret_key"`
	S3Prefix       *string `json:"s3_prefix"`

	StorageTimeout *timex.Duration `json:"storage_timeout"`
	SeedDemoEvents *bool           `json:"seed_demo_events"`
	AutoProvision  *bool           `json:"auto_provision"`

	LogLevel    *string `json:"log_level"`
	LogFormat   *string `json:"log_format"`
	HistoryFile *string `json:"history_file"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config in args. Without such a flag nothing happens. Read and unmarshal
// errors panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigFile(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.BoltPath, jc.BoltPath)

	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3Prefix, jc.S3Prefix)

	if jc.StorageTimeout != nil {
		cfg.StorageTimeout = time.Duration(jc.StorageTimeout.Duration)
	}
	if jc.SeedDemoEvents != nil {
		cfg.SeedDemoEvents = *jc.SeedDemoEvents
	}
	if jc.AutoProvision != nil {
		cfg.AutoProvision = *jc.AutoProvision
	}

	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.HistoryFile, jc.HistoryFile)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
