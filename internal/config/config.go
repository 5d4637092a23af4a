package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	// LogLevel is the level of logs to output (debug|info|warn|error)
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// LogFile is an optional path that receives a rotated copy of the logs
	LogFile string `env:"LOG_FILE" default:""`

	// LogFileMaxSizeMB is the size at which the log file is rotated
	LogFileMaxSizeMB int `env:"LOG_FILE_MAX_SIZE_MB" default:"100"`

	// LogFileMaxBackups is the number of rotated log files to keep
	LogFileMaxBackups int `env:"LOG_FILE_MAX_BACKUPS" default:"5"`

	// LogFileMaxAgeDays is the number of days rotated log files are kept
	LogFileMaxAgeDays int `env:"LOG_FILE_MAX_AGE_DAYS" default:"28"`

	// LogFileCompress specifies whether rotated log files are gzipped
	LogFileCompress bool `env:"LOG_FILE_COMPRESS" default:"true"`

	// NATSClientPrefix is the prefix to use for the NATS client connection (prefix + hostname)
	NATSClientPrefix string `env:"NATS_CLIENT_PREFIX" default:"webcodec "`

	// NATSURL is the URL (with port) of the NATS server
	NATSURL string `env:"NATS_URL" default:"nats://localhost:4222"`

	// NATSOutgoingBufferSize is the size of the outgoing buffer for NATS connections
	NATSOutgoingBufferSize int `env:"NATS_OUTGOING_BUFFER_SIZE" default:"8388608"` // 8MB

	// NATSSubjectPrefix is the root of the transport and gateway subjects
	NATSSubjectPrefix string `env:"NATS_SUBJECT_PREFIX" default:"web"`

	// NATSWorldSubjectPrefix is the root of the subjects the world server listens on
	NATSWorldSubjectPrefix string `env:"NATS_WORLD_SUBJECT_PREFIX" default:"world"`

	// NATSPayloadEncoding is the encoding of routed packets on NATS (json|msgpack)
	NATSPayloadEncoding string `env:"NATS_PAYLOAD_ENCODING" default:"json"`

	// DBConnectionString is the MySQL DSN of the item database; empty disables it
	DBConnectionString string `env:"DB_CONNECTION_STRING" default:""`

	// DBQueryLogLevel is the level queries are logged at (debug|info)
	DBQueryLogLevel string `env:"DB_QUERY_LOG_LEVEL" default:"debug"`

	// CatalogFixtureFile is an optional TOML or YAML file of items loaded at startup
	CatalogFixtureFile string `env:"CATALOG_FIXTURE_FILE" default:""`

	// ItemMaxDepth is how deeply items may nest inside containers (at most 5)
	ItemMaxDepth int `env:"ITEM_MAX_DEPTH" default:"5"`

	// CodecOverridesFile is an optional TOML file listing codecs to disable
	CodecOverridesFile string `env:"CODEC_OVERRIDES_FILE" default:""`

	// MetricsEnabled specifies whether codec metrics are exported to stdout
	MetricsEnabled bool `env:"METRICS_ENABLED" default:"false"`

	// MetricsExportIntervalSeconds is the number of seconds between metric exports
	MetricsExportIntervalSeconds int `env:"METRICS_EXPORT_INTERVAL_SECONDS" default:"60"`

	// ShutdownTimeoutSeconds is the number of seconds to wait for graceful shutdown
	ShutdownTimeoutSeconds int `env:"SHUTDOWN_TIMEOUT_SECONDS" default:"15"`
}

func ParseConfigFromEnv() Config {
	return env.Must(ParseConfig())
}

// ParseConfig is ParseConfigFromEnv without the panic.
func ParseConfig() (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{
		DefaultValueTagName: "default",
	})
}
