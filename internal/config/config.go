// Package config defines process configuration and its layered loading.
package config

// Config contains process configuration for the import and stats
// commands.
type Config struct {
	// Driver selects the storage backend: "sqlite" or "postgres".
	Driver string `koanf:"driver"`

	// DSN is the backend connection string, e.g. "pitch.db" or a
	// postgres URL.
	DSN string `koanf:"dsn"`

	// ChunkSize bounds how many pitch rows one transaction carries.
	ChunkSize int `koanf:"chunk_size"`

	// MetricsGateway is the Prometheus Pushgateway base URL; empty
	// disables metrics.
	MetricsGateway string `koanf:"metrics_gateway"`

	// MetricsJob is the Pushgateway job name.
	MetricsJob string `koanf:"metrics_job"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		Driver:     "sqlite",
		DSN:        "pitchstats.db",
		ChunkSize:  500,
		MetricsJob: "pitchstats",
	}
}
