package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the sheetcharts server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file that keeps the CLI session.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
}

// ClientOverrides carries values supplied on the CLI command line. Empty
// fields leave the merged configuration untouched.
type ClientOverrides struct {
	ConfigPath    string
	ServerAddress string
	DSN           string
}

// GetClientConfig builds and validates the CLI configuration from defaults,
// the environment, an optional JSON file and the command-line overrides.
func GetClientConfig(overrides ClientOverrides) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		with(&StructuredConfig{JSONFilePath: overrides.ConfigPath}).
		withJSON().
		with(&StructuredConfig{
			Adapter: Adapter{HTTPAddress: overrides.ServerAddress},
			Storage: Storage{DB: DB{DSN: overrides.DSN}},
		}).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	dsn := cfg.Storage.DB.DSN
	// the server DSN may leak in from a shared environment
	if dsn == "" || (overrides.DSN == "" && isPostgresDSN(dsn)) {
		dsn = defaultClientDSN
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
	}

	return clientCfg, clientCfg.validate()
}
