package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultGRPCAddress    = "localhost:9090"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxUploadSize  = 10 << 20
	defaultTokenIssuer    = "sheetcharts"
	defaultTokenDuration  = 24 * time.Hour
	defaultUploadDir      = "uploads"
	defaultSweepInterval  = time.Hour
	defaultOrphanTTL      = 24 * time.Hour

	defaultAdapterAddress = "http://localhost:8080"
	defaultClientDSN      = "sheetcharts.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Storage: Storage{
			Files: Files{UploadDir: defaultUploadDir},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			GRPCAddress:    defaultGRPCAddress,
			RequestTimeout: defaultRequestTimeout,
			MaxUploadSize:  defaultMaxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			SweepInterval: defaultSweepInterval,
			OrphanTTL:     defaultOrphanTTL,
		},
	}
}
