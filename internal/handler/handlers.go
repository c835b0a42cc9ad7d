package handler

import (
	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/handler/grpc"
	"github.com/MKhiriev/sheetcharts/internal/handler/http"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/service"
)

// Handlers bundles the transport handlers enabled by the server config.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
		logger.Info().Str("address", cfg.HTTPAddress).Msg("REST handlers created")
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
		logger.Info().Str("address", cfg.GRPCAddress).Msg("gRPC health handler created")
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
