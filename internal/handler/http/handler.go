package http

import (
	"time"

	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/service"
)

// defaultMaxUploadSize applies when the configuration leaves the limit unset.
const defaultMaxUploadSize int64 = 10 << 20

type Handler struct {
	services *service.Services

	maxUploadSize  int64
	requestTimeout time.Duration
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadSize:  maxUploadSize,
		requestTimeout: cfg.RequestTimeout,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}
