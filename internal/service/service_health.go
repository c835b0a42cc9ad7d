package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sheetcharts/internal/store"
)

type healthService struct {
	checker store.HealthChecker
}

func NewHealthService(checker store.HealthChecker) HealthService {
	return &healthService{checker: checker}
}

func (h *healthService) Check(ctx context.Context) error {
	if err := h.checker.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}
