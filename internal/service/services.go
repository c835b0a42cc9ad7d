package service

import (
	"github.com/MKhiriev/sheetcharts/internal/chart"
	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
)

type Services struct {
	AuthService     AuthService
	UploadService   UploadService
	HistoryService  HistoryService
	AnalysisService AnalysisService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, NewGoogleVerifier(cfg.App.GoogleClientID), cfg.App, logger),
		UploadService:   NewUploadService(storages.FileStorage, storages.HistoryRepository, utils.NewUUIDGenerator(), logger),
		HistoryService:  NewHistoryService(storages.HistoryRepository, storages.FileStorage, logger),
		AnalysisService: NewAnalysisService(storages.AnalysisRepository, storages.HistoryRepository, storages.FileStorage, chart.NewRenderer(), logger),
		AppInfoService:  appInfo,
		HealthService:   NewHealthService(storages.HealthChecker),
	}, nil
}
