package service

import (
	"github.com/MKhiriev/sheetcharts/internal/adapter"
	"github.com/MKhiriev/sheetcharts/internal/chart"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/store"
)

type ClientServices struct {
	AuthService      ClientAuthService
	WorkspaceService ClientWorkspaceService
	PreviewService   ClientPreviewService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:      NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		WorkspaceService: NewClientWorkspaceService(serverAdapter, logger),
		PreviewService:   NewClientPreviewService(chart.NewRenderer(), logger),
	}
}
