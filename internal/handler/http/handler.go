package http

import (
	"time"

	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/service"
	"github.com/opsforge/secretsync/internal/store"
	"github.com/opsforge/secretsync/models"
)

type Handler struct {
	services    *service.Services
	statusStore store.SyncStatusStore

	deviceID      string
	webhookSecret string
	buildInfo     models.AppBuildInfo
	startedAt     time.Time

	logger *logger.Logger
}

func NewHandler(deviceID, webhookSecret string, buildInfo models.AppBuildInfo, services *service.Services, statusStore store.SyncStatusStore, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		statusStore:   statusStore,
		deviceID:      deviceID,
		webhookSecret: webhookSecret,
		buildInfo:     buildInfo,
		startedAt:     time.Now(),
		logger:        logger,
	}
}
