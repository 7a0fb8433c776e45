package http

import (
	"github.com/MKhiriev/go-life-vault/internal/config"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/service"
	"github.com/MKhiriev/go-life-vault/models"
)

type Handler struct {
	vault  service.VaultService
	tokens service.TokenService

	buildInfo models.AppBuildInfo
	cfg       config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		vault:     services.VaultService,
		tokens:    services.TokenService,
		buildInfo: buildInfo,
		cfg:       cfg,
		logger:    logger,
	}
}
