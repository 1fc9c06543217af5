// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/promptdock/promptdock/internal/logger"
	"github.com/promptdock/promptdock/internal/service"
	"github.com/promptdock/promptdock/internal/store"
	"github.com/promptdock/promptdock/models"
)

type Handler struct {
	services *service.Services
	store    store.ConfigStore

	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, store store.ConfigStore, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		store:     store,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
