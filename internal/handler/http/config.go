// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/promptdock/promptdock/internal/app"
	"github.com/promptdock/promptdock/internal/logger"
	"github.com/promptdock/promptdock/internal/store"
	"github.com/promptdock/promptdock/internal/utils"
	"github.com/promptdock/promptdock/models"
)

func (h *Handler) encodeConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.encodeConfig").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.ConfigCodes.ValidateConfig(ctx, req.Config)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encodeConfig").Msg("configuration rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	code, err := h.services.ConfigCodes.EncodeConfig(ctx, result.SanitizedConfig)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encodeConfig").Msg("error encoding configuration")
		http.Error(w, app.MsgEncodingFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CodeResponse{Code: code, Warnings: result.Warnings}, http.StatusOK)
}

func (h *Handler) decodeConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.decodeConfig").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	cfg, err := h.services.ConfigCodes.DecodeConfig(ctx, req.Code)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decodeConfig").Msg("error decoding configuration code")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result, err := h.services.ConfigCodes.ValidateConfig(ctx, cfg)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decodeConfig").Msg("decoded configuration rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ConfigResponse{Config: result.SanitizedConfig, Warnings: result.Warnings}, http.StatusOK)
}

func (h *Handler) validateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.validateConfig").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.ConfigCodes.ValidateConfig(ctx, req.Config)
	if err != nil {
		log.Err(err).Str("func", "*Handler.validateConfig").Msg("configuration rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ConfigResponse{Config: result.SanitizedConfig, Warnings: result.Warnings}, http.StatusOK)
}

func (h *Handler) importConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.importConfig").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	cfg, err := h.services.ConfigCodes.DecodeConfig(ctx, req.Code)
	if err != nil {
		log.Err(err).Str("func", "*Handler.importConfig").Msg("error decoding configuration code")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result, err := h.services.ConfigCodes.ValidateConfig(ctx, cfg)
	if err != nil {
		log.Err(err).Str("func", "*Handler.importConfig").Msg("imported configuration rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	replaced, err := h.store.SaveConfig(ctx, result.SanitizedConfig, req.Overwrite)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConfigAlreadyExists):
			log.Err(err).Str("func", "*Handler.importConfig").Msg("configuration already exists")
			http.Error(w, app.MsgConfigAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Str("func", "*Handler.importConfig").Msg("error saving configuration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("hostname", result.SanitizedConfig.Hostname).Bool("replaced", replaced).Msg("configuration imported")

	utils.WriteJSON(w, models.ImportResponse{
		Config:   result.SanitizedConfig,
		Warnings: result.Warnings,
		Replaced: replaced,
	}, http.StatusCreated)
}

func (h *Handler) listConfigs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	configs, err := h.store.ListConfigs(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listConfigs").Msg("error listing configurations")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if configs == nil {
		configs = []models.SiteConfig{}
	}
	utils.WriteJSON(w, configs, http.StatusOK)
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	hostname := chi.URLParam(r, "hostname")

	cfg, err := h.store.GetConfig(r.Context(), hostname)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getConfig").Str("hostname", hostname).Msg("error fetching configuration")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ConfigResponse{Config: cfg}, http.StatusOK)
}

func (h *Handler) deleteConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	hostname := chi.URLParam(r, "hostname")

	if err := h.store.DeleteConfig(r.Context(), hostname); err != nil {
		if errors.Is(err, store.ErrConfigNotFound) {
			log.Err(err).Str("func", "*Handler.deleteConfig").Str("hostname", hostname).Msg("configuration not found")
			http.Error(w, app.MsgConfigNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.deleteConfig").Str("hostname", hostname).Msg("error deleting configuration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
