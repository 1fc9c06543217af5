// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/promptdock/promptdock/internal/app"
	"github.com/promptdock/promptdock/internal/logger"
	"github.com/promptdock/promptdock/internal/utils"
	"github.com/promptdock/promptdock/models"
)

func (h *Handler) encryptBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.BackupEncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.encryptBackup").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	payload, err := h.services.Backups.ExportBackup(ctx, req.Plaintext, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encryptBackup").Msg("error encrypting backup")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if req.Label != "" {
		id, err := h.store.SaveBackup(ctx, payload, req.Label)
		if err != nil {
			log.Err(err).Str("func", "*Handler.encryptBackup").Msg("error storing backup record")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		log.Debug().Str("backup_id", id).Str("label", req.Label).Msg("backup record stored")
	}

	utils.WriteJSON(w, payload, http.StatusOK)
}

func (h *Handler) decryptBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.BackupDecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.decryptBackup").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	plaintext, err := h.services.Backups.RestoreBackup(ctx, req.Payload, req.Password)
	if err != nil {
		// deliberately terse: decryption failures must not leak which part of
		// the payload was wrong
		log.Err(err).Str("func", "*Handler.decryptBackup").Msg("error decrypting backup")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.BackupDecryptResponse{Plaintext: plaintext}, http.StatusOK)
}

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	backups, err := h.store.ListBackups(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBackups").Msg("error listing backups")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if backups == nil {
		backups = []models.BackupRecord{}
	}
	utils.WriteJSON(w, backups, http.StatusOK)
}
