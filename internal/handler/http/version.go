// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/promptdock/promptdock/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"version": h.buildInfo.BuildVersion(),
		"date":    h.buildInfo.BuildDate(),
		"commit":  h.buildInfo.BuildCommit(),
	}, http.StatusOK)
}
