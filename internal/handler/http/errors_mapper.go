// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/promptdock/promptdock/internal/codec"
	"github.com/promptdock/promptdock/internal/crypto"
	"github.com/promptdock/promptdock/internal/service"
	"github.com/promptdock/promptdock/internal/store"
)

var errorStatusMap = map[error]int{
	codec.ErrInvalidFormat:      http.StatusBadRequest,
	codec.ErrUnsupportedVersion: http.StatusBadRequest,
	codec.ErrChecksumMismatch:   http.StatusBadRequest,

	service.ErrValidationFailed:  http.StatusBadRequest,
	service.ErrSecurityViolation: http.StatusUnprocessableEntity,

	crypto.ErrEmptyPassword:        http.StatusBadRequest,
	crypto.ErrMalformedPayload:     http.StatusBadRequest,
	crypto.ErrAuthenticationFailed: http.StatusUnauthorized,

	store.ErrConfigNotFound:      http.StatusNotFound,
	store.ErrConfigAlreadyExists: http.StatusConflict,
	store.ErrBackupNotFound:      http.StatusNotFound,

	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
