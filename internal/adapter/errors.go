// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrSecurityViolation   = errors.New("security violation")
	ErrInternalServerError = errors.New("internal server error")
)
