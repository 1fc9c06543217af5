// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

var (
	ErrConfigNotFound      = errors.New("site configuration not found")
	ErrConfigAlreadyExists = errors.New("site configuration already exists for this hostname")
	ErrBackupNotFound      = errors.New("backup not found")

	ErrOpeningDatabase      = errors.New("error opening database")
	ErrBootstrappingSchema  = errors.New("error creating database schema")
	ErrExecutingQuery       = errors.New("error executing query")
	ErrBeginningTransaction = errors.New("error beginning transaction")
	ErrCommitingTransaction = errors.New("error commiting transaction")
	ErrScanningRow          = errors.New("error scanning row")
	ErrScanningRows         = errors.New("error scanning rows")
)
