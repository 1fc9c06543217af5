// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// promptdock server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded as
	// JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgConfigNotFound is returned when no persisted configuration exists
	// for the requested hostname.
	MsgConfigNotFound = "configuration not found"

	// MsgConfigAlreadyExists is returned when an import without the
	// overwrite flag targets a hostname that already has a configuration.
	MsgConfigAlreadyExists = "configuration for this hostname already exists"

	// MsgEncodingFailed is returned when a validated configuration cannot be
	// serialized into a configuration code.
	MsgEncodingFailed = "error encoding configuration"
)
