// SPDX-License-Identifier: Apache-2.0

// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the loopback API server lifecycle, including
// startup, signal handling, and graceful shutdown.
package server
