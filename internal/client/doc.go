// SPDX-License-Identifier: Apache-2.0

// Package client implements the one-shot CLI client runtime.
//
// It wires the server adapter and the system clipboard into command handlers
// for exporting, previewing, importing, and backing up site configurations.
package client
