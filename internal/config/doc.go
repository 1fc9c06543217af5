// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//
// The main entry point is [GetStructuredConfig]. Cryptographic work factors
// and the selector advisory threshold live here as ordinary configuration
// values: there is deliberately no module-level crypto state anywhere in the
// application, so tests run with reduced work factors by passing a different
// config, not by mutating globals.
package config
