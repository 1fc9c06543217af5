// SPDX-License-Identifier: Apache-2.0

package models

// Severity grades a SecurityWarning. Only SeverityError blocks an import;
// lower severities are advisory and are surfaced to the user unchanged.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// SecurityWarning is an advisory attached to a validation result.
// Warnings are returned alongside a successful validation, never thrown:
// a configuration that must be rejected produces an error instead.
type SecurityWarning struct {
	// Message is the human-readable advisory text.
	Message string `json:"message"`

	// Severity grades the advisory.
	Severity Severity `json:"severity"`
}

// ValidationResult is the outcome of validating a SiteConfig.
type ValidationResult struct {
	// SanitizedConfig is the config with whitespace trimmed, the hostname
	// lower-cased and empty optional strings dropped. Callers compare
	// SanitizedConfig.Hostname against their existing configuration set to
	// detect overwrites; this core never consults the persistent store.
	SanitizedConfig SiteConfig `json:"sanitized_config"`

	// Warnings holds non-blocking advisories collected during validation.
	Warnings []SecurityWarning `json:"warnings"`
}
