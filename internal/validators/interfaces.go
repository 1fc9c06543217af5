// SPDX-License-Identifier: Apache-2.0

// Package validators provides adversarial-input validation for the trust
// boundary: the selector safety rule table that decides whether a CSS
// selector from an untrusted configuration code may ever reach the DOM, and
// the structural validator for site configurations.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures,
//     with optional field-level scoping.
//   - SelectorValidator: an explicit ordered list of named rules. Each rule
//     returns a structured (rule id, verdict, message) result, keeping the
//     rule set auditable and independently testable; adding a rule is an
//     additive change.
//
// Decoded configurations are later compiled into DOM injection rules that run
// with elevated permission on arbitrary websites, so a hole here is a
// security bug, not a shape bug.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
