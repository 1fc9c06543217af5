// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"regexp"

	"github.com/promptdock/promptdock/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldHostname targets the domain the configuration applies to.
	FieldHostname = "hostname"

	// FieldDisplayName targets the human-readable site label.
	FieldDisplayName = "display_name"

	// FieldPositioning targets the optional custom positioning block.
	FieldPositioning = "positioning"
)

// allowedPlacements is the exhaustive set of Placement values accepted by the
// validator. Any Placement not present in this slice is considered invalid.
var allowedPlacements = []models.Placement{
	models.PlacementBefore,
	models.PlacementAfter,
	models.PlacementInsideStart,
	models.PlacementInsideEnd,
}

// offsetLimit bounds positioning offsets. An offset past ±10000 px cannot be
// a real screen position and is treated as malformed input.
const offsetLimit = 10000

// maxZIndex is the highest z-index browsers honour (signed 32-bit max).
const maxZIndex = 2147483647

// hostnamePattern accepts registrable domains: lower-case labels of letters,
// digits and inner hyphens, at least two labels. The config is sanitized
// (trimmed, lower-cased) before this pattern is applied.
var hostnamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)

// SiteConfigValidator implements the Validator interface for site
// configurations. It checks structure only: selector safety is the
// SelectorValidator's job and is composed at the service layer, so a caller
// can always tell a shape problem from a security rejection.
type SiteConfigValidator struct {
}

// NewSiteConfigValidator constructs a new SiteConfigValidator
// and returns it as the Validator interface.
func NewSiteConfigValidator() Validator {
	return &SiteConfigValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both
// value and pointer forms of models.SiteConfig are accepted.
//
// Returns ErrUnsupportedType if obj is not a site configuration. Optional
// fields restrict validation to the named subset; when omitted, all fields
// are validated.
func (v *SiteConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SiteConfig:
		return v.validateSiteConfig(ctx, value, fields...)
	case *models.SiteConfig:
		return v.validateSiteConfig(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// isValidPlacement reports whether p is one of the recognized Placement
// values defined in allowedPlacements.
func isValidPlacement(p models.Placement) bool {
	for _, allowed := range allowedPlacements {
		if p == allowed {
			return true
		}
	}
	return false
}

// validateSiteConfig validates a single SiteConfig model.
//
// Default validated fields (when none specified):
// Hostname, DisplayName, Positioning.
//
// Returns the first encountered validation error or nil.
func (v *SiteConfigValidator) validateSiteConfig(_ context.Context, cfg models.SiteConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHostname, FieldDisplayName, FieldPositioning}
	}

	for _, f := range fields {
		switch f {
		case FieldHostname:
			if cfg.Hostname == "" {
				return ErrEmptyHostname
			}
			if !hostnamePattern.MatchString(cfg.Hostname) {
				return ErrInvalidHostname
			}
		case FieldDisplayName:
			if cfg.DisplayName == "" {
				return ErrEmptyDisplayName
			}
		case FieldPositioning:
			if cfg.Positioning == nil {
				continue
			}
			if err := v.validatePositioning(*cfg.Positioning); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePositioning validates the optional custom positioning block.
// A present block must be complete: mode, selector, placement and bounded
// numeric fields are all required.
func (v *SiteConfigValidator) validatePositioning(p models.Positioning) error {
	if p.Mode != models.PositioningModeCustom {
		return ErrInvalidMode
	}
	if p.Selector == "" {
		return ErrEmptySelector
	}
	if !isValidPlacement(p.Placement) {
		return ErrInvalidPlacement
	}
	if p.Offset.X < -offsetLimit || p.Offset.X > offsetLimit ||
		p.Offset.Y < -offsetLimit || p.Offset.Y > offsetLimit {
		return ErrOffsetOutOfRange
	}
	if p.ZIndex < 0 || p.ZIndex > maxZIndex {
		return ErrInvalidZIndex
	}
	return nil
}
