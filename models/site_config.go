// SPDX-License-Identifier: Apache-2.0

package models

// Placement defines where an injected control is attached relative to the
// anchor element matched by a positioning selector.
type Placement string

// Recognized placement values. Any other value is rejected by validation.
const (
	PlacementBefore      Placement = "before"
	PlacementAfter       Placement = "after"
	PlacementInsideStart Placement = "inside-start"
	PlacementInsideEnd   Placement = "inside-end"
)

// Offset is a pixel offset applied after placement.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ElementFingerprint is a structural description of the DOM element that was
// originally picked for a custom position. It is a fallback only: if the CSS
// selector later stops matching uniquely, the extension uses the fingerprint
// to re-locate the element. The fingerprint itself never drives injection.
type ElementFingerprint struct {
	// TagName is the lower-cased element tag (e.g. "textarea").
	TagName string `json:"tag_name"`

	// ID is the element id attribute at pick time, if any.
	ID string `json:"id,omitempty"`

	// Classes holds the element's class list at pick time.
	Classes []string `json:"classes,omitempty"`

	// Attributes holds a small set of stable attributes (name, role,
	// placeholder and similar) captured at pick time.
	Attributes map[string]string `json:"attributes,omitempty"`

	// TextPrefix is the first characters of the element's text content,
	// used as a weak disambiguator between structurally identical nodes.
	TextPrefix string `json:"text_prefix,omitempty"`
}

// Positioning describes a custom anchor point for the injected control on a
// site. Mode is always "custom" in the current format; the field exists so
// future modes can be added without changing the wire shape.
type Positioning struct {
	// Mode is the positioning strategy. Only "custom" is defined.
	Mode string `json:"mode"`

	// Selector is the CSS selector locating the anchor element.
	// It must pass the selector safety validator before the configuration
	// is treated as sanitized.
	Selector string `json:"selector"`

	// Placement defines where the control attaches relative to the anchor.
	Placement Placement `json:"placement"`

	// Offset is the pixel offset applied after placement.
	Offset Offset `json:"offset"`

	// ZIndex is the stacking order of the injected control.
	ZIndex int `json:"z_index"`

	// Description is an optional human note about the picked position.
	Description string `json:"description,omitempty"`

	// Fingerprint optionally describes the originally picked element.
	Fingerprint *ElementFingerprint `json:"fingerprint,omitempty"`
}

// PositioningModeCustom is the only positioning mode defined by the current
// configuration code version.
const PositioningModeCustom = "custom"

// SiteConfig is a custom site integration shared between installations via
// configuration codes. It is constructed by the extension UI (manual entry or
// element picker) or produced by decoding a code, and is only persisted after
// validation and explicit user confirmation.
type SiteConfig struct {
	// Hostname is the domain the configuration applies to.
	// Stored lower-cased after sanitization.
	Hostname string `json:"hostname"`

	// DisplayName is the human-readable label shown in the site list.
	DisplayName string `json:"display_name"`

	// Positioning optionally overrides the default control placement.
	// When present, Positioning.Selector must be sanitized before use.
	Positioning *Positioning `json:"positioning,omitempty"`
}
