// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"

	"github.com/promptdock/promptdock/models"
)

// Rule identifiers, in evaluation order. Every rejection names the rule that
// produced it, so the rule set stays auditable from the outside.
const (
	RuleEmpty       = "empty"
	RuleLength      = "length"
	RulePattern     = "pattern"
	RuleCombinators = "combinators"
	RuleGrammar     = "grammar"
)

// Verdict is the outcome of inspecting one selector.
type Verdict int

const (
	// VerdictOK accepts the selector with no reservations.
	VerdictOK Verdict = iota

	// VerdictWarnings accepts the selector but carries advisories for
	// nearly-exceeded complexity limits.
	VerdictWarnings

	// VerdictRejected refuses the selector. RuleID and Message identify why.
	VerdictRejected
)

// SelectorResult is the structured outcome of one inspection.
type SelectorResult struct {
	Verdict Verdict

	// RuleID names the rule that rejected the selector. Empty unless
	// Verdict is VerdictRejected.
	RuleID string

	// Message is the human-readable rejection reason. Empty unless
	// Verdict is VerdictRejected.
	Message string

	// Warnings holds near-limit advisories. Never blocking.
	Warnings []models.SecurityWarning
}

// Rejected reports whether the selector was refused.
func (r SelectorResult) Rejected() bool {
	return r.Verdict == VerdictRejected
}

// Grammar rejection messages. The three cases are distinct so callers can
// tell a typo-shaped failure from a structurally impossible selector without
// parsing the text.
const (
	MsgSelectorSyntax  = "selector has a syntax error"
	MsgSelectorInvalid = "selector is not a valid CSS selector"
	MsgSelectorFailed  = "selector could not be parsed"
)

// forbiddenPatterns are substrings associated with script and markup
// injection vectors. Matching is case-insensitive over the whole selector:
// a selector has no legitimate reason to mention any of these.
var forbiddenPatterns = []string{
	"script",
	"iframe",
	"object",
	"embed",
	"javascript:",
	"data:",
	"vbscript:",
}

// SelectorPolicy holds the complexity limits of the selector rule table and
// the advisory threshold. The limits are hard contract values; WarnRatio is
// deployment policy. Warnings never escalate to rejections on their own —
// even a selector borderline on several limits at once stays accepted. A
// deployment that wants stricter behaviour lowers the limits instead.
type SelectorPolicy struct {
	// MaxLength is the selector length cap in characters.
	MaxLength int

	// Per-combinator caps. Each exceeded cap produces its own rejection
	// message naming the combinator and the limit.
	MaxDescendant int // whitespace (descendant combinator)
	MaxChild      int // '>'
	MaxAdjacent   int // '+'
	MaxSibling    int // '~'
	MaxAttribute  int // '['
	MaxPseudo     int // ':'

	// WarnRatio is the fraction of a limit at which an advisory warning is
	// attached (0 disables advisories). With the default 0.8, a selector
	// with 9 of 10 allowed descendant combinators is accepted with a
	// warning.
	WarnRatio float64
}

// DefaultSelectorPolicy returns the documented production limits.
func DefaultSelectorPolicy() SelectorPolicy {
	return SelectorPolicy{
		MaxLength:     500,
		MaxDescendant: 10,
		MaxChild:      5,
		MaxAdjacent:   3,
		MaxSibling:    3,
		MaxAttribute:  5,
		MaxPseudo:     5,
		WarnRatio:     0.8,
	}
}

// SelectorValidator inspects CSS selector strings from untrusted
// configuration codes. It is pure: no shared state, safe for concurrent use.
type SelectorValidator struct {
	policy SelectorPolicy
	rules  []selectorRule
}

// selectorRule is one named entry of the ordered rule table.
type selectorRule struct {
	id    string
	check func(selector string) (violation string, warnings []models.SecurityWarning)
}

// NewSelectorValidator constructs a validator with the given policy.
// Zero limits are replaced with the defaults.
func NewSelectorValidator(policy SelectorPolicy) *SelectorValidator {
	def := DefaultSelectorPolicy()
	if policy.MaxLength == 0 {
		policy.MaxLength = def.MaxLength
	}
	if policy.MaxDescendant == 0 {
		policy.MaxDescendant = def.MaxDescendant
	}
	if policy.MaxChild == 0 {
		policy.MaxChild = def.MaxChild
	}
	if policy.MaxAdjacent == 0 {
		policy.MaxAdjacent = def.MaxAdjacent
	}
	if policy.MaxSibling == 0 {
		policy.MaxSibling = def.MaxSibling
	}
	if policy.MaxAttribute == 0 {
		policy.MaxAttribute = def.MaxAttribute
	}
	if policy.MaxPseudo == 0 {
		policy.MaxPseudo = def.MaxPseudo
	}

	v := &SelectorValidator{policy: policy}
	v.rules = []selectorRule{
		{RuleEmpty, v.checkEmpty},
		{RuleLength, v.checkLength},
		{RulePattern, v.checkPatterns},
		{RuleCombinators, v.checkCombinators},
		{RuleGrammar, v.checkGrammar},
	}
	return v
}

// Inspect runs the ordered rule table over selector and returns the first
// rejection, or an acceptance carrying any near-limit advisories.
func (v *SelectorValidator) Inspect(selector string) SelectorResult {
	var warnings []models.SecurityWarning

	for _, rule := range v.rules {
		violation, ruleWarnings := rule.check(selector)
		if violation != "" {
			return SelectorResult{
				Verdict: VerdictRejected,
				RuleID:  rule.id,
				Message: violation,
			}
		}
		warnings = append(warnings, ruleWarnings...)
	}

	if len(warnings) > 0 {
		return SelectorResult{Verdict: VerdictWarnings, Warnings: warnings}
	}
	return SelectorResult{Verdict: VerdictOK}
}

func (v *SelectorValidator) checkEmpty(selector string) (string, []models.SecurityWarning) {
	if strings.TrimSpace(selector) == "" {
		return "selector must not be empty", nil
	}
	return "", nil
}

func (v *SelectorValidator) checkLength(selector string) (string, []models.SecurityWarning) {
	if len(selector) > v.policy.MaxLength {
		return fmt.Sprintf("selector is too long: %d characters (limit %d)", len(selector), v.policy.MaxLength), nil
	}

	var warnings []models.SecurityWarning
	if v.nearLimit(len(selector), v.policy.MaxLength) {
		warnings = append(warnings, models.SecurityWarning{
			Message:  fmt.Sprintf("selector length %d approaches the limit of %d", len(selector), v.policy.MaxLength),
			Severity: models.SeverityWarning,
		})
	}
	return "", warnings
}

func (v *SelectorValidator) checkPatterns(selector string) (string, []models.SecurityWarning) {
	lowered := strings.ToLower(selector)
	for _, pattern := range forbiddenPatterns {
		if strings.Contains(lowered, pattern) {
			return fmt.Sprintf("selector contains a disallowed pattern: %q", pattern), nil
		}
	}
	return "", nil
}

func (v *SelectorValidator) checkCombinators(selector string) (string, []models.SecurityWarning) {
	counts := []struct {
		name  string
		count int
		limit int
	}{
		{"descendant combinators (whitespace)", countWhitespace(selector), v.policy.MaxDescendant},
		{"child combinators '>'", strings.Count(selector, ">"), v.policy.MaxChild},
		{"adjacent sibling combinators '+'", strings.Count(selector, "+"), v.policy.MaxAdjacent},
		{"general sibling combinators '~'", strings.Count(selector, "~"), v.policy.MaxSibling},
		{"attribute selectors '['", strings.Count(selector, "["), v.policy.MaxAttribute},
		{"pseudo selectors ':'", strings.Count(selector, ":"), v.policy.MaxPseudo},
	}

	var warnings []models.SecurityWarning
	for _, c := range counts {
		if c.count > c.limit {
			return fmt.Sprintf("selector has too many %s: %d (limit %d)", c.name, c.count, c.limit), nil
		}
		if c.count > 0 && v.nearLimit(c.count, c.limit) {
			warnings = append(warnings, models.SecurityWarning{
				Message:  fmt.Sprintf("selector uses %d of %d allowed %s", c.count, c.limit, c.name),
				Severity: models.SeverityWarning,
			})
		}
	}
	return "", warnings
}

// checkGrammar parses the selector with the cascadia CSS selector grammar.
// Low-level parse failures are translated into one of three fixed messages;
// the raw parser text stays inside this package.
func (v *SelectorValidator) checkGrammar(selector string) (string, []models.SecurityWarning) {
	_, err := cascadia.ParseGroup(selector)
	if err == nil {
		return "", nil
	}

	text := err.Error()
	switch {
	case strings.Contains(text, "expected") || strings.Contains(text, "unexpected") || strings.Contains(text, "EOF"):
		return MsgSelectorSyntax, nil
	case strings.Contains(text, "invalid") || strings.Contains(text, "unsupported") || strings.Contains(text, "unknown"):
		return MsgSelectorInvalid, nil
	default:
		return MsgSelectorFailed, nil
	}
}

// nearLimit reports whether count is inside the advisory band [ratio*limit,
// limit]. Counts over the limit are rejections, handled by the caller.
func (v *SelectorValidator) nearLimit(count, limit int) bool {
	if v.policy.WarnRatio <= 0 {
		return false
	}
	return float64(count) >= v.policy.WarnRatio*float64(limit)
}

// countWhitespace counts individual whitespace characters. Runs are not
// collapsed: "a  b" counts as two toward the descendant limit.
func countWhitespace(selector string) int {
	n := 0
	for _, r := range selector {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			n++
		}
	}
	return n
}
