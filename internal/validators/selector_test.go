// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdock/promptdock/models"
)

func TestSelectorValidator_AcceptsOrdinarySelectors(t *testing.T) {
	v := NewSelectorValidator(DefaultSelectorPolicy())

	for _, sel := range []string{
		"#prompt-input",
		"textarea.chat-input",
		"main div.editor > form textarea",
		"div[role=main] .composer",
		"form textarea:first-child",
	} {
		res := v.Inspect(sel)
		assert.NotEqual(t, VerdictRejected, res.Verdict, "selector %q should be accepted: %s", sel, res.Message)
	}
}

func TestSelectorValidator_RejectsEmpty(t *testing.T) {
	v := NewSelectorValidator(DefaultSelectorPolicy())

	for _, sel := range []string{"", "   ", "\t"} {
		res := v.Inspect(sel)
		require.True(t, res.Rejected())
		assert.Equal(t, RuleEmpty, res.RuleID)
	}
}

func TestSelectorValidator_RejectsOverlongSelector(t *testing.T) {
	v := NewSelectorValidator(DefaultSelectorPolicy())

	res := v.Inspect("#" + strings.Repeat("a", 501))
	require.True(t, res.Rejected())
	assert.Equal(t, RuleLength, res.RuleID)
	assert.Contains(t, res.Message, "500")
}

func TestSelectorValidator_RejectsInjectionPatterns(t *testing.T) {
	v := NewSelectorValidator(DefaultSelectorPolicy())

	cases := []string{
		"<script>alert(1)</script>",
		"div.SCRIPT-holder",
		"iframe.embed",
		"a[href^='javascript:']",
		"a[href^='data:text/html']",
		"a[href^='VBScript:msgbox']",
		"object#plugin",
		"embed[src]",
	}

	for _, sel := range cases {
		res := v.Inspect(sel)
		require.True(t, res.Rejected(), "selector %q should be rejected", sel)
		assert.Equal(t, RulePattern, res.RuleID, "selector %q", sel)
		assert.Contains(t, res.Message, "disallowed pattern")
	}
}

func TestSelectorValidator_RejectsCombinatorFlood(t *testing.T) {
	v := NewSelectorValidator(DefaultSelectorPolicy())

	cases := []struct {
		name     string
		selector string
		fragment string
	}{
		// 12 parts joined by 11 spaces: over the descendant limit of 10.
		{"descendant", strings.TrimSpace(strings.Repeat("div ", 12)), "descendant"},
		{"child", "a" + strings.Repeat(">b", 6), "child"},
		{"adjacent", "a" + strings.Repeat("+b", 4), "adjacent"},
		{"sibling", "a" + strings.Repeat("~b", 4), "general sibling"},
		{"attribute", "a" + strings.Repeat("[x]", 6), "attribute"},
		{"pseudo", "a" + strings.Repeat(":first-child", 6), "pseudo"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := v.Inspect(tc.selector)
			require.True(t, res.Rejected(), "selector %q should be rejected", tc.selector)
			assert.Equal(t, RuleCombinators, res.RuleID)
			// Each violated limit names its own combinator.
			assert.Contains(t, res.Message, tc.fragment)
			assert.Contains(t, res.Message, "limit")
		})
	}
}

func TestSelectorValidator_RejectsBrokenGrammar(t *testing.T) {
	v := NewSelectorValidator(DefaultSelectorPolicy())

	res := v.Inspect("*[*=*]")
	require.True(t, res.Rejected())
	assert.Equal(t, RuleGrammar, res.RuleID)
	// The grammar rejection is distinct from pattern-based ones.
	assert.NotContains(t, res.Message, "disallowed pattern")

	res = v.Inspect("div..broken")
	require.True(t, res.Rejected())
	assert.Equal(t, RuleGrammar, res.RuleID)
}

func TestSelectorValidator_NearLimitWarnings(t *testing.T) {
	v := NewSelectorValidator(DefaultSelectorPolicy())

	// 9 descendant combinators: within the limit of 10, above the 0.8
	// advisory threshold.
	sel := strings.TrimSpace(strings.Repeat("div ", 10))
	res := v.Inspect(sel)

	require.False(t, res.Rejected(), "borderline selector must stay accepted: %s", res.Message)
	require.Equal(t, VerdictWarnings, res.Verdict)
	require.NotEmpty(t, res.Warnings)
	assert.Equal(t, models.SeverityWarning, res.Warnings[0].Severity)
}

func TestSelectorValidator_WarningsNeverEscalate(t *testing.T) {
	v := NewSelectorValidator(DefaultSelectorPolicy())

	// Borderline on the pseudo limit (5 of 5 colons) with extra descendant
	// depth on top: still accepted, advisories only.
	sel := strings.TrimSpace(strings.Repeat("p:first-child ", 5)) + " q q q"
	res := v.Inspect(sel)

	require.False(t, res.Rejected(), "multi-borderline selector must stay accepted: %s", res.Message)
}

func TestSelectorValidator_WarnRatioDisabled(t *testing.T) {
	policy := DefaultSelectorPolicy()
	policy.WarnRatio = 0
	v := NewSelectorValidator(policy)

	sel := strings.TrimSpace(strings.Repeat("div ", 10))
	res := v.Inspect(sel)

	assert.Equal(t, VerdictOK, res.Verdict)
	assert.Empty(t, res.Warnings)
}

func TestSelectorValidator_PatternBeatsGrammar(t *testing.T) {
	v := NewSelectorValidator(DefaultSelectorPolicy())

	// Unparsable and pattern-carrying: the ordered table reports the
	// pattern rule, which runs first.
	res := v.Inspect("<script>")
	require.True(t, res.Rejected())
	assert.Equal(t, RulePattern, res.RuleID)
}
