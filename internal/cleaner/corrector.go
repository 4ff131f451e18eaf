// =============================================================================
// Library Inventory Cleaner - Value Corrector
// =============================================================================
//
// Exact-match value substitutions for known data-entry errors. The standard
// run carries a single rule: publication year 2109 -> 2019, a digit
// transposition present in the source system. Corrections are literal
// substitutions, not range clamps, and are idempotent: once a value has been
// replaced there is nothing left for the rule to match.
//
// The legacy cleaning job applied its substitution to every column. Rules
// here are scoped to a column by default, so a price or identifier that
// happens to contain the same literal is left alone; a rule with an empty
// column reproduces the legacy dataset-wide behavior when byte-for-byte
// compatibility with old outputs is required.
//
// =============================================================================

package cleaner

import (
	"github.com/ginjaninja78/library-inventory-cleaner/internal/config"
	"github.com/ginjaninja78/library-inventory-cleaner/internal/dataset"
)

// ValueCorrector applies a fixed list of substitution rules to a dataset.
type ValueCorrector struct {
	rules []config.Correction
}

// NewValueCorrector creates a corrector with the given rules. Rules are
// applied in order.
func NewValueCorrector(rules []config.Correction) *ValueCorrector {
	return &ValueCorrector{
		rules: append([]config.Correction(nil), rules...),
	}
}

// Apply runs every rule against the dataset and returns the total number of
// cells replaced.
func (c *ValueCorrector) Apply(ds *dataset.Dataset) int {
	replaced := 0
	for _, rule := range c.rules {
		replaced += ds.ReplaceValue(rule.Column, rule.Old, rule.New)
	}
	return replaced
}
