// =============================================================================
// matic_sku Converter - Row Validation
// =============================================================================
//
// This module decides whether a source line can become a matic_sku row.
// A rejected line is not an error: it is skipped, counted under its reason,
// and processing continues.
//
// SKIP RULES (checked in order):
//   1. too_few_fields  - the line has fewer than types.MinFields fields
//   2. missing_codigo  - codigo_produto is empty after trimming whitespace
//
// =============================================================================

package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ginjaninja78/maticsku/internal/types"
)

// =============================================================================
// SKIP REASONS
// =============================================================================

// SkipReason identifies why a line produced no output row.
type SkipReason string

const (
	// Accept means the line is valid.
	Accept SkipReason = ""

	// TooFewFields marks a line with fewer than types.MinFields fields.
	TooFewFields SkipReason = "too_few_fields"

	// MissingCodigo marks a line whose codigo_produto is blank.
	MissingCodigo SkipReason = "missing_codigo"
)

// CheckFields applies the structural rule to a split line.
func CheckFields(fields []string) SkipReason {
	if len(fields) < types.MinFields {
		return TooFewFields
	}
	return Accept
}

// CheckCodigo applies the required-key rule. codigo_produto is only
// whitespace-trimmed; "0" and "#N/A" are valid codes here.
func CheckCodigo(codigo string) SkipReason {
	if strings.TrimSpace(codigo) == "" {
		return MissingCodigo
	}
	return Accept
}

// =============================================================================
// SKIP TALLY
// =============================================================================

// Tally counts skipped lines per reason.
type Tally map[SkipReason]int

// Add records one skipped line.
func (t Tally) Add(reason SkipReason) {
	if reason == Accept {
		return
	}
	t[reason]++
}

// Total returns the number of skipped lines across all reasons.
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// String formats the tally as "reason=count" pairs in a stable order.
func (t Tally) String() string {
	if len(t) == 0 {
		return "none"
	}

	reasons := make([]string, 0, len(t))
	for reason := range t {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)

	parts := make([]string, len(reasons))
	for i, reason := range reasons {
		parts[i] = fmt.Sprintf("%s=%d", reason, t[SkipReason(reason)])
	}
	return strings.Join(parts, " ")
}
