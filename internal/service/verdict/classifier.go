// Package verdict is the single canonical home of judgment classification,
// initiating-party resolution, and win/loss/pending outcome evaluation.
// Everything here is a pure, total function over caller-supplied data:
// no I/O, no state, safe to call concurrently.
package verdict

import (
	"strings"

	"github.com/lawdesk/casetrack-backend/internal/domain"
)

// Classify maps a free-text judgment field to its canonical category for
// the given tier.
//
// Text is normalized (trim, case-fold, whitespace-collapse) and then
// matched by substring containment against the tier's marker families in
// fixed priority order; the first family that matches wins. Nil, empty,
// and unrecognized text all classify as Pending. Classify never fails:
// judgment text is operator-entered and must not block reporting.
func Classify(text *string, tier domain.Tier) domain.JudgmentCategory {
	if text == nil {
		return domain.JudgmentPending
	}

	normalized := domain.NormalizeText(*text)
	if normalized == "" {
		return domain.JudgmentPending
	}

	families := primaryFamilies
	if tier.IsAppellate() {
		families = appellateFamilies
	}

	for _, family := range families {
		if containsAny(normalized, family.markers) {
			return family.category
		}
	}
	return domain.JudgmentPending
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
