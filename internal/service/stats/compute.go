// Package stats produces the aggregate win/loss/pending report shown on
// reporting dashboards. Counts are exact: every stored case of every tier
// is scored through the verdict package, with no sampling or early exit.
package stats

import (
	"github.com/lawdesk/casetrack-backend/internal/domain"
	"github.com/lawdesk/casetrack-backend/internal/service/verdict"
)

// Compute tallies a case population into CaseStats. It is a pure function
// of its input: deterministic, no retained state, O(n) over the cases
// supplied. Callers bound the population size (snapshotting, caching,
// periodic recomputation); Compute itself never does.
func Compute(cases []domain.CaseRecord) domain.CaseStats {
	s := domain.CaseStats{
		TotalByTier:   make(map[domain.Tier]int, 3),
		PendingByTier: make(map[domain.Tier]int, 3),
	}
	for _, tier := range domain.Tiers() {
		s.TotalByTier[tier] = 0
		s.PendingByTier[tier] = 0
	}

	for _, rec := range cases {
		s.TotalByTier[rec.Tier]++

		// Case-status axis: procedural pendency, independent of outcome.
		if rec.Status.IsOpen() {
			s.PendingByTier[rec.Tier]++
		}

		switch verdict.Evaluate(rec) {
		case domain.OutcomeWin:
			s.Wins++
		case domain.OutcomeLoss:
			s.Losses++
		default:
			s.PendingOutcomes++
		}
	}

	return s
}
