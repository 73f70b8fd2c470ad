package domain

// CaseStats is the aggregate win/loss/pending report across all tiers.
//
// PendingByTier counts the persisted CaseStatus axis ({PENDING, POSTPONED}),
// not derived outcomes. Wins+Losses+PendingOutcomes always equals the total
// case count across tiers.
type CaseStats struct {
	TotalByTier   map[Tier]int
	PendingByTier map[Tier]int

	Wins            int
	Losses          int
	PendingOutcomes int
}

// Total returns the case count across all tiers.
func (s CaseStats) Total() int {
	total := 0
	for _, n := range s.TotalByTier {
		total += n
	}
	return total
}
