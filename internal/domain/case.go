package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaseRecord is a read-only view of one litigation case file as stored by
// the persistence layer. This core never writes case records; it only
// derives classifications, outcomes, and alerts from them.
type CaseRecord struct {
	ID     uuid.UUID
	Number string
	Tier   Tier
	Status CaseStatus

	// JudgmentText is the operator-entered judgment outcome. Free text,
	// tier-specific vocabulary, nil while no judgment has been recorded.
	JudgmentText *string

	// InitiatingPartyText describes who filed the appeal or referral.
	// Meaningful only at the appellate tiers.
	InitiatingPartyText *string

	// JudgmentReceivedAt is the calendar date the party of record received
	// formal notice of the judgment. Starts the statutory window.
	JudgmentReceivedAt *time.Time
}

// DeadlineAlert is a single statutory-deadline notification item.
// Target is a caller-supplied navigation hint; this core knows nothing
// about routing.
type DeadlineAlert struct {
	Tier       Tier
	CaseID     uuid.UUID
	CaseNumber string
	DaysLeft   int
	Target     string
}
