package domain

// Tier identifies the litigation stage a case file belongs to.
// A matter moves through the tiers sequentially: first-instance judgment,
// then appeal, then supreme-court referral.
type Tier string

const (
	TierPrimary Tier = "PRIMARY"
	TierAppeal  Tier = "APPEAL"
	TierSupreme Tier = "SUPREME"
)

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierPrimary, TierAppeal, TierSupreme:
		return true
	}
	return false
}

// IsAppellate reports whether judgments at this tier are framed around an
// initiating party (appeal or supreme referral).
func (t Tier) IsAppellate() bool {
	return t == TierAppeal || t == TierSupreme
}

// Tiers lists all tiers in procedural order.
func Tiers() []Tier {
	return []Tier{TierPrimary, TierAppeal, TierSupreme}
}

// JudgmentCategory is the canonical classification of a free-text judgment.
type JudgmentCategory string

const (
	JudgmentPending   JudgmentCategory = "PENDING"
	JudgmentCanceled  JudgmentCategory = "CANCELED"
	JudgmentRejected  JudgmentCategory = "REJECTED"
	JudgmentAccepted  JudgmentCategory = "ACCEPTED"
	JudgmentPostponed JudgmentCategory = "POSTPONED"
)

func (c JudgmentCategory) String() string { return string(c) }

func (c JudgmentCategory) IsValid() bool {
	switch c {
	case JudgmentPending, JudgmentCanceled, JudgmentRejected, JudgmentAccepted, JudgmentPostponed:
		return true
	}
	return false
}

// ValidForTier reports whether the category belongs to the tier's vocabulary.
// First-instance judgments are never framed as affirmations, so Accepted
// exists only at the appellate tiers.
func (c JudgmentCategory) ValidForTier(t Tier) bool {
	if !c.IsValid() {
		return false
	}
	if c == JudgmentAccepted {
		return t.IsAppellate()
	}
	return true
}

// Party identifies which side initiated an appeal or supreme referral.
type Party string

const (
	PartyCompany   Party = "COMPANY"
	PartyAuthority Party = "AUTHORITY"
	PartyUnknown   Party = "UNKNOWN"
)

func (p Party) String() string { return string(p) }

func (p Party) IsValid() bool {
	switch p {
	case PartyCompany, PartyAuthority, PartyUnknown:
		return true
	}
	return false
}

// Outcome is the ternary verdict derived from judgment category and,
// at the appellate tiers, the initiating party. It is never persisted:
// it is recomputed from the current free-text fields on every read so it
// cannot drift from the latest edit.
type Outcome string

const (
	OutcomeWin     Outcome = "WIN"
	OutcomeLoss    Outcome = "LOSS"
	OutcomePending Outcome = "PENDING"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeWin, OutcomeLoss, OutcomePending:
		return true
	}
	return false
}

// CaseStatus is the persisted workflow status of a case file. It is a
// separate axis from Outcome: a case can be procedurally PENDING while its
// judgment text already classifies, and vice versa.
type CaseStatus string

const (
	CaseStatusPending   CaseStatus = "PENDING"
	CaseStatusPostponed CaseStatus = "POSTPONED"
	CaseStatusDecided   CaseStatus = "DECIDED"
	CaseStatusClosed    CaseStatus = "CLOSED"
)

func (s CaseStatus) String() string { return string(s) }

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusPending, CaseStatusPostponed, CaseStatusDecided, CaseStatusClosed:
		return true
	}
	return false
}

// IsOpen reports whether the status counts toward per-tier pending totals.
func (s CaseStatus) IsOpen() bool {
	return s == CaseStatusPending || s == CaseStatusPostponed
}

// AuditAction represents the kind of mutation recorded in the audit trail.
type AuditAction string

const (
	AuditActionCreated AuditAction = "CREATED"
	AuditActionUpdated AuditAction = "UPDATED"
	AuditActionDeleted AuditAction = "DELETED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreated, AuditActionUpdated, AuditActionDeleted:
		return true
	}
	return false
}
