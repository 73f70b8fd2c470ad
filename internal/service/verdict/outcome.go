package verdict

import "github.com/lawdesk/casetrack-backend/internal/domain"

// EvaluatePrimary scores a first-instance judgment. The record owner is
// implicitly the party the decision favors or disfavors, so no party
// resolution is involved:
//
//	Canceled  -> Win
//	Rejected  -> Loss
//	otherwise -> Pending
func EvaluatePrimary(category domain.JudgmentCategory) domain.Outcome {
	switch category {
	case domain.JudgmentCanceled:
		return domain.OutcomeWin
	case domain.JudgmentRejected:
		return domain.OutcomeLoss
	default:
		return domain.OutcomePending
	}
}

// EvaluateAppellate scores an appeal or supreme-court judgment.
//
//	Pending, Postponed -> Pending
//	Canceled           -> Win
//	Accepted, Rejected -> Win when the authority initiated, Loss otherwise
//
// A resolved judgment whose initiating party cannot be identified scores
// Loss, not Pending. This is the one rule table for appellate outcomes;
// every outcome computation in the system goes through it.
func EvaluateAppellate(category domain.JudgmentCategory, party domain.Party) domain.Outcome {
	switch category {
	case domain.JudgmentCanceled:
		return domain.OutcomeWin
	case domain.JudgmentAccepted, domain.JudgmentRejected:
		if party == domain.PartyAuthority {
			return domain.OutcomeWin
		}
		return domain.OutcomeLoss
	default:
		return domain.OutcomePending
	}
}

// Evaluate derives the outcome for a whole case record, dispatching on
// tier. This is the entry point the stats and deadline services share so
// the two can never disagree on scoring.
func Evaluate(rec domain.CaseRecord) domain.Outcome {
	if rec.Tier.IsAppellate() {
		category := Classify(rec.JudgmentText, rec.Tier)
		party := ResolveParty(rec.InitiatingPartyText)
		return EvaluateAppellate(category, party)
	}
	return EvaluatePrimary(Classify(rec.JudgmentText, rec.Tier))
}
