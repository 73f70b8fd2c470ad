package verdict

import "github.com/lawdesk/casetrack-backend/internal/domain"

// markerFamily groups the substrings that identify one judgment category.
// Matching is containment against normalized text; the first family that
// matches wins, so the order of the family slices below is load-bearing.
type markerFamily struct {
	category domain.JudgmentCategory
	markers  []string
}

var (
	canceledMarkers  = []string{"cancel", "annul", "set aside", "quash", "vacat"}
	rejectedMarkers  = []string{"reject", "dismiss", "denied", "deny"}
	acceptedMarkers  = []string{"accept", "uphold", "upheld", "affirm", "sustain"}
	postponedMarkers = []string{"postpon", "adjourn", "defer"}
)

// primaryFamilies is the first-instance vocabulary. There is no Accepted
// family: first-instance judgments are not framed as affirmations.
var primaryFamilies = []markerFamily{
	{domain.JudgmentCanceled, canceledMarkers},
	{domain.JudgmentRejected, rejectedMarkers},
	{domain.JudgmentPostponed, postponedMarkers},
}

// appellateFamilies is the appeal/supreme vocabulary, in priority order:
// Canceled, Rejected, Accepted, Postponed.
var appellateFamilies = []markerFamily{
	{domain.JudgmentCanceled, canceledMarkers},
	{domain.JudgmentRejected, rejectedMarkers},
	{domain.JudgmentAccepted, acceptedMarkers},
	{domain.JudgmentPostponed, postponedMarkers},
}

var (
	companyMarkers   = []string{"company", "corporation", "claimant", "taxpayer"}
	authorityMarkers = []string{"authority", "government", "administration", "ministry", "prosecution"}
)
