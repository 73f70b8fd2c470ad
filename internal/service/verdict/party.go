package verdict

import "github.com/lawdesk/casetrack-backend/internal/domain"

// ResolveParty maps a free-text "initiated by" field to the canonical
// party identity. Company markers are checked before Authority markers;
// the first match wins. Nil, empty, and unmatched text resolve to Unknown.
// Same totality and determinism guarantees as Classify.
func ResolveParty(text *string) domain.Party {
	if text == nil {
		return domain.PartyUnknown
	}

	normalized := domain.NormalizeText(*text)
	if normalized == "" {
		return domain.PartyUnknown
	}

	if containsAny(normalized, companyMarkers) {
		return domain.PartyCompany
	}
	if containsAny(normalized, authorityMarkers) {
		return domain.PartyAuthority
	}
	return domain.PartyUnknown
}
