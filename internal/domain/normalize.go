package domain

import "strings"

// NormalizeText prepares operator-entered free text (judgment outcomes,
// initiating-party descriptions) for marker matching:
//   - trims leading/trailing whitespace
//   - case-folds to lowercase
//   - collapses internal whitespace runs into single spaces
//
// The result is empty exactly when the input carries no visible content.
func NormalizeText(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}
