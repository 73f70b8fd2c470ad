package audittrail

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lawdesk/casetrack-backend/internal/domain"
)

// LogChangeInput holds the parameters for recording one case mutation.
type LogChangeInput struct {
	CaseType string
	CaseID   uuid.UUID
	Action   domain.AuditAction

	// Before and After are full-record snapshots, never partial diffs.
	// Exactly one of them is nil for Created/Deleted; both are set for
	// Updated.
	Before domain.Snapshot
	After  domain.Snapshot
}

// Validate checks all fields and collects all errors, including the
// snapshot-shape rules per action.
func (i LogChangeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.CaseType) == "" {
		errs = append(errs, domain.FieldError{Field: "case_type", Message: "required"})
	}
	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be CREATED, UPDATED, or DELETED"})
	}

	switch i.Action {
	case domain.AuditActionCreated:
		if i.Before != nil {
			errs = append(errs, domain.FieldError{Field: "before", Message: "must be empty for CREATED"})
		}
		if i.After == nil {
			errs = append(errs, domain.FieldError{Field: "after", Message: "required for CREATED"})
		}
	case domain.AuditActionUpdated:
		if i.Before == nil {
			errs = append(errs, domain.FieldError{Field: "before", Message: "required for UPDATED"})
		}
		if i.After == nil {
			errs = append(errs, domain.FieldError{Field: "after", Message: "required for UPDATED"})
		}
	case domain.AuditActionDeleted:
		if i.Before == nil {
			errs = append(errs, domain.FieldError{Field: "before", Message: "required for DELETED"})
		}
		if i.After != nil {
			errs = append(errs, domain.FieldError{Field: "after", Message: "must be empty for DELETED"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CaseHistoryInput holds the parameters for one case's history query.
type CaseHistoryInput struct {
	CaseType string
	CaseID   uuid.UUID

	// Ascending flips the default newest-first ordering.
	Ascending bool
}

// Validate checks all fields and collects all errors.
func (i CaseHistoryInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.CaseType) == "" {
		errs = append(errs, domain.FieldError{Field: "case_type", Message: "required"})
	}
	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEntriesInput holds the parameters for the paginated global listing.
type ListEntriesInput struct {
	CaseType *string
	Action   *domain.AuditAction
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Action != nil && !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be CREATED, UPDATED, or DELETED"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
