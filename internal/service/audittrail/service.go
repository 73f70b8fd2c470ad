// Package audittrail captures immutable before/after snapshots of case
// mutations and serves chronological history queries. Entries are
// append-only: nothing in this package (or below it) can update or delete
// one once it is written.
package audittrail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lawdesk/casetrack-backend/internal/domain"
	"github.com/lawdesk/casetrack-backend/pkg/ctxutil"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type auditRepo interface {
	Insert(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error)
	ListByCase(ctx context.Context, caseType string, caseID uuid.UUID, ascending bool) ([]domain.AuditEntry, error)
	List(ctx context.Context, filter domain.AuditFilter, limit, offset int) ([]domain.AuditEntry, int, error)
}

// Service provides audit trail operations.
type Service struct {
	entries auditRepo
	log     *slog.Logger
}

// NewService creates a new AuditTrail service.
func NewService(log *slog.Logger, entries auditRepo) *Service {
	return &Service{
		entries: entries,
		log:     log.With("service", "audittrail"),
	}
}

// LogChange writes one audit entry for a case mutation. The actor is taken
// from the context; the timestamp is assigned here and never changes.
//
// The write is synchronous and performs no internal retries. A caller that
// needs the case mutation and its audit record to commit or fail together
// runs both inside postgres.TxManager.RunInTx: the repository picks the
// ambient transaction up from the context, making the pair atomic. Outside
// a transaction the call is a single independent durable write.
func (s *Service) LogChange(ctx context.Context, input LogChangeInput) (*domain.AuditEntry, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.Insert(ctx, domain.AuditEntry{
		ID:        uuid.New(),
		CaseType:  strings.TrimSpace(input.CaseType),
		CaseID:    input.CaseID,
		Action:    input.Action,
		Before:    input.Before,
		After:     input.After,
		ActorID:   actorID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert audit entry: %w", err)
	}

	s.log.InfoContext(ctx, "case mutation recorded",
		slog.String("case_type", entry.CaseType),
		slog.String("case_id", entry.CaseID.String()),
		slog.String("action", entry.Action.String()),
		slog.String("actor_id", actorID.String()),
	)

	return entry, nil
}

// CaseHistory returns the full trail for one case, newest first unless
// ascending order was requested. The case itself may no longer exist;
// its history is served regardless.
func (s *Service) CaseHistory(ctx context.Context, input CaseHistoryInput) ([]domain.AuditEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByCase(ctx, strings.TrimSpace(input.CaseType), input.CaseID, input.Ascending)
	if err != nil {
		return nil, fmt.Errorf("list case history: %w", err)
	}

	return entries, nil
}

// ListEntries returns a page of the global trail with optional case-type
// and action filters, newest first, plus the total matching count.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]domain.AuditEntry, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}

	filter := domain.AuditFilter{
		CaseType: trimOrNil(input.CaseType),
		Action:   input.Action,
	}

	entries, total, err := s.entries.List(ctx, filter, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}

	return entries, total, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
