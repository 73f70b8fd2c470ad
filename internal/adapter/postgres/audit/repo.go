// Package audit implements the audit trail repository using PostgreSQL.
// The audit_entries table is append-only: this package exposes one insert
// and read queries, and nothing that could alter or remove an entry.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lawdesk/casetrack-backend/internal/adapter/postgres"
	"github.com/lawdesk/casetrack-backend/internal/domain"
)

const table = "audit_entries"

var columns = []string{
	"id", "case_type", "case_id", "action",
	"before_snapshot", "after_snapshot", "actor_id", "created_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides audit entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// entryRow is the scan target mirroring the audit_entries columns.
type entryRow struct {
	ID             uuid.UUID `db:"id"`
	CaseType       string    `db:"case_type"`
	CaseID         uuid.UUID `db:"case_id"`
	Action         string    `db:"action"`
	BeforeSnapshot []byte    `db:"before_snapshot"`
	AfterSnapshot  []byte    `db:"after_snapshot"`
	ActorID        uuid.UUID `db:"actor_id"`
	CreatedAt      time.Time `db:"created_at"`
}

// Insert writes one immutable audit entry and returns the persisted form.
// The querier is resolved from the context, so an Insert issued inside
// TxManager.RunInTx commits atomically with the surrounding case mutation.
func (r *Repo) Insert(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	before, err := marshalSnapshot(entry.Before)
	if err != nil {
		return nil, fmt.Errorf("audit_entry marshal before: %w", err)
	}
	after, err := marshalSnapshot(entry.After)
	if err != nil {
		return nil, fmt.Errorf("audit_entry marshal after: %w", err)
	}

	sql, args, err := builder.
		Insert(table).
		Columns(columns...).
		Values(entry.ID, entry.CaseType, entry.CaseID, entry.Action.String(),
			before, after, entry.ActorID, entry.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert audit_entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit_entry", entry.ID)
	}

	return toDomain(row)
}

// ListByCase returns the trail for one case, newest first by default.
func (r *Repo) ListByCase(ctx context.Context, caseType string, caseID uuid.UUID, ascending bool) ([]domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	order := "created_at DESC"
	if ascending {
		order = "created_at ASC"
	}

	sql, args, err := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"case_type": caseType, "case_id": caseID}).
		OrderBy(order).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_entries by case: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit_entries by case: %w", err)
	}

	return toDomainSlice(rows)
}

// List returns one page of the global trail, newest first, with optional
// case-type and action filters, plus the total matching count.
func (r *Repo) List(ctx context.Context, filter domain.AuditFilter, limit, offset int) ([]domain.AuditEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	listSQL, listArgs, err := applyFilter(builder.Select(columns...).From(table), filter).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list audit_entries: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list audit_entries: %w", err)
	}

	countSQL, countArgs, err := applyFilter(builder.Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count audit_entries: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit_entries: %w", err)
	}

	entries, err := toDomainSlice(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func applyFilter(b sq.SelectBuilder, filter domain.AuditFilter) sq.SelectBuilder {
	if filter.CaseType != nil {
		b = b.Where(sq.Eq{"case_type": *filter.CaseType})
	}
	if filter.Action != nil {
		b = b.Where(sq.Eq{"action": filter.Action.String()})
	}
	return b
}

// ---------------------------------------------------------------------------
// Mapping helpers: rows -> domain
// ---------------------------------------------------------------------------

func toDomain(row entryRow) (*domain.AuditEntry, error) {
	entry := domain.AuditEntry{
		ID:        row.ID,
		CaseType:  row.CaseType,
		CaseID:    row.CaseID,
		Action:    domain.AuditAction(row.Action),
		ActorID:   row.ActorID,
		CreatedAt: row.CreatedAt,
	}

	var err error
	if entry.Before, err = unmarshalSnapshot(row.BeforeSnapshot); err != nil {
		return nil, fmt.Errorf("audit_entry %s unmarshal before: %w", row.ID, err)
	}
	if entry.After, err = unmarshalSnapshot(row.AfterSnapshot); err != nil {
		return nil, fmt.Errorf("audit_entry %s unmarshal after: %w", row.ID, err)
	}

	return &entry, nil
}

func toDomainSlice(rows []entryRow) ([]domain.AuditEntry, error) {
	entries := make([]domain.AuditEntry, len(rows))
	for i, row := range rows {
		entry, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		entries[i] = *entry
	}
	return entries, nil
}

// marshalSnapshot keeps SQL NULL for absent snapshots so the per-action
// CHECK constraints can tell "no snapshot" from "empty snapshot".
func marshalSnapshot(s domain.Snapshot) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func unmarshalSnapshot(raw []byte) (domain.Snapshot, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var s domain.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return s, nil
}
