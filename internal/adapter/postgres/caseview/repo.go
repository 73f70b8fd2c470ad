// Package caseview implements the read-only case feed this core consumes.
// Case rows are owned by the surrounding CRUD layer; this repository only
// projects them into domain.CaseRecord views for the stats and deadline
// services, one table per tier.
package caseview

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lawdesk/casetrack-backend/internal/adapter/postgres"
	"github.com/lawdesk/casetrack-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// tierTables maps each tier to its backing table. Only the primary table
// lacks an initiating-party column; first-instance filings have no
// appellant.
var tierTables = map[domain.Tier]struct {
	name     string
	hasParty bool
}{
	domain.TierPrimary: {"primary_cases", false},
	domain.TierAppeal:  {"appeal_cases", true},
	domain.TierSupreme: {"supreme_cases", true},
}

// Repo provides read access to case records across all three tiers.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new case view repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type caseRow struct {
	ID                  uuid.UUID  `db:"id"`
	CaseNumber          string     `db:"case_number"`
	Status              string     `db:"status"`
	JudgmentText        *string    `db:"judgment_text"`
	InitiatingPartyText *string    `db:"initiating_party_text"`
	JudgmentReceivedAt  *time.Time `db:"judgment_received_at"`
}

// ListByTier returns every case of one tier. Returns an empty slice (not
// nil) when the tier has no cases.
func (r *Repo) ListByTier(ctx context.Context, tier domain.Tier) ([]domain.CaseRecord, error) {
	table, ok := tierTables[tier]
	if !ok {
		return nil, fmt.Errorf("list cases: %w: unknown tier %q", domain.ErrValidation, tier)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	partyCol := "initiating_party_text"
	if !table.hasParty {
		partyCol = "NULL::text AS initiating_party_text"
	}

	sql, args, err := builder.
		Select("id", "case_number", "status", "judgment_text", partyCol, "judgment_received_at").
		From(table.name).
		OrderBy("case_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", table.name, err)
	}

	var rows []caseRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", table.name, err)
	}

	records := make([]domain.CaseRecord, len(rows))
	for i, row := range rows {
		records[i] = toDomain(row, tier)
	}
	return records, nil
}

// ListAll returns the full case population of all tiers, in tier order.
func (r *Repo) ListAll(ctx context.Context) ([]domain.CaseRecord, error) {
	var all []domain.CaseRecord
	for _, tier := range domain.Tiers() {
		records, err := r.ListByTier(ctx, tier)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

func toDomain(row caseRow, tier domain.Tier) domain.CaseRecord {
	return domain.CaseRecord{
		ID:                  row.ID,
		Number:              row.CaseNumber,
		Tier:                tier,
		Status:              domain.CaseStatus(row.Status),
		JudgmentText:        row.JudgmentText,
		InitiatingPartyText: row.InitiatingPartyText,
		JudgmentReceivedAt:  row.JudgmentReceivedAt,
	}
}
