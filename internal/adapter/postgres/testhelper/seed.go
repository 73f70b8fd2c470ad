package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lawdesk/casetrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// tierTable maps a tier back to its case table for seeding.
func tierTable(t *testing.T, tier domain.Tier) (name string, hasParty bool) {
	t.Helper()
	switch tier {
	case domain.TierPrimary:
		return "primary_cases", false
	case domain.TierAppeal:
		return "appeal_cases", true
	case domain.TierSupreme:
		return "supreme_cases", true
	default:
		t.Fatalf("testhelper: unknown tier %q", tier)
		return "", false
	}
}

// SeedCase inserts one case row into the tier's table. Zero-value fields
// get sensible defaults; the filled record is returned.
func SeedCase(t *testing.T, pool *pgxpool.Pool, rec domain.CaseRecord) domain.CaseRecord {
	t.Helper()
	ctx := context.Background()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Number == "" {
		rec.Number = "case-" + uniqueSuffix()
	}
	if rec.Status == "" {
		rec.Status = domain.CaseStatusPending
	}

	table, hasParty := tierTable(t, rec.Tier)

	var err error
	if hasParty {
		_, err = pool.Exec(ctx,
			`INSERT INTO `+table+` (id, case_number, status, judgment_text, initiating_party_text, judgment_received_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.ID, rec.Number, string(rec.Status), rec.JudgmentText, rec.InitiatingPartyText, rec.JudgmentReceivedAt,
		)
	} else {
		_, err = pool.Exec(ctx,
			`INSERT INTO `+table+` (id, case_number, status, judgment_text, judgment_received_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			rec.ID, rec.Number, string(rec.Status), rec.JudgmentText, rec.JudgmentReceivedAt,
		)
	}
	if err != nil {
		t.Fatalf("testhelper: SeedCase insert into %s: %v", table, err)
	}

	return rec
}
