package stats

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/lawdesk/casetrack-backend/internal/domain"
)

// caseSourceMock implements caseSource with a configurable func.
type caseSourceMock struct {
	ListByTierFunc func(ctx context.Context, tier domain.Tier) ([]domain.CaseRecord, error)

	mu    sync.Mutex
	calls []domain.Tier
}

func (m *caseSourceMock) ListByTier(ctx context.Context, tier domain.Tier) ([]domain.CaseRecord, error) {
	m.mu.Lock()
	m.calls = append(m.calls, tier)
	m.mu.Unlock()
	return m.ListByTierFunc(ctx, tier)
}

func newTestService(mock *caseSourceMock) *Service {
	return &Service{cases: mock, log: slog.Default()}
}

func TestOverview_ScansAllTiers(t *testing.T) {
	t.Parallel()

	byTier := map[domain.Tier][]domain.CaseRecord{
		domain.TierPrimary: {
			{Tier: domain.TierPrimary, Status: domain.CaseStatusDecided, JudgmentText: ptr("cancelled")},
		},
		domain.TierAppeal: {
			{Tier: domain.TierAppeal, Status: domain.CaseStatusDecided, JudgmentText: ptr("rejected"), InitiatingPartyText: ptr("company")},
		},
		domain.TierSupreme: {
			{Tier: domain.TierSupreme, Status: domain.CaseStatusPending},
		},
	}
	mock := &caseSourceMock{
		ListByTierFunc: func(ctx context.Context, tier domain.Tier) ([]domain.CaseRecord, error) {
			return byTier[tier], nil
		},
	}

	svc := newTestService(mock)
	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Total() != 3 {
		t.Errorf("Total() = %d, want 3", got.Total())
	}
	if got.Wins != 1 || got.Losses != 1 || got.PendingOutcomes != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", got.Wins, got.Losses, got.PendingOutcomes)
	}
	if len(mock.calls) != 3 {
		t.Errorf("ListByTier calls: got %d, want 3", len(mock.calls))
	}
}

func TestOverview_PropagatesRepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("pool exhausted")
	mock := &caseSourceMock{
		ListByTierFunc: func(ctx context.Context, tier domain.Tier) ([]domain.CaseRecord, error) {
			if tier == domain.TierAppeal {
				return nil, boom
			}
			return nil, nil
		},
	}

	svc := newTestService(mock)
	_, err := svc.Overview(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Overview error = %v, want wrapped %v", err, boom)
	}
}

func TestOverview_EmptyPopulation(t *testing.T) {
	t.Parallel()

	mock := &caseSourceMock{
		ListByTierFunc: func(ctx context.Context, tier domain.Tier) ([]domain.CaseRecord, error) {
			return nil, nil
		},
	}

	svc := newTestService(mock)
	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total() != 0 {
		t.Errorf("Total() = %d, want 0", got.Total())
	}
}
