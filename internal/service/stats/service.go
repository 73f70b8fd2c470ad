package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lawdesk/casetrack-backend/internal/domain"
)

type caseSource interface {
	ListByTier(ctx context.Context, tier domain.Tier) ([]domain.CaseRecord, error)
}

// Service loads the full case population and aggregates it.
type Service struct {
	cases caseSource
	log   *slog.Logger
}

// NewService creates a new Stats service.
func NewService(log *slog.Logger, cases caseSource) *Service {
	return &Service{
		cases: cases,
		log:   log.With("service", "stats"),
	}
}

// Overview scans all cases of all three tiers (tier scans run in
// parallel) and returns the aggregate report.
func (s *Service) Overview(ctx context.Context) (domain.CaseStats, error) {
	var (
		mu  sync.Mutex
		all []domain.CaseRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, tier := range domain.Tiers() {
		g.Go(func() error {
			records, err := s.cases.ListByTier(gctx, tier)
			if err != nil {
				return fmt.Errorf("list %s cases: %w", tier, err)
			}
			mu.Lock()
			all = append(all, records...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.CaseStats{}, err
	}

	result := Compute(all)

	s.log.InfoContext(ctx, "stats overview computed",
		slog.Int("total", result.Total()),
		slog.Int("wins", result.Wins),
		slog.Int("losses", result.Losses),
		slog.Int("pending_outcomes", result.PendingOutcomes),
	)

	return result, nil
}
