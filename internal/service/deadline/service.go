package deadline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lawdesk/casetrack-backend/internal/domain"
)

type caseSource interface {
	ListAll(ctx context.Context) ([]domain.CaseRecord, error)
}

// Service feeds the watcher from the case store. It is invoked on demand
// (each time the notification panel is opened, or by a periodic host job);
// it owns no schedule of its own.
type Service struct {
	watcher *Watcher
	cases   caseSource
	log     *slog.Logger
}

// NewService creates a new Deadline service.
func NewService(log *slog.Logger, cases caseSource, watcher *Watcher) *Service {
	return &Service{
		watcher: watcher,
		cases:   cases,
		log:     log.With("service", "deadline"),
	}
}

// PendingAlerts loads every case and returns the alert items due today.
func (s *Service) PendingAlerts(ctx context.Context, today time.Time) ([]domain.DeadlineAlert, error) {
	cases, err := s.cases.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	alerts := s.watcher.Compute(cases, today)

	s.log.InfoContext(ctx, "deadline alerts computed",
		slog.Int("cases_scanned", len(cases)),
		slog.Int("alerts", len(alerts)),
	)

	return alerts, nil
}
