// Package deadline computes statutory-window countdowns and the alert
// items shown in the notification panel. The computation is a pure query
// over a supplied case collection: no I/O, no scheduling, no persistence.
package deadline

import (
	"math"
	"strings"
	"time"

	"github.com/lawdesk/casetrack-backend/internal/domain"
	"github.com/lawdesk/casetrack-backend/internal/service/verdict"
)

const (
	// StatutoryWindowDays is the period after judgment receipt within
	// which a further appeal or referral must be filed.
	StatutoryWindowDays = 30

	// DefaultAlertAtDaysLeft is the remaining-days value on which an
	// alert fires. The trigger is an exact match, so each case alerts on
	// one specific day.
	DefaultAlertAtDaysLeft = 15
)

// Watcher holds the deadline parameters. TargetTemplate is the navigation
// hint placed on alerts, with "{tier}" substituted by the case tier; what
// the value means is entirely the caller's business.
type Watcher struct {
	WindowDays      int
	AlertAtDaysLeft int
	TargetTemplate  string
}

// NewWatcher creates a Watcher, falling back to the statutory defaults
// for non-positive parameters.
func NewWatcher(windowDays, alertAtDaysLeft int, targetTemplate string) *Watcher {
	if windowDays <= 0 {
		windowDays = StatutoryWindowDays
	}
	if alertAtDaysLeft <= 0 {
		alertAtDaysLeft = DefaultAlertAtDaysLeft
	}
	return &Watcher{
		WindowDays:      windowDays,
		AlertAtDaysLeft: alertAtDaysLeft,
		TargetTemplate:  targetTemplate,
	}
}

// DaysLeft returns how many days of the statutory window remain as of
// today. Both dates are truncated to midnight before subtraction, so
// time of day never affects the count. Negative means the window has
// already lapsed.
func (w *Watcher) DaysLeft(received, today time.Time) int {
	return w.WindowDays - daysBetween(received, today)
}

// Compute evaluates the alert condition over the supplied cases. A case
// produces exactly one alert item when all of the following hold: a
// judgment-received date is recorded, the tier-appropriate outcome is
// Loss, and the remaining days equal the configured threshold exactly.
// The result is a pure function of (cases, today); recomputing within
// the same day is idempotent.
func (w *Watcher) Compute(cases []domain.CaseRecord, today time.Time) []domain.DeadlineAlert {
	var alerts []domain.DeadlineAlert
	for _, rec := range cases {
		if rec.JudgmentReceivedAt == nil {
			continue
		}
		if verdict.Evaluate(rec) != domain.OutcomeLoss {
			continue
		}
		daysLeft := w.DaysLeft(*rec.JudgmentReceivedAt, today)
		if daysLeft != w.AlertAtDaysLeft {
			continue
		}
		alerts = append(alerts, domain.DeadlineAlert{
			Tier:       rec.Tier,
			CaseID:     rec.ID,
			CaseNumber: rec.Number,
			DaysLeft:   daysLeft,
			Target:     w.target(rec.Tier),
		})
	}
	return alerts
}

func (w *Watcher) target(tier domain.Tier) string {
	return strings.ReplaceAll(w.TargetTemplate, "{tier}", strings.ToLower(tier.String()))
}

// daysBetween counts calendar days from one date to the other. Both are
// truncated to midnight in the reference (today's) location first, and
// the result is rounded so a DST hour cannot shift the count.
func daysBetween(from, to time.Time) int {
	loc := to.Location()
	f := truncateToDay(from.In(loc))
	t := truncateToDay(to.In(loc))
	return int(math.Round(t.Sub(f).Hours() / 24))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
