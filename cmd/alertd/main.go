// Command alertd runs the statutory deadline alert daemon. It applies
// schema migrations at startup, then periodically scans every tracked case
// and emits an alert for each one whose further-appeal window crosses the
// configured remaining-days threshold.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/lawdesk/casetrack-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("alertd: %v", err)
	}
}
