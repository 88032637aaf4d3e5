package utils

import (
	"context"
	"log"
	"time"

	"certmaster/persistence"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SYNC-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartSyncScheduler periodically flushes the persistence bridge so the
// remote and local stores converge even if a debounced save was lost to a
// transient store failure. Returns the cron so main can stop it on shutdown.
func StartSyncScheduler(bridge *persistence.Bridge) *cron.Cron {
	c := cron.New()

	// Every 5 minutes is frequent enough: a lost save only diverges the
	// stores until the next edit or the next tick.
	c.AddFunc("*/5 * * * *", func() {
		logScheduler("Reconciling persistence stores...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		bridge.Flush(ctx)
	})

	c.Start()
	logScheduler("Sync scheduler started - reconciles stores every 5 minutes")
	return c
}
