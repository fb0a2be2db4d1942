package services

import (
	"database/sql"
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler starts the background job scheduler. Reminders go out
// daily at 08:00 server time.
func StartScheduler(db *sql.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 8 * * *", func() {
		if err := SendFeeReminders(db); err != nil {
			log.Printf("Fee reminder run failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to schedule fee reminders: %v", err)
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}
