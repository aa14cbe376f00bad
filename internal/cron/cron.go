package cron

import (
	"log"
	"time"

	"github.com/jaewonk/gpu-admin-go/internal/application"
)

func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Println("Starting background cleanup task (retention: 30 days)")

		// Run immediately on startup
		if err := auditService.CleanupOldLogs(30); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(30); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}
