// Package scheduler provides automated catalog reload scheduling and health
// monitoring for the cure calendar API. It handles cron-based catalog
// reloads and staleness checks, coordinating with the data container through
// dependency injection.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/symplab/cure-calendar-api/interfaces"
	"github.com/symplab/cure-calendar-api/logging"
)

// Compile-time check to ensure CatalogScheduler implements Scheduler
var _ interfaces.Scheduler = (*CatalogScheduler)(nil)

// CatalogScheduler reloads the catalog on a schedule using injected dependencies
type CatalogScheduler struct {
	dataStore interfaces.DataStore
	parser    interfaces.CatalogParser
	scheduler *gocron.Scheduler
}

// NewCatalogScheduler creates a new scheduler instance with injected dependencies
func NewCatalogScheduler(dataStore interfaces.DataStore, parser interfaces.CatalogParser) *CatalogScheduler {
	return &CatalogScheduler{
		dataStore: dataStore,
		parser:    parser,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start performs the initial catalog load and schedules daily reloads
func (s *CatalogScheduler) Start() error {
	// Initial load
	if err := s.reloadCatalog(); err != nil {
		logging.Error("Failed to perform initial catalog load", "error", err)
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	// The back office exports the catalog overnight, reload at 06:00 daily
	_, err := s.scheduler.Every(1).Days().At("06:00").Do(func() {
		if err := s.reloadCatalog(); err != nil {
			logging.Error("Failed to reload catalog", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule catalog reloads", "error", err)
		return fmt.Errorf("failed to schedule catalog reloads: %w", err)
	}

	s.scheduler.StartAsync()

	// Start staleness monitoring
	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *CatalogScheduler) Stop() {
	s.scheduler.Stop()
}

// CalculateNextUpdate returns the next scheduled reload time
func CalculateNextUpdate() time.Time {
	now := time.Now()

	sixAM := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, now.Location())
	if now.Before(sixAM) {
		return sixAM
	}

	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 6, 0, 0, 0, tomorrow.Location())
}

// reloadCatalog performs a complete catalog reload using injected dependencies
func (s *CatalogScheduler) reloadCatalog() error {
	// Prevent concurrent updates
	if !s.dataStore.BeginUpdate() {
		logging.Info("Catalog reload already in progress, skipping...")
		return nil
	}
	defer s.dataStore.EndUpdate()

	logging.Info(fmt.Sprintf("Starting catalog reload at: %s", time.Now().Format(time.RFC3339)))
	start := time.Now()

	newProducts, newProductsMap, err := s.parser.ParseCatalog()
	if err != nil {
		logging.Error("Failed to parse catalog", "error", err)
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	// Atomic swap, in-flight calendar builds keep their snapshot
	s.dataStore.UpdateData(newProducts, newProductsMap)

	elapsed := time.Since(start)
	logging.Info("Catalog reload completed", "duration", elapsed.String(), "product_count", len(newProducts))

	return nil
}

// startHealthMonitoring watches for missed catalog reloads
func (s *CatalogScheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			lastUpdate := s.dataStore.GetLastUpdated()
			if time.Since(lastUpdate) > 25*time.Hour {
				logging.Warn("Catalog hasn't been reloaded in over 25 hours")
			}
		}
	}()
}
