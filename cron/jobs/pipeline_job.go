package jobs

import (
	"os"

	"sterileops/config"
	"sterileops/cron"
	"sterileops/service/etl"
)

func init() {
	schedule := os.Getenv("PIPELINE_SCHEDULE")
	if schedule == "" {
		// Nightly refresh before the first shift reads the dashboards
		schedule = "0 2 * * *"
	}
	cron.Register("pipelinerefresh", schedule, PipelineRefreshJob)
}

// PipelineRefreshJob runs the full batch with the configured sources. Errors
// are logged, not fatal: the previous snapshot stays published and the next
// scheduled run retries.
func PipelineRefreshJob(args ...string) {
	config.LoadAppConfig()
	cfg := config.AppConfig
	log := config.GetLogger()

	db, err := config.NewDB()
	if err != nil {
		log.WithError(err).Error("pipeline refresh: database connection failed")
		return
	}

	m := config.Mappings()
	_, err = etl.Run(db, etl.Options{
		InventoryPath:      cfg.InventorySource,
		ProcurementPath:    cfg.ProcurementSource,
		ProductionPath:     cfg.ProductionSource,
		ReportsDir:         cfg.ReportsDir,
		InventoryMapping:   m.Inventory,
		ProcurementMapping: m.Procurement,
		ProductionMapping:  m.Production,
		StageMap:           m.StageMap,
		ReorderRatio:       cfg.ReorderRatio,
		LinkerStrategy:     cfg.LinkerStrategy,
		LinkerSeed:         cfg.LinkerSeed,
		Logger:             log,
	})
	if err != nil {
		log.WithError(err).Error("pipeline refresh failed")
	}
}
