package etl

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sterileops/core/cache"
	snapshotRepo "sterileops/model/repository/snapshot"
	"sterileops/service/report"
)

// Options configures a pipeline run.
type Options struct {
	InventoryPath   string
	ProcurementPath string
	ProductionPath  string
	ReportsDir      string

	// Column renames per domain plus the operation-to-stage map
	InventoryMapping   map[string]string
	ProcurementMapping map[string]string
	ProductionMapping  map[string]string
	StageMap           map[string]string

	ReorderRatio   float64
	LinkerStrategy string
	LinkerSeed     int64

	// SkipReports persists the snapshot without writing workbooks
	SkipReports bool

	Logger *logrus.Logger
}

// Result holds counters and timing from a pipeline run.
type Result struct {
	InventoryRows   int
	ProcurementRows int
	ProductionRows  int
	ParseFailures   int
	FailuresByField map[string]int
	ReportFiles     []string
	LoadTime        time.Duration
	ProcessTime     time.Duration
	DBTime          time.Duration
	ReportTime      time.Duration
	TotalTime       time.Duration
}

// Run executes one full batch: load, normalize, derive, link, persist,
// report. A source read failure aborts the run before anything is written;
// everything downstream of loading is non-fatal per field, fatal per stage.
func Run(db *gorm.DB, opts Options) (*Result, error) {
	startTotal := time.Now()

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.ReorderRatio <= 0 {
		opts.ReorderRatio = DefaultReorderRatio
	}

	// Load: the only stage where a failure is fatal to the whole run
	startLoad := time.Now()
	rawInv, err := LoadXLSX(opts.InventoryPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", DomainInventory, err)
	}
	rawProc, err := LoadCSV(opts.ProcurementPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", DomainProcurement, err)
	}
	rawProd, err := LoadCSV(opts.ProductionPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", DomainProduction, err)
	}
	loadTime := time.Since(startLoad)

	// Normalize and coerce into typed canonical rows
	startProcess := time.Now()
	quality := &QualityReport{}
	items := BuildInventory(NormalizeTable(rawInv, opts.InventoryMapping), quality)
	orders := BuildProcurement(NormalizeTable(rawProc, opts.ProcurementMapping), quality)
	jobs := BuildProduction(NormalizeTable(rawProd, opts.ProductionMapping), quality)

	// The three derivations are independent pure functions over their own
	// tables, so they run in parallel. The linker needs the finalized
	// inventory part-ID set and waits for all of them.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); DeriveInventory(items, opts.ReorderRatio) }()
	go func() { defer wg.Done(); DeriveProcurement(orders) }()
	go func() { defer wg.Done(); DeriveProduction(jobs, opts.StageMap) }()
	wg.Wait()

	assigner := NewAssigner(opts.LinkerStrategy, opts.LinkerSeed, PartIDs(items))
	AssignParts(jobs, PartIDs(items), assigner)
	processTime := time.Since(startProcess)

	if quality.Total() > 0 {
		log.WithFields(logrus.Fields{
			"failures": quality.Total(),
			"by_field": quality.CountByField(),
		}).Warn("field-level parse failures replaced with defaults")
	}

	// Persist: atomic replace-all of the three snapshots
	startDB := time.Now()
	repo := snapshotRepo.NewSnapshotRepository(db)
	if err := repo.ReplaceAll(items, orders, jobs); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}
	dbTime := time.Since(startDB)

	// The previous snapshot's memoized views are stale now
	cache.GetInstance().DeleteByTag(cache.TagSnapshot)

	result := &Result{
		InventoryRows:   len(items),
		ProcurementRows: len(orders),
		ProductionRows:  len(jobs),
		ParseFailures:   quality.Total(),
		FailuresByField: quality.CountByField(),
		LoadTime:        loadTime,
		ProcessTime:     processTime,
		DBTime:          dbTime,
	}

	if !opts.SkipReports {
		startReports := time.Now()
		paths, err := report.WriteAll(opts.ReportsDir, report.All(items, orders, jobs))
		if err != nil {
			return nil, fmt.Errorf("write reports: %w", err)
		}
		result.ReportFiles = paths
		result.ReportTime = time.Since(startReports)
	}

	result.TotalTime = time.Since(startTotal)
	log.WithFields(logrus.Fields{
		"inventory":   result.InventoryRows,
		"procurement": result.ProcurementRows,
		"production":  result.ProductionRows,
		"reports":     len(result.ReportFiles),
		"took":        result.TotalTime.Round(time.Millisecond).String(),
	}).Info("pipeline run complete")
	return result, nil
}
