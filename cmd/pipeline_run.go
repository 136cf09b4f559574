package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sterileops/config"
	"sterileops/service/etl"
)

var (
	pipelineInventory   string
	pipelineProcurement string
	pipelineProduction  string
	pipelineReportsDir  string
	pipelineStrategy    string
	pipelineSeed        int64
	pipelineSkipReports bool
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline:run",
	Short: "Run the full batch: load sources, derive, persist snapshot, write reports",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		cfg := config.AppConfig

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		m := config.Mappings()
		opts := etl.Options{
			InventoryPath:      firstNonEmpty(pipelineInventory, cfg.InventorySource),
			ProcurementPath:    firstNonEmpty(pipelineProcurement, cfg.ProcurementSource),
			ProductionPath:     firstNonEmpty(pipelineProduction, cfg.ProductionSource),
			ReportsDir:         firstNonEmpty(pipelineReportsDir, cfg.ReportsDir),
			InventoryMapping:   m.Inventory,
			ProcurementMapping: m.Procurement,
			ProductionMapping:  m.Production,
			StageMap:           m.StageMap,
			ReorderRatio:       cfg.ReorderRatio,
			LinkerStrategy:     firstNonEmpty(pipelineStrategy, cfg.LinkerStrategy),
			LinkerSeed:         pipelineSeed,
			SkipReports:        pipelineSkipReports,
			Logger:             config.GetLogger(),
		}
		if !cmd.Flags().Changed("seed") {
			opts.LinkerSeed = cfg.LinkerSeed
		}

		res, err := etl.Run(db, opts)
		if err != nil {
			fmt.Printf("Pipeline failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf(`
=== Pipeline Report ===
Inventory rows:   %d
Procurement rows: %d
Production rows:  %d
Parse failures:   %d
Reports written:  %d
Total time:       %s
  - Load:         %s
  - Processing:   %s
  - DB replace:   %s
  - Reports:      %s
=======================
`, res.InventoryRows, res.ProcurementRows, res.ProductionRows,
			res.ParseFailures, len(res.ReportFiles),
			res.TotalTime.Round(time.Millisecond),
			res.LoadTime.Round(time.Millisecond),
			res.ProcessTime.Round(time.Millisecond),
			res.DBTime.Round(time.Millisecond),
			res.ReportTime.Round(time.Millisecond))

		for field, n := range res.FailuresByField {
			fmt.Printf("  [warn] %s: %d value(s) defaulted\n", field, n)
		}
		for _, p := range res.ReportFiles {
			fmt.Printf("  wrote %s\n", p)
		}
	},
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	pipelineCmd.Flags().StringVarP(&pipelineInventory, "inventory", "i", "", "Inventory xlsx path (default from SOURCE_INVENTORY)")
	pipelineCmd.Flags().StringVarP(&pipelineProcurement, "procurement", "p", "", "Procurement csv path (default from SOURCE_PROCUREMENT)")
	pipelineCmd.Flags().StringVarP(&pipelineProduction, "production", "j", "", "Production csv path (default from SOURCE_PRODUCTION)")
	pipelineCmd.Flags().StringVar(&pipelineReportsDir, "reports-dir", "", "Output directory for report workbooks")
	pipelineCmd.Flags().StringVar(&pipelineStrategy, "strategy", "", "Part link strategy: random, roundrobin or hash")
	pipelineCmd.Flags().Int64Var(&pipelineSeed, "seed", 0, "Seed for the random link strategy")
	pipelineCmd.Flags().BoolVar(&pipelineSkipReports, "skip-reports", false, "Persist the snapshot without writing report workbooks")
	rootCmd.AddCommand(pipelineCmd)
}
