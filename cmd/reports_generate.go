package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sterileops/config"
	snapshotRepo "sterileops/model/repository/snapshot"
	"sterileops/service/report"
)

var reportsDir string

var reportsCmd = &cobra.Command{
	Use:   "reports:generate",
	Short: "Rebuild the xlsx report workbooks from the persisted snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		repo := snapshotRepo.NewSnapshotRepository(db)

		items, err := repo.Inventory()
		if err != nil {
			fmt.Printf("Read inventory snapshot: %v\n", err)
			os.Exit(1)
		}
		orders, err := repo.Procurement()
		if err != nil {
			fmt.Printf("Read procurement snapshot: %v\n", err)
			os.Exit(1)
		}
		jobs, err := repo.Production()
		if err != nil {
			fmt.Printf("Read production snapshot: %v\n", err)
			os.Exit(1)
		}

		dir := reportsDir
		if dir == "" {
			dir = config.AppConfig.ReportsDir
		}
		paths, err := report.WriteAll(dir, report.All(items, orders, jobs))
		if err != nil {
			fmt.Printf("Report generation failed: %v\n", err)
			os.Exit(1)
		}
		for _, p := range paths {
			fmt.Printf("  wrote %s\n", p)
		}
	},
}

func init() {
	reportsCmd.Flags().StringVar(&reportsDir, "reports-dir", "", "Output directory for report workbooks")
	rootCmd.AddCommand(reportsCmd)
}
