package custom

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"sterileops/api"
	"sterileops/cmd"
	"sterileops/config"
	"sterileops/service/etl"
)

func init() {
	// CLI command: print the header and first rows of each configured source,
	// handy when checking column drift before touching the mappings
	cmd.Register(&cobra.Command{
		Use:   "sources:peek",
		Short: "Print headers and sample rows of the configured source files",
		Run: func(c *cobra.Command, args []string) {
			config.LoadAppConfig()
			cfg := config.AppConfig
			peek("inventory", cfg.InventorySource, etl.LoadXLSX)
			peek("procurement", cfg.ProcurementSource, etl.LoadCSV)
			peek("production", cfg.ProductionSource, etl.LoadCSV)
		},
	})

	// HTTP route
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}

func peek(domain, path string, load func(string) (*etl.RawTable, error)) {
	fmt.Printf("--- %s (%s) ---\n", domain, path)
	t, err := load(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		return
	}
	fmt.Println(t.Headers)
	for i, row := range t.Rows {
		if i >= 2 {
			break
		}
		fmt.Println(row)
	}
	fmt.Println()
}
