package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName    string
	Port       string
	Env        string
	Debug      bool
	DBPath     string
	ReportsDir string

	// Source files, one per domain
	InventorySource   string
	ProcurementSource string
	ProductionSource  string

	// Reorder threshold as a fraction of current stock
	ReorderRatio float64

	// Part assignment for production jobs: random, roundrobin or hash
	LinkerStrategy string
	LinkerSeed     int64

	// Optional JSON file overriding the built-in column mappings
	MappingsFile string
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		ratio := 0.3
		if v := os.Getenv("REORDER_RATIO"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				ratio = f
			}
		}
		var seed int64
		if v := os.Getenv("LINKER_SEED"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				seed = n
			}
		}
		AppConfig = &Config{
			AppName:           envOr("APP_NAME", "sterileops"),
			Port:              os.Getenv("PORT"),
			Env:               os.Getenv("APP_ENV"),
			Debug:             os.Getenv("DEBUG") == "true",
			DBPath:            envOr("DB_PATH", "sterileops.db"),
			ReportsDir:        envOr("REPORTS_DIR", "reports"),
			InventorySource:   envOr("SOURCE_INVENTORY", "Dataset/spare_part_inventories.xlsx"),
			ProcurementSource: envOr("SOURCE_PROCUREMENT", "Dataset/procurement_kpi.csv"),
			ProductionSource:  envOr("SOURCE_PRODUCTION", "Dataset/hybrid_manufacturing.csv"),
			ReorderRatio:      ratio,
			LinkerStrategy:    envOr("LINKER_STRATEGY", "random"),
			LinkerSeed:        seed,
			MappingsFile:      os.Getenv("MAPPINGS_FILE"),
		}
	})
}
