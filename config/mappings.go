package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// MappingConfig carries the declarative rename tables for the three source
// domains plus the operation-to-WIP-stage map. Kept as data, not code, so
// source column drift is a config change rather than a transform change.
type MappingConfig struct {
	Inventory   map[string]string `mapstructure:"inventory"`
	Procurement map[string]string `mapstructure:"procurement"`
	Production  map[string]string `mapstructure:"production"`
	StageMap    map[string]string `mapstructure:"stage_map"`
}

var (
	mappings     *MappingConfig
	mappingsOnce sync.Once
)

// defaultMappings mirrors the raw column names of the three shipped datasets.
func defaultMappings() *MappingConfig {
	return &MappingConfig{
		Inventory: map[string]string{
			"Part No.":                   "Part_ID",
			"Part Description":           "Description",
			"Current Stock Level":        "Stock_Quantity",
			"Brand":                      "Supplier",
			"Model":                      "Category",
			"Location":                   "Bin_Location",
			"Minimum Price Per Nos (RM)": "Unit_Cost",
		},
		Procurement: map[string]string{
			"PO_ID":           "PO_ID",
			"Supplier":        "Supplier",
			"Order_Date":      "Order_Date",
			"Delivery_Date":   "Delivery_Date",
			"Order_Status":    "Order_Status",
			"Item_Category":   "Item_Category",
			"Defective_Units": "Defective_Units",
			"Compliance":      "Compliance",
		},
		Production: map[string]string{
			"Job_ID":          "Job_ID",
			"Machine_ID":      "Machine_ID",
			"Operation_Type":  "Operation_Type",
			"Job_Status":      "Job_Status",
			"Processing_Time": "Processing_Time",
			"Scheduled_Start": "Scheduled_Start",
			"Scheduled_End":   "Scheduled_End",
			"Actual_Start":    "Actual_Start",
			"Actual_End":      "Actual_End",
		},
		StageMap: map[string]string{
			"Grinding":        "Cleaning",
			"Lathe":           "Packing",
			"Milling":         "Sterilization",
			"Drilling":        "Inspection",
			"Additive":        "Release",
			"Quality Control": "QC",
		},
	}
}

// Mappings returns the active mapping config. When MAPPINGS_FILE points at a
// JSON document its entries replace the corresponding default tables.
func Mappings() *MappingConfig {
	mappingsOnce.Do(func() {
		mappings = defaultMappings()
		path := os.Getenv("MAPPINGS_FILE")
		if path == "" {
			return
		}
		override, err := loadMappingsFile(path)
		if err != nil {
			GetLogger().WithField("file", path).Warnf("mapping override ignored: %v", err)
			return
		}
		if len(override.Inventory) > 0 {
			mappings.Inventory = override.Inventory
		}
		if len(override.Procurement) > 0 {
			mappings.Procurement = override.Procurement
		}
		if len(override.Production) > 0 {
			mappings.Production = override.Production
		}
		if len(override.StageMap) > 0 {
			mappings.StageMap = override.StageMap
		}
	})
	return mappings
}

func loadMappingsFile(path string) (*MappingConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mappings file: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse mappings file: %w", err)
	}
	var cfg MappingConfig
	if err := mapstructure.Decode(doc, &cfg); err != nil {
		return nil, fmt.Errorf("decode mappings file: %w", err)
	}
	return &cfg, nil
}

// ResetMappingsForTesting clears the memoized mapping config.
func ResetMappingsForTesting() {
	mappings = nil
	mappingsOnce = sync.Once{}
}
