package etl

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	entity "sterileops/model/entity"
)

// Domain names used in quality reporting and error wrapping.
const (
	DomainInventory   = "inventory"
	DomainProcurement = "procurement"
	DomainProduction  = "production"
)

// NormalizeTable renames source headers to canonical names per the mapping
// table. Headers without a mapping entry pass through unchanged, as do their
// cells: unmapped columns are a forward-compatibility placeholder, not an
// error.
func NormalizeTable(t *RawTable, mapping map[string]string) *RawTable {
	headers := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		if canonical, ok := mapping[h]; ok {
			headers[i] = canonical
		} else {
			headers[i] = h
		}
	}
	return &RawTable{Headers: headers, Rows: t.Rows}
}

// Canonical column sets per domain; anything else lands in Extras.
var (
	inventoryColumns = map[string]bool{
		"Part_ID": true, "Description": true, "Category": true,
		"Bin_Location": true, "Supplier": true, "Stock_Quantity": true,
		"Unit_Cost": true,
	}
	procurementColumns = map[string]bool{
		"PO_ID": true, "Supplier": true, "Order_Date": true,
		"Delivery_Date": true, "Order_Status": true, "Item_Category": true,
		"Defective_Units": true, "Compliance": true,
	}
	productionColumns = map[string]bool{
		"Job_ID": true, "Machine_ID": true, "Operation_Type": true,
		"Job_Status": true, "Processing_Time": true, "Scheduled_Start": true,
		"Scheduled_End": true, "Actual_Start": true, "Actual_End": true,
	}
)

// Date layouts accepted across the three sources.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"2006/01/02",
}

// coerceFloat parses a numeric cell. An empty cell is simply missing and
// defaults silently; a non-empty cell that fails to parse defaults too but
// is recorded in the quality report.
func coerceFloat(q *QualityReport, domain, field string, row int, raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		q.Record(domain, field, row, raw)
		return 0
	}
	return v
}

func coerceInt(q *QualityReport, domain, field string, row int, raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	// Sources write integers as "3" or "3.0" depending on the exporter
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	q.Record(domain, field, row, raw)
	return 0
}

func coerceDecimal(q *QualityReport, domain, field string, row int, raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		q.Record(domain, field, row, raw)
		return decimal.Zero
	}
	return v
}

// coerceDate parses a datetime cell, returning nil for empty or unparseable
// values. Only genuinely malformed values are recorded.
func coerceDate(q *QualityReport, domain, field string, row int, raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	q.Record(domain, field, row, raw)
	return nil
}

func collectExtras(t *RawTable, row []string, idx map[string]int, known map[string]bool) map[string]string {
	var extras map[string]string
	for _, h := range t.Headers {
		if known[h] {
			continue
		}
		if extras == nil {
			extras = make(map[string]string)
		}
		extras[h] = t.Cell(row, idx, h)
	}
	return extras
}

// BuildInventory coerces a canonical inventory table into typed rows.
func BuildInventory(t *RawTable, q *QualityReport) []entity.InventoryItem {
	idx := t.ColumnIndex()
	items := make([]entity.InventoryItem, 0, len(t.Rows))
	for ri, row := range t.Rows {
		items = append(items, entity.InventoryItem{
			PartID:        strings.TrimSpace(t.Cell(row, idx, "Part_ID")),
			Description:   t.Cell(row, idx, "Description"),
			Category:      t.Cell(row, idx, "Category"),
			BinLocation:   t.Cell(row, idx, "Bin_Location"),
			Supplier:      t.Cell(row, idx, "Supplier"),
			StockQuantity: coerceFloat(q, DomainInventory, "Stock_Quantity", ri, t.Cell(row, idx, "Stock_Quantity")),
			UnitCost:      coerceDecimal(q, DomainInventory, "Unit_Cost", ri, t.Cell(row, idx, "Unit_Cost")),
			Extras:        collectExtras(t, row, idx, inventoryColumns),
		})
	}
	return items
}

// BuildProcurement coerces a canonical procurement table into typed rows.
func BuildProcurement(t *RawTable, q *QualityReport) []entity.ProcurementOrder {
	idx := t.ColumnIndex()
	orders := make([]entity.ProcurementOrder, 0, len(t.Rows))
	for ri, row := range t.Rows {
		orders = append(orders, entity.ProcurementOrder{
			POID:           strings.TrimSpace(t.Cell(row, idx, "PO_ID")),
			Supplier:       t.Cell(row, idx, "Supplier"),
			OrderDate:      coerceDate(q, DomainProcurement, "Order_Date", ri, t.Cell(row, idx, "Order_Date")),
			DeliveryDate:   coerceDate(q, DomainProcurement, "Delivery_Date", ri, t.Cell(row, idx, "Delivery_Date")),
			OrderStatus:    t.Cell(row, idx, "Order_Status"),
			ItemCategory:   t.Cell(row, idx, "Item_Category"),
			DefectiveUnits: coerceInt(q, DomainProcurement, "Defective_Units", ri, t.Cell(row, idx, "Defective_Units")),
			Compliance:     t.Cell(row, idx, "Compliance"),
			Extras:         collectExtras(t, row, idx, procurementColumns),
		})
	}
	return orders
}

// BuildProduction coerces a canonical production table into typed rows.
func BuildProduction(t *RawTable, q *QualityReport) []entity.ProductionJob {
	idx := t.ColumnIndex()
	jobs := make([]entity.ProductionJob, 0, len(t.Rows))
	for ri, row := range t.Rows {
		jobs = append(jobs, entity.ProductionJob{
			JobID:          strings.TrimSpace(t.Cell(row, idx, "Job_ID")),
			MachineID:      t.Cell(row, idx, "Machine_ID"),
			OperationType:  t.Cell(row, idx, "Operation_Type"),
			JobStatus:      t.Cell(row, idx, "Job_Status"),
			ProcessingTime: coerceFloat(q, DomainProduction, "Processing_Time", ri, t.Cell(row, idx, "Processing_Time")),
			ScheduledStart: coerceDate(q, DomainProduction, "Scheduled_Start", ri, t.Cell(row, idx, "Scheduled_Start")),
			ScheduledEnd:   coerceDate(q, DomainProduction, "Scheduled_End", ri, t.Cell(row, idx, "Scheduled_End")),
			ActualStart:    coerceDate(q, DomainProduction, "Actual_Start", ri, t.Cell(row, idx, "Actual_Start")),
			ActualEnd:      coerceDate(q, DomainProduction, "Actual_End", ri, t.Cell(row, idx, "Actual_End")),
			Extras:         collectExtras(t, row, idx, productionColumns),
		})
	}
	return jobs
}
