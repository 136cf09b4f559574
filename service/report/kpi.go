package report

import (
	"sort"

	"github.com/shopspring/decimal"

	entity "sterileops/model/entity"
)

// Summary carries the executive KPI numbers read by the dashboard layer.
type Summary struct {
	TotalItems          int     `json:"total_items"`
	TotalOrders         int     `json:"total_orders"`
	TotalJobs           int     `json:"total_jobs"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	ItemsToReorder      int     `json:"items_to_reorder"`
	ComplianceRate      float64 `json:"compliance_rate"`
	OnTimeRate          float64 `json:"on_time_rate"`
	OpenDiscrepancies   int     `json:"open_discrepancies"`
}

// Summarize computes the KPI summary over already-derived canonical tables.
func Summarize(items []entity.InventoryItem, orders []entity.ProcurementOrder, jobs []entity.ProductionJob) Summary {
	s := Summary{
		TotalItems:  len(items),
		TotalOrders: len(orders),
		TotalJobs:   len(jobs),
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalValue)
		if it.ReorderStatus == entity.ReorderNow {
			s.ItemsToReorder++
		}
	}
	s.TotalInventoryValue = total.InexactFloat64()

	compliant := 0
	for _, o := range orders {
		if o.Compliance == "Yes" {
			compliant++
		}
		if o.DiscrepancyFlag {
			s.OpenDiscrepancies++
		}
	}
	if len(orders) > 0 {
		s.ComplianceRate = float64(compliant) / float64(len(orders)) * 100
	}

	onTime := 0
	for _, j := range jobs {
		if j.DelayStatus == entity.StatusOnTime {
			onTime++
		}
	}
	if len(jobs) > 0 {
		s.OnTimeRate = float64(onTime) / float64(len(jobs)) * 100
	}
	return s
}

// ABC classification thresholds (cumulative share of total value).
const (
	abcClassACutoff = 80.0
	abcClassBCutoff = 95.0
)

// ABCItem is one inventory item with its Pareto classification.
type ABCItem struct {
	PartID            string  `json:"part_id"`
	Description       string  `json:"description"`
	StockQuantity     float64 `json:"stock_quantity"`
	TotalValue        float64 `json:"total_value"`
	CumulativePercent float64 `json:"cumulative_percent"`
	Class             string  `json:"class"`
}

// ClassifyABC ranks items by value and assigns Pareto classes: A covers the
// first 80% of cumulative value, B up to 95%, C the rest. With zero total
// value everything lands in C.
func ClassifyABC(items []entity.InventoryItem) []ABCItem {
	ranked := make([]ABCItem, len(items))
	for i, it := range items {
		ranked[i] = ABCItem{
			PartID:        it.PartID,
			Description:   it.Description,
			StockQuantity: it.StockQuantity,
			TotalValue:    it.TotalValue.InexactFloat64(),
		}
	}
	sort.SliceStable(ranked, func(i, k int) bool {
		return ranked[i].TotalValue > ranked[k].TotalValue
	})

	var grandTotal float64
	for _, r := range ranked {
		grandTotal += r.TotalValue
	}

	var running float64
	for i := range ranked {
		running += ranked[i].TotalValue
		if grandTotal > 0 {
			ranked[i].CumulativePercent = running / grandTotal * 100
		}
		switch {
		case grandTotal > 0 && ranked[i].CumulativePercent <= abcClassACutoff:
			ranked[i].Class = "A"
		case grandTotal > 0 && ranked[i].CumulativePercent <= abcClassBCutoff:
			ranked[i].Class = "B"
		default:
			ranked[i].Class = "C"
		}
	}
	return ranked
}
