package etl

import (
	"math"

	"github.com/shopspring/decimal"

	entity "sterileops/model/entity"
)

// DefaultReorderRatio is the reorder threshold as a fraction of current
// stock. A heuristic snapshot, not a demand forecast: the point is computed
// once per run from the stock level at that time.
const DefaultReorderRatio = 0.3

// DeriveInventory appends valuation and reorder fields to each item. Pure
// function of the canonical fields; safe to run repeatedly.
func DeriveInventory(items []entity.InventoryItem, ratio float64) {
	if ratio <= 0 {
		ratio = DefaultReorderRatio
	}
	for i := range items {
		qty := items[i].StockQuantity
		items[i].TotalValue = decimal.NewFromFloat(qty).Mul(items[i].UnitCost)
		items[i].ReorderPoint = int(math.Floor(qty * ratio))
		if qty <= float64(items[i].ReorderPoint) {
			items[i].ReorderStatus = entity.ReorderNow
		} else {
			items[i].ReorderStatus = entity.ReorderOK
		}
	}
}

// DeriveProcurement appends the discrepancy flag and delivery lead time.
// Null dates propagate: DaysToDeliver stays nil rather than defaulting.
func DeriveProcurement(orders []entity.ProcurementOrder) {
	for i := range orders {
		o := &orders[i]
		o.DiscrepancyFlag = o.DefectiveUnits > 0 || o.OrderStatus != entity.OrderStatusDelivered
		if o.OrderDate != nil && o.DeliveryDate != nil {
			days := int(math.Floor(o.DeliveryDate.Sub(*o.OrderDate).Hours() / 24))
			o.DaysToDeliver = &days
		} else {
			o.DaysToDeliver = nil
		}
	}
}

// DeriveProduction appends the WIP stage and delay fields. Unknown operation
// types keep their own name as the stage (identity fallback). A job missing
// either end timestamp gets DelayStatus Unknown instead of inheriting a
// null-comparison default.
func DeriveProduction(jobs []entity.ProductionJob, stageMap map[string]string) {
	for i := range jobs {
		j := &jobs[i]
		if step, ok := stageMap[j.OperationType]; ok {
			j.WIPStep = step
		} else {
			j.WIPStep = j.OperationType
		}
		if j.ActualEnd != nil && j.ScheduledEnd != nil {
			hours := j.ActualEnd.Sub(*j.ScheduledEnd).Hours()
			j.DelayHours = &hours
			if hours > 0 {
				j.DelayStatus = entity.StatusDelayed
			} else {
				j.DelayStatus = entity.StatusOnTime
			}
		} else {
			j.DelayHours = nil
			j.DelayStatus = entity.StatusUnknown
		}
	}
}
