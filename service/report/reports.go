package report

import (
	"sort"

	entity "sterileops/model/entity"
)

// Row limits carried over from the original report definitions.
const (
	batchRecommendationLimit = 20
	workQueueLimit           = 10
)

// ProductionSchedule lists every job's schedule columns plus a short queue of
// pending jobs recommended for the next batch.
func ProductionSchedule(jobs []entity.ProductionJob) Report {
	sched := Section{
		Name:    "Schedule",
		Columns: []string{"Job_ID", "Part_ID", "WIP_Step", "Scheduled_Start", "Scheduled_End", "Delay_Status"},
	}
	for _, j := range jobs {
		sched.Rows = append(sched.Rows, Row{
			j.JobID, j.PartID, j.WIPStep,
			fmtDateTime(j.ScheduledStart), fmtDateTime(j.ScheduledEnd),
			j.DelayStatus,
		})
	}

	recs := Section{Name: "Batch_Recommendations", Columns: productionColumns}
	for _, j := range jobs {
		if j.JobStatus == entity.JobStatusPending {
			recs.Rows = append(recs.Rows, productionRow(j))
		}
	}
	recs.Rows = head(recs.Rows, batchRecommendationLimit)

	return Report{Name: "Production_Schedule", Sections: []Section{sched, recs}}
}

// LotStatusTracker lists every job's status columns sorted by job then stage.
func LotStatusTracker(jobs []entity.ProductionJob) Report {
	sorted := make([]entity.ProductionJob, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, k int) bool {
		if sorted[i].JobID != sorted[k].JobID {
			return sorted[i].JobID < sorted[k].JobID
		}
		return sorted[i].WIPStep < sorted[k].WIPStep
	})

	tracker := Section{
		Name:    "Lot_Tracker",
		Columns: []string{"Job_ID", "Part_ID", "WIP_Step", "Job_Status", "Delay_Hours"},
	}
	for _, j := range sorted {
		tracker.Rows = append(tracker.Rows, Row{
			j.JobID, j.PartID, j.WIPStep, j.JobStatus, fmtFloatPtr(j.DelayHours),
		})
	}
	return Report{Name: "Lot_Status_Tracker", Sections: []Section{tracker}}
}

// PODiscrepancies lists flagged orders plus the first ten as a work queue.
func PODiscrepancies(orders []entity.ProcurementOrder) Report {
	issues := Section{Name: "Discrepancies", Columns: procurementColumns}
	for _, o := range orders {
		if o.DiscrepancyFlag {
			issues.Rows = append(issues.Rows, procurementRow(o))
		}
	}
	queue := Section{
		Name:    "Work_Queue",
		Columns: procurementColumns,
		Rows:    head(issues.Rows, workQueueLimit),
	}
	return Report{Name: "PO_Discrepancies", Sections: []Section{issues, queue}}
}

// InventoryMaster lists every item plus the reorder list of items at or
// below their reorder point.
func InventoryMaster(items []entity.InventoryItem) Report {
	cols := []string{"Part_ID", "Description", "Category", "Stock_Quantity", "Reorder_Point", "Reorder_Status", "Total_Value"}
	master := Section{Name: "Master_List", Columns: cols}
	reorder := Section{Name: "Reorder_List", Columns: cols}
	for _, it := range items {
		row := Row{
			it.PartID, it.Description, it.Category, it.StockQuantity,
			it.ReorderPoint, it.ReorderStatus, it.TotalValue.InexactFloat64(),
		}
		master.Rows = append(master.Rows, row)
		if it.StockQuantity <= float64(it.ReorderPoint) {
			reorder.Rows = append(reorder.Rows, row)
		}
	}
	return Report{Name: "Inventory_Master", Sections: []Section{master, reorder}}
}

// ComplianceReport lists non-compliant orders and quarantined (failed) jobs.
func ComplianceReport(orders []entity.ProcurementOrder, jobs []entity.ProductionJob) Report {
	nonCompliant := Section{Name: "Non_Compliant_POs", Columns: procurementColumns}
	for _, o := range orders {
		if o.Compliance == "No" {
			nonCompliant.Rows = append(nonCompliant.Rows, procurementRow(o))
		}
	}
	quarantined := Section{Name: "Quarantined_Lots", Columns: productionColumns}
	for _, j := range jobs {
		if j.JobStatus == entity.JobStatusFailed {
			quarantined.Rows = append(quarantined.Rows, productionRow(j))
		}
	}
	return Report{Name: "Compliance_Report", Sections: []Section{nonCompliant, quarantined}}
}

// All assembles the five standard reports over the canonical tables.
func All(items []entity.InventoryItem, orders []entity.ProcurementOrder, jobs []entity.ProductionJob) []Report {
	return []Report{
		ProductionSchedule(jobs),
		LotStatusTracker(jobs),
		PODiscrepancies(orders),
		InventoryMaster(items),
		ComplianceReport(orders, jobs),
	}
}
