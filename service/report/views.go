package report

import (
	"time"

	entity "sterileops/model/entity"
)

// Row is one rendered report row.
type Row []interface{}

// Section is a named sheet's worth of rows: a projection (and optional
// filter/sort/head) over one canonical table. No new derivation happens here.
type Section struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Report is one output artifact: a named workbook with one or more sections.
type Report struct {
	Name     string
	Sections []Section
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

func fmtDate(t *time.Time) interface{} {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func fmtDateTime(t *time.Time) interface{} {
	if t == nil {
		return ""
	}
	return t.Format(dateTimeLayout)
}

func fmtFloatPtr(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}

func fmtIntPtr(i *int) interface{} {
	if i == nil {
		return ""
	}
	return *i
}

func head(rows []Row, n int) []Row {
	if len(rows) <= n {
		return rows
	}
	return rows[:n]
}

// Full canonical column lists, used by sections that export a whole table.
var (
	procurementColumns = []string{
		"PO_ID", "Supplier", "Order_Date", "Delivery_Date", "Order_Status",
		"Item_Category", "Defective_Units", "Compliance", "Days_To_Deliver",
		"Discrepancy_Flag",
	}
	productionColumns = []string{
		"Job_ID", "Machine_ID", "Operation_Type", "Job_Status",
		"Processing_Time", "Scheduled_Start", "Scheduled_End", "Actual_Start",
		"Actual_End", "WIP_Step", "Delay_Hours", "Delay_Status", "Part_ID",
	}
)

func procurementRow(o entity.ProcurementOrder) Row {
	return Row{
		o.POID, o.Supplier, fmtDate(o.OrderDate), fmtDate(o.DeliveryDate),
		o.OrderStatus, o.ItemCategory, o.DefectiveUnits, o.Compliance,
		fmtIntPtr(o.DaysToDeliver), o.DiscrepancyFlag,
	}
}

func productionRow(j entity.ProductionJob) Row {
	return Row{
		j.JobID, j.MachineID, j.OperationType, j.JobStatus, j.ProcessingTime,
		fmtDateTime(j.ScheduledStart), fmtDateTime(j.ScheduledEnd),
		fmtDateTime(j.ActualStart), fmtDateTime(j.ActualEnd),
		j.WIPStep, fmtFloatPtr(j.DelayHours), j.DelayStatus, j.PartID,
	}
}
