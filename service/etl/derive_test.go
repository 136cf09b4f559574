package etl

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	entity "sterileops/model/entity"
)

func mkTime(t *testing.T, s string) *time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return &ts
}

func TestDeriveInventory_Valuation(t *testing.T) {
	items := []entity.InventoryItem{
		{PartID: "P1", StockQuantity: 10, UnitCost: decimal.NewFromFloat(5.0)},
	}
	DeriveInventory(items, 0.3)

	if got := items[0].TotalValue.InexactFloat64(); got != 50.0 {
		t.Errorf("TotalValue = %v, want 50.0", got)
	}
	if items[0].ReorderPoint != 3 {
		t.Errorf("ReorderPoint = %d, want 3", items[0].ReorderPoint)
	}
	if items[0].ReorderStatus != entity.ReorderOK {
		t.Errorf("ReorderStatus = %q, want OK", items[0].ReorderStatus)
	}
}

func TestDeriveInventory_DecimalCost(t *testing.T) {
	items := []entity.InventoryItem{
		{PartID: "P1", StockQuantity: 3, UnitCost: decimal.RequireFromString("19.99")},
	}
	DeriveInventory(items, 0.3)
	if got := items[0].TotalValue.String(); got != "59.97" {
		t.Errorf("TotalValue = %s, want 59.97", got)
	}
}

func TestDeriveInventory_ReorderStatus(t *testing.T) {
	tests := []struct {
		qty       float64
		ratio     float64
		wantPoint int
		want      string
	}{
		{0, 0.3, 0, entity.ReorderNow}, // 0 <= floor(0) flags reorder
		{1, 0.3, 0, entity.ReorderOK},
		{10, 0.3, 3, entity.ReorderOK},
		{0.5, 0.3, 0, entity.ReorderOK},
		{10, 1.0, 10, entity.ReorderNow}, // floor drives point up to stock
	}
	for _, tt := range tests {
		items := []entity.InventoryItem{{PartID: "P1", StockQuantity: tt.qty}}
		DeriveInventory(items, tt.ratio)
		if items[0].ReorderPoint != tt.wantPoint {
			t.Errorf("qty=%v ratio=%v: ReorderPoint = %d, want %d", tt.qty, tt.ratio, items[0].ReorderPoint, tt.wantPoint)
		}
		if items[0].ReorderStatus != tt.want {
			t.Errorf("qty=%v ratio=%v: ReorderStatus = %q, want %q", tt.qty, tt.ratio, items[0].ReorderStatus, tt.want)
		}
	}
}

func TestDeriveProcurement_DiscrepancyFlag(t *testing.T) {
	tests := []struct {
		defective int
		status    string
		want      bool
	}{
		{0, "Delivered", false},
		{0, "Pending", true},
		{5, "Delivered", true},
		{5, "Pending", true},
	}
	for _, tt := range tests {
		orders := []entity.ProcurementOrder{{POID: "PO1", DefectiveUnits: tt.defective, OrderStatus: tt.status}}
		DeriveProcurement(orders)
		if orders[0].DiscrepancyFlag != tt.want {
			t.Errorf("defective=%d status=%q: DiscrepancyFlag = %v, want %v", tt.defective, tt.status, orders[0].DiscrepancyFlag, tt.want)
		}
	}
}

func TestDeriveProcurement_DaysToDeliver(t *testing.T) {
	orders := []entity.ProcurementOrder{
		{POID: "PO1", OrderDate: mkTime(t, "2026-01-01 00:00:00"), DeliveryDate: mkTime(t, "2026-01-08 00:00:00")},
		{POID: "PO2", OrderDate: nil, DeliveryDate: mkTime(t, "2026-01-08 00:00:00")},
		{POID: "PO3", OrderDate: mkTime(t, "2026-01-01 00:00:00"), DeliveryDate: nil},
	}
	DeriveProcurement(orders)

	if orders[0].DaysToDeliver == nil || *orders[0].DaysToDeliver != 7 {
		t.Errorf("PO1 DaysToDeliver = %v, want 7", orders[0].DaysToDeliver)
	}
	if orders[1].DaysToDeliver != nil {
		t.Errorf("PO2 DaysToDeliver = %v, want nil", *orders[1].DaysToDeliver)
	}
	if orders[2].DaysToDeliver != nil {
		t.Errorf("PO3 DaysToDeliver = %v, want nil", *orders[2].DaysToDeliver)
	}
}

var testStageMap = map[string]string{
	"Grinding":        "Cleaning",
	"Lathe":           "Packing",
	"Milling":         "Sterilization",
	"Drilling":        "Inspection",
	"Additive":        "Release",
	"Quality Control": "QC",
}

func TestDeriveProduction_WIPStep(t *testing.T) {
	jobs := []entity.ProductionJob{
		{JobID: "J1", OperationType: "Grinding"},
		{JobID: "J2", OperationType: "Quality Control"},
		{JobID: "J3", OperationType: "Unknown Op"},
	}
	DeriveProduction(jobs, testStageMap)

	if jobs[0].WIPStep != "Cleaning" {
		t.Errorf("Grinding WIPStep = %q, want Cleaning", jobs[0].WIPStep)
	}
	if jobs[1].WIPStep != "QC" {
		t.Errorf("Quality Control WIPStep = %q, want QC", jobs[1].WIPStep)
	}
	// Unmapped operation types pass through unchanged
	if jobs[2].WIPStep != "Unknown Op" {
		t.Errorf("Unknown Op WIPStep = %q, want Unknown Op", jobs[2].WIPStep)
	}
}

func TestDeriveProduction_Delay(t *testing.T) {
	jobs := []entity.ProductionJob{
		{JobID: "J1", ScheduledEnd: mkTime(t, "2026-01-01 10:00:00"), ActualEnd: mkTime(t, "2026-01-01 13:30:00")},
		{JobID: "J2", ScheduledEnd: mkTime(t, "2026-01-01 10:00:00"), ActualEnd: mkTime(t, "2026-01-01 10:00:00")},
		{JobID: "J3", ScheduledEnd: mkTime(t, "2026-01-01 10:00:00"), ActualEnd: mkTime(t, "2026-01-01 08:00:00")},
		{JobID: "J4", ScheduledEnd: nil, ActualEnd: mkTime(t, "2026-01-01 10:00:00")},
		{JobID: "J5", ScheduledEnd: mkTime(t, "2026-01-01 10:00:00"), ActualEnd: nil},
	}
	DeriveProduction(jobs, testStageMap)

	if jobs[0].DelayHours == nil || *jobs[0].DelayHours != 3.5 {
		t.Errorf("J1 DelayHours = %v, want 3.5", jobs[0].DelayHours)
	}
	if jobs[0].DelayStatus != entity.StatusDelayed {
		t.Errorf("J1 DelayStatus = %q, want Delayed", jobs[0].DelayStatus)
	}
	if jobs[1].DelayStatus != entity.StatusOnTime {
		t.Errorf("J2 (zero delay) DelayStatus = %q, want On Time", jobs[1].DelayStatus)
	}
	if jobs[2].DelayStatus != entity.StatusOnTime {
		t.Errorf("J3 (early) DelayStatus = %q, want On Time", jobs[2].DelayStatus)
	}
	for _, j := range jobs[3:] {
		if j.DelayHours != nil {
			t.Errorf("%s DelayHours = %v, want nil", j.JobID, *j.DelayHours)
		}
		if j.DelayStatus != entity.StatusUnknown {
			t.Errorf("%s DelayStatus = %q, want Unknown", j.JobID, j.DelayStatus)
		}
	}
}

func TestDerive_Idempotent(t *testing.T) {
	items := []entity.InventoryItem{
		{PartID: "P1", StockQuantity: 10, UnitCost: decimal.NewFromFloat(5)},
		{PartID: "P2", StockQuantity: 0, UnitCost: decimal.NewFromFloat(2.5)},
	}
	orders := []entity.ProcurementOrder{
		{POID: "PO1", DefectiveUnits: 1, OrderStatus: "Delivered", OrderDate: mkTime(t, "2026-01-01 00:00:00"), DeliveryDate: mkTime(t, "2026-01-03 00:00:00")},
	}
	jobs := []entity.ProductionJob{
		{JobID: "J1", OperationType: "Lathe", ScheduledEnd: mkTime(t, "2026-01-01 10:00:00"), ActualEnd: mkTime(t, "2026-01-01 12:00:00")},
	}

	DeriveInventory(items, 0.3)
	DeriveProcurement(orders)
	DeriveProduction(jobs, testStageMap)

	itemsAgain := make([]entity.InventoryItem, len(items))
	ordersAgain := make([]entity.ProcurementOrder, len(orders))
	jobsAgain := make([]entity.ProductionJob, len(jobs))
	copy(itemsAgain, items)
	copy(ordersAgain, orders)
	copy(jobsAgain, jobs)

	DeriveInventory(itemsAgain, 0.3)
	DeriveProcurement(ordersAgain)
	DeriveProduction(jobsAgain, testStageMap)

	if !reflect.DeepEqual(items, itemsAgain) {
		t.Error("DeriveInventory is not idempotent")
	}
	if !reflect.DeepEqual(orders, ordersAgain) {
		t.Error("DeriveProcurement is not idempotent")
	}
	if !reflect.DeepEqual(jobs, jobsAgain) {
		t.Error("DeriveProduction is not idempotent")
	}
}
