package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	entity "sterileops/model/entity"
)

func snapshotDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func TestReplaceAll_RoundTrip(t *testing.T) {
	repo := NewSnapshotRepository(snapshotDB(t))

	items := []entity.InventoryItem{
		{PartID: "P1", Description: "Bone screw", StockQuantity: 10, UnitCost: decimal.NewFromFloat(5), TotalValue: decimal.NewFromFloat(50), ReorderPoint: 3, ReorderStatus: entity.ReorderOK},
	}
	orders := []entity.ProcurementOrder{
		{POID: "PO1", Supplier: "Acme", OrderStatus: "Delivered", Compliance: "Yes"},
	}
	jobs := []entity.ProductionJob{
		{JobID: "J1", MachineID: "M1", WIPStep: "Cleaning", DelayStatus: entity.StatusOnTime, PartID: "P1"},
	}

	if err := repo.ReplaceAll(items, orders, jobs); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	gotItems, err := repo.Inventory()
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	if len(gotItems) != 1 || gotItems[0].PartID != "P1" {
		t.Fatalf("Inventory = %+v", gotItems)
	}
	if gotItems[0].TotalValue.InexactFloat64() != 50.0 {
		t.Errorf("TotalValue = %v, want 50", gotItems[0].TotalValue)
	}

	gotOrders, err := repo.Procurement()
	if err != nil {
		t.Fatalf("Procurement: %v", err)
	}
	if len(gotOrders) != 1 || gotOrders[0].POID != "PO1" {
		t.Fatalf("Procurement = %+v", gotOrders)
	}

	gotJobs, err := repo.Production()
	if err != nil {
		t.Fatalf("Production: %v", err)
	}
	if len(gotJobs) != 1 || gotJobs[0].PartID != "P1" {
		t.Fatalf("Production = %+v", gotJobs)
	}
}

func TestReplaceAll_ReplacesPreviousSnapshot(t *testing.T) {
	repo := NewSnapshotRepository(snapshotDB(t))

	first := []entity.InventoryItem{{PartID: "OLD1"}, {PartID: "OLD2"}}
	if err := repo.ReplaceAll(first, nil, nil); err != nil {
		t.Fatalf("first ReplaceAll: %v", err)
	}

	second := []entity.InventoryItem{{PartID: "NEW1"}}
	if err := repo.ReplaceAll(second, nil, nil); err != nil {
		t.Fatalf("second ReplaceAll: %v", err)
	}

	items, err := repo.Inventory()
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	if len(items) != 1 || items[0].PartID != "NEW1" {
		t.Errorf("after replace got %+v, want only NEW1", items)
	}
}

func TestReplaceAll_EmptyTables(t *testing.T) {
	repo := NewSnapshotRepository(snapshotDB(t))

	if err := repo.ReplaceAll(nil, nil, nil); err != nil {
		t.Fatalf("ReplaceAll with empty tables: %v", err)
	}
	items, err := repo.Inventory()
	if err != nil {
		t.Fatalf("Inventory after empty replace: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Inventory = %+v, want empty", items)
	}
}

func TestInventory_PreservesInsertionOrder(t *testing.T) {
	repo := NewSnapshotRepository(snapshotDB(t))

	// Deliberately not sorted by primary key
	items := []entity.InventoryItem{{PartID: "Z9"}, {PartID: "A1"}, {PartID: "M5"}}
	if err := repo.ReplaceAll(items, nil, nil); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	got, err := repo.Inventory()
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	want := []string{"Z9", "A1", "M5"}
	for i, w := range want {
		if got[i].PartID != w {
			t.Errorf("got[%d] = %q, want %q (source order)", i, got[i].PartID, w)
		}
	}
}
