package snapshot

import (
	"fmt"

	"gorm.io/gorm"

	entity "sterileops/model/entity"
)

// SnapshotRepository is the persistence gateway for canonical tables. The
// only write it offers is ReplaceAll: each pipeline run publishes three
// fresh snapshots or nothing at all.
type SnapshotRepository struct {
	db        *gorm.DB
	batchSize int
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db, batchSize: 500}
}

// ReplaceAll atomically swaps the full contents of the inventory, procurement
// and production tables. Runs in a single transaction so a failure midway
// leaves the previous snapshot intact.
func (r *SnapshotRepository) ReplaceAll(inv []entity.InventoryItem, proc []entity.ProcurementOrder, prod []entity.ProductionJob) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := replaceTable(tx, &entity.InventoryItem{}, inv, r.batchSize); err != nil {
			return fmt.Errorf("replace inventory: %w", err)
		}
		if err := replaceTable(tx, &entity.ProcurementOrder{}, proc, r.batchSize); err != nil {
			return fmt.Errorf("replace procurement: %w", err)
		}
		if err := replaceTable(tx, &entity.ProductionJob{}, prod, r.batchSize); err != nil {
			return fmt.Errorf("replace production: %w", err)
		}
		return nil
	})
}

func replaceTable[T any](tx *gorm.DB, model *T, rows []T, batchSize int) error {
	if tx.Migrator().HasTable(model) {
		if err := tx.Migrator().DropTable(model); err != nil {
			return err
		}
	}
	if err := tx.AutoMigrate(model); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, batchSize).Error
}

// Inventory returns the inventory snapshot in insertion (source) order.
func (r *SnapshotRepository) Inventory() ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.Order("rowid").Find(&items).Error
	return items, err
}

// Procurement returns the procurement snapshot in insertion (source) order.
func (r *SnapshotRepository) Procurement() ([]entity.ProcurementOrder, error) {
	var orders []entity.ProcurementOrder
	err := r.db.Order("rowid").Find(&orders).Error
	return orders, err
}

// Production returns the production snapshot in insertion (source) order.
func (r *SnapshotRepository) Production() ([]entity.ProductionJob, error) {
	var jobs []entity.ProductionJob
	err := r.db.Order("rowid").Find(&jobs).Error
	return jobs, err
}
