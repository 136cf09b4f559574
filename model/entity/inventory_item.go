package entity

import (
	"github.com/shopspring/decimal"
)

// InventoryItem is one canonical spare-part row in the `inventory` table.
// TotalValue, ReorderPoint and ReorderStatus are derived per pipeline run and
// never carried over from a previous snapshot.
type InventoryItem struct {
	PartID        string          `gorm:"column:Part_ID;primaryKey" json:"part_id"`
	Description   string          `gorm:"column:Description" json:"description"`
	Category      string          `gorm:"column:Category" json:"category"`
	BinLocation   string          `gorm:"column:Bin_Location" json:"bin_location"`
	Supplier      string          `gorm:"column:Supplier" json:"supplier"`
	StockQuantity float64         `gorm:"column:Stock_Quantity;not null;default:0" json:"stock_quantity"`
	UnitCost      decimal.Decimal `gorm:"column:Unit_Cost;type:decimal(12,4);not null;default:0" json:"unit_cost"`
	TotalValue    decimal.Decimal `gorm:"column:Total_Value;type:decimal(14,4);not null;default:0" json:"total_value"`
	ReorderPoint  int             `gorm:"column:Reorder_Point;not null;default:0" json:"reorder_point"`
	ReorderStatus string          `gorm:"column:Reorder_Status" json:"reorder_status"`

	// Unmapped source columns, passed through for forward compatibility.
	// Not persisted: the snapshot tables carry the canonical schema only.
	Extras map[string]string `gorm:"-" json:"extras,omitempty"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

// Reorder status values.
const (
	ReorderNow = "Reorder Now"
	ReorderOK  = "OK"
)
