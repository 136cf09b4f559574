package entity

import "time"

// ProcurementOrder is one canonical purchase-order row in the `procurement`
// table. DaysToDeliver and DiscrepancyFlag are derived; a nil DaysToDeliver
// means at least one of the two dates failed to parse.
type ProcurementOrder struct {
	POID            string     `gorm:"column:PO_ID;primaryKey" json:"po_id"`
	Supplier        string     `gorm:"column:Supplier" json:"supplier"`
	OrderDate       *time.Time `gorm:"column:Order_Date" json:"order_date"`
	DeliveryDate    *time.Time `gorm:"column:Delivery_Date" json:"delivery_date"`
	OrderStatus     string     `gorm:"column:Order_Status" json:"order_status"`
	ItemCategory    string     `gorm:"column:Item_Category" json:"item_category"`
	DefectiveUnits  int        `gorm:"column:Defective_Units;not null;default:0" json:"defective_units"`
	Compliance      string     `gorm:"column:Compliance" json:"compliance"`
	DaysToDeliver   *int       `gorm:"column:Days_To_Deliver" json:"days_to_deliver"`
	DiscrepancyFlag bool       `gorm:"column:Discrepancy_Flag;not null;default:false" json:"discrepancy_flag"`

	Extras map[string]string `gorm:"-" json:"extras,omitempty"`
}

func (ProcurementOrder) TableName() string {
	return "procurement"
}

// OrderStatusDelivered is the only order status that does not by itself flag
// a discrepancy.
const OrderStatusDelivered = "Delivered"
