package models

import "time"

// Order represents orders table
type Order struct {
	OrderID                 uint        `gorm:"primaryKey;column:order_id" json:"order_id"`
	CustomerName            string      `gorm:"type:varchar(100);not null" json:"customer_name"`
	Status                  OrderStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	PromisedAt              *time.Time  `json:"promised_at,omitempty"`
	SLAPriority             float64     `gorm:"not null;default:0.5;check:sla_priority >= 0 AND sla_priority <= 1" json:"sla_priority"`
	RequestedShipFromRegion *string     `gorm:"type:varchar(30)" json:"requested_ship_from_region,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Lines []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderLine represents order_lines table
type OrderLine struct {
	LineID              uint    `gorm:"primaryKey;column:line_id" json:"line_id"`
	OrderID             uint    `gorm:"not null" json:"order_id"`
	ProductID           uint    `gorm:"not null" json:"product_id"`
	QtyOrdered          float64 `gorm:"not null;check:qty_ordered > 0" json:"qty_ordered"`
	QtyAllocated        float64 `gorm:"not null;default:0;check:qty_allocated >= 0" json:"qty_allocated"`
	QtyShipped          float64 `gorm:"not null;default:0;check:qty_shipped >= 0" json:"qty_shipped"`
	ServiceLevelPenalty float64 `gorm:"not null;default:0;check:service_level_penalty >= 0" json:"service_level_penalty"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for OrderLine
func (OrderLine) TableName() string {
	return "order_lines"
}

// PurchaseOrder represents purchase_orders table
type PurchaseOrder struct {
	POID                   uint       `gorm:"primaryKey;column:po_id" json:"po_id"`
	SupplierID             uint       `gorm:"not null" json:"supplier_id"`
	DestinationWarehouseID uint       `gorm:"not null" json:"destination_warehouse_id"`
	Status                 POStatus   `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	ExpectedAt             *time.Time `json:"expected_at,omitempty"`
	LeadtimeModelID        *uint      `json:"leadtime_model_id,omitempty"`
	OrderedAt              time.Time  `gorm:"not null" json:"ordered_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Supplier Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Lines    []POLine `gorm:"foreignKey:POID" json:"lines,omitempty"`
}

// TableName specifies the table name for PurchaseOrder
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// POLine represents po_lines table. QtyReceived only ever grows and never
// exceeds QtyOrdered.
type POLine struct {
	LineID      uint    `gorm:"primaryKey;column:line_id" json:"line_id"`
	POID        uint    `gorm:"not null" json:"po_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	QtyOrdered  float64 `gorm:"not null;check:qty_ordered > 0" json:"qty_ordered"`
	QtyReceived float64 `gorm:"not null;default:0;check:qty_received >= 0" json:"qty_received"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for POLine
func (POLine) TableName() string {
	return "po_lines"
}
