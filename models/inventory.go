package models

import "time"

// Product represents products table
type Product struct {
	ProductID     uint   `gorm:"primaryKey;column:product_id" json:"product_id"`
	SKU           string `gorm:"type:varchar(40);not null;unique;column:sku" json:"sku"`
	Name          string `gorm:"type:varchar(200);not null" json:"name"`
	Category      string `gorm:"type:varchar(50);not null" json:"category"`
	ShelfLifeDays *int   `gorm:"check:shelf_life_days >= 0" json:"shelf_life_days,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// Location represents locations table. Locations form a tree within a
// warehouse (zones parent aisles); the single DOCK location per warehouse
// is the staging node for every receipt and issue.
type Location struct {
	LocationID       uint         `gorm:"primaryKey;column:location_id" json:"location_id"`
	WarehouseID      uint         `gorm:"not null" json:"warehouse_id"`
	ParentLocationID *uint        `json:"parent_location_id,omitempty"`
	Code             string       `gorm:"type:varchar(100);not null" json:"code"`
	Type             LocationType `gorm:"type:varchar(20);not null" json:"type"`
	CapacityUnits    int          `gorm:"not null;check:capacity_units >= 0" json:"capacity_units"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Warehouse Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}

// InventoryBalance represents inventory_balances table. Rows are created
// lazily on first receipt and mutated only by the inventory ledger.
type InventoryBalance struct {
	BalanceID     uint          `gorm:"primaryKey;column:balance_id" json:"balance_id"`
	ProductID     uint          `gorm:"not null;uniqueIndex:uniq_product_location" json:"product_id"`
	LocationID    uint          `gorm:"not null;uniqueIndex:uniq_product_location" json:"location_id"`
	OnHand        float64       `gorm:"not null;default:0;check:on_hand >= 0" json:"on_hand"`
	Reserved      float64       `gorm:"not null;default:0;check:reserved >= 0" json:"reserved"`
	LastCountAt   *time.Time    `json:"last_count_at,omitempty"`
	QualityStatus QualityStatus `gorm:"type:varchar(20);not null;default:'ok'" json:"quality_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// TableName specifies the table name for InventoryBalance
func (InventoryBalance) TableName() string {
	return "inventory_balances"
}

// InventoryMove represents inventory_moves table. Moves are append-only:
// every balance delta is backed by exactly one move of equal magnitude.
type InventoryMove struct {
	MoveID         uint      `gorm:"primaryKey;column:move_id" json:"move_id"`
	ProductID      uint      `gorm:"not null" json:"product_id"`
	FromLocationID *uint     `json:"from_location_id,omitempty"`
	ToLocationID   *uint     `json:"to_location_id,omitempty"`
	MoveType       MoveType  `gorm:"type:varchar(20);not null" json:"move_type"`
	Qty            float64   `gorm:"not null;check:qty > 0" json:"qty"`
	OccurredAt     time.Time `gorm:"not null" json:"occurred_at"`
	ReasonCode     *string   `gorm:"type:varchar(50)" json:"reason_code,omitempty"`
	RefID          *uint     `json:"ref_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for InventoryMove
func (InventoryMove) TableName() string {
	return "inventory_moves"
}
