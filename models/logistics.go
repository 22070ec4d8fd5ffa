package models

import "time"

// Warehouse represents warehouses table
type Warehouse struct {
	WarehouseID uint   `gorm:"primaryKey;column:warehouse_id" json:"warehouse_id"`
	Name        string `gorm:"type:varchar(100);not null;unique" json:"name"`
	Region      string `gorm:"type:varchar(30);not null" json:"region"`
	TZ          string `gorm:"type:varchar(10);not null;column:tz" json:"tz"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Locations     []Location     `gorm:"foreignKey:WarehouseID" json:"locations,omitempty"`
	SensorDevices []SensorDevice `gorm:"foreignKey:WarehouseID" json:"sensor_devices,omitempty"`
}

// TableName specifies the table name for Warehouse
func (Warehouse) TableName() string {
	return "warehouses"
}

// Dock returns the warehouse's single DOCK location, or nil when the
// layout is broken. Requires Locations to be loaded.
func (w *Warehouse) Dock() *Location {
	for i := range w.Locations {
		if w.Locations[i].Type == LocationDock {
			return &w.Locations[i]
		}
	}
	return nil
}

// Supplier represents suppliers table
type Supplier struct {
	SupplierID       uint    `gorm:"primaryKey;column:supplier_id" json:"supplier_id"`
	Name             string  `gorm:"type:varchar(100);not null;unique" json:"name"`
	ReliabilityScore float64 `gorm:"not null;default:0.5;check:reliability_score >= 0 AND reliability_score <= 1" json:"reliability_score"`
	Region           string  `gorm:"type:varchar(30);not null" json:"region"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "suppliers"
}

// LeadtimeModel represents leadtime_models table. P1/P2 parameterize the
// distribution family (mean/std for normal, mu/sigma for lognormal).
type LeadtimeModel struct {
	ModelID          uint          `gorm:"primaryKey;column:model_id" json:"model_id"`
	Scope            LeadtimeScope `gorm:"type:varchar(20);not null" json:"scope"`
	DistFamily       DistFamily    `gorm:"type:varchar(20);not null" json:"dist_family"`
	P1               float64       `json:"p1"`
	P2               float64       `json:"p2"`
	PRareDelay       float64       `gorm:"not null;default:0;check:p_rare_delay >= 0 AND p_rare_delay <= 1" json:"p_rare_delay"`
	RareDelayAddDays float64       `gorm:"not null;default:0;check:rare_delay_add_days >= 0" json:"rare_delay_add_days"`
	FittedAt         time.Time     `json:"fitted_at"`
}

// TableName specifies the table name for LeadtimeModel
func (LeadtimeModel) TableName() string {
	return "leadtime_models"
}

// Route represents routes table; origin and destination are always distinct.
type Route struct {
	RouteID                uint          `gorm:"primaryKey;column:route_id" json:"route_id"`
	OriginWarehouseID      uint          `gorm:"not null" json:"origin_warehouse_id"`
	DestinationWarehouseID uint          `gorm:"not null" json:"destination_warehouse_id"`
	Mode                   TransportMode `gorm:"type:varchar(10);not null" json:"mode"`
	DistanceKM             float64       `gorm:"not null;check:distance_km >= 0;column:distance_km" json:"distance_km"`
	LeadtimeModelID        *uint         `json:"leadtime_model_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	LeadtimeModel *LeadtimeModel `gorm:"foreignKey:LeadtimeModelID" json:"leadtime_model,omitempty"`
}

// TableName specifies the table name for Route
func (Route) TableName() string {
	return "routes"
}

// Shipment represents shipments table
type Shipment struct {
	ShipmentID             uint              `gorm:"primaryKey;column:shipment_id" json:"shipment_id"`
	Direction              ShipmentDirection `gorm:"type:varchar(10);not null" json:"direction"`
	OriginWarehouseID      *uint             `json:"origin_warehouse_id,omitempty"`
	DestinationWarehouseID *uint             `json:"destination_warehouse_id,omitempty"`
	OrderID                *uint             `json:"order_id,omitempty"`
	POID                   *uint             `gorm:"column:po_id" json:"po_id,omitempty"`
	RouteID                *uint             `json:"route_id,omitempty"`
	Status                 ShipmentStatus    `gorm:"type:varchar(20);not null;default:'planned'" json:"status"`
	ShippedAt              *time.Time        `json:"shipped_at,omitempty"`
	ArrivedAt              *time.Time        `json:"arrived_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Shipment
func (Shipment) TableName() string {
	return "shipments"
}
