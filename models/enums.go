package models

// QualityStatus tags the condition of a stored balance
type QualityStatus string

const (
	QualityOK         QualityStatus = "ok"
	QualityDamaged    QualityStatus = "damaged"
	QualityExpired    QualityStatus = "expired"
	QualityQuarantine QualityStatus = "quarantine"
)

// MoveType classifies inventory movements
type MoveType string

const (
	MoveInbound    MoveType = "inbound"
	MoveOutbound   MoveType = "outbound"
	MoveTransfer   MoveType = "transfer"
	MoveAdjustment MoveType = "adjustment"
)

// LocationType classifies storage locations within a warehouse
type LocationType string

const (
	LocationShelf     LocationType = "shelf"
	LocationBin       LocationType = "bin"
	LocationPalletPos LocationType = "pallet_pos"
	LocationDock      LocationType = "dock"
	LocationVirtual   LocationType = "virtual"
)

// OrderStatus type for customer order status
type OrderStatus string

const (
	OrderNew       OrderStatus = "new"
	OrderAllocated OrderStatus = "allocated"
	OrderPicked    OrderStatus = "picked"
	OrderShipped   OrderStatus = "shipped"
	OrderCancelled OrderStatus = "cancelled"
)

// POStatus type for purchase order status
type POStatus string

const (
	PODraft     POStatus = "draft"
	POSubmitted POStatus = "submitted"
	POPartial   POStatus = "partial"
	POReceived  POStatus = "received"
	POClosed    POStatus = "closed"
)

// DeviceType classifies sensor hardware
type DeviceType string

const (
	DeviceCamera     DeviceType = "camera"
	DeviceRFIDReader DeviceType = "rfid_reader"
)

// DeviceStatus is the operational state of a sensor
type DeviceStatus string

const (
	DeviceActive      DeviceStatus = "active"
	DeviceOffline     DeviceStatus = "offline"
	DeviceMaintenance DeviceStatus = "maintenance"
)

// ShipmentStatus tracks a shipment through its lifecycle
type ShipmentStatus string

const (
	ShipmentPlanned   ShipmentStatus = "planned"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentException ShipmentStatus = "exception"
)

// ShipmentDirection distinguishes receiving from shipping
type ShipmentDirection string

const (
	DirectionInbound  ShipmentDirection = "inbound"
	DirectionOutbound ShipmentDirection = "outbound"
	DirectionTransfer ShipmentDirection = "transfer"
)

// TransportMode is the physical carrier mode of a route
type TransportMode string

const (
	ModeTruck TransportMode = "truck"
	ModeAir   TransportMode = "air"
	ModeSea   TransportMode = "sea"
)

// LeadtimeScope declares what a lead-time model applies to
type LeadtimeScope string

const (
	ScopeSupplier LeadtimeScope = "supplier"
	ScopeRoute    LeadtimeScope = "route"
	ScopeGlobal   LeadtimeScope = "global"
)

// DistFamily names the distribution family of a lead-time model
type DistFamily string

const (
	DistNormal    DistFamily = "normal"
	DistLognormal DistFamily = "lognormal"
	DistPoisson   DistFamily = "poisson"
)

// ObservationType classifies how a sensor reading was produced
type ObservationType string

const (
	ObsScan        ObservationType = "scan"
	ObsImageRecog  ObservationType = "image_recog"
	ObsManualCount ObservationType = "manual_count"
)
