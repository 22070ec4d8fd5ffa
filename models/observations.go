package models

import "time"

// SensorDevice represents sensor_devices table. Devices belong to a
// warehouse rather than a single location; any active device may produce
// an observation for any balance in its warehouse.
type SensorDevice struct {
	DeviceID    uint         `gorm:"primaryKey;column:device_id" json:"device_id"`
	WarehouseID uint         `gorm:"not null" json:"warehouse_id"`
	DeviceType  DeviceType   `gorm:"type:varchar(20);not null" json:"device_type"`
	NoiseSigma  float64      `gorm:"not null;default:0;check:noise_sigma >= 0" json:"noise_sigma"`
	MissingRate float64      `gorm:"not null;default:0;check:missing_rate >= 0 AND missing_rate <= 1" json:"missing_rate"`
	Bias        float64      `gorm:"not null;default:0" json:"bias"`
	Status      DeviceStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for SensorDevice
func (SensorDevice) TableName() string {
	return "sensor_devices"
}

// Observation represents observations table. A noisy, possibly missing
// reading of a balance; distinct from the ground-truth balance itself.
// IsMissing implies ObservedQty is null and Confidence is zero.
type Observation struct {
	ObservationID      uint            `gorm:"primaryKey;column:observation_id" json:"observation_id"`
	ObservedAt         time.Time       `gorm:"not null" json:"observed_at"`
	DeviceID           uint            `gorm:"not null" json:"device_id"`
	ProductID          uint            `gorm:"not null" json:"product_id"`
	LocationID         uint            `gorm:"not null" json:"location_id"`
	ObsType            ObservationType `gorm:"type:varchar(20);not null" json:"obs_type"`
	ObservedQty        *float64        `json:"observed_qty,omitempty"`
	Confidence         float64         `gorm:"not null;check:confidence >= 0 AND confidence <= 1" json:"confidence"`
	IsMissing          bool            `gorm:"not null;default:false" json:"is_missing"`
	ReportedNoiseSigma float64         `gorm:"not null;default:0" json:"reported_noise_sigma"`
	RelatedMoveID      *uint           `json:"related_move_id,omitempty"`
	RelatedShipmentID  *uint           `json:"related_shipment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Observation
func (Observation) TableName() string {
	return "observations"
}
