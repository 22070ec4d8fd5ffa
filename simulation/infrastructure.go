package simulation

import (
	"fmt"
	"math/rand"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

// Regions a warehouse can be placed in, cycled in order, with their
// matching UTC offsets.
var (
	warehouseRegions   = []string{"NA-EAST", "EU-WEST", "APAC-SG", "NA-WEST", "EU-CENTRAL"}
	warehouseTimezones = []string{"UTC-5", "UTC+1", "UTC+8", "UTC-8", "UTC+2"}
)

// infrastructureBuilder creates warehouses together with their internal
// layout: one DOCK per warehouse, a set of virtual zones, aisles under
// each zone, and probabilistically attached sensor devices.
type infrastructureBuilder struct {
	store Store
	cfg   *config.LayoutConfig
	rng   *rand.Rand
}

func newInfrastructureBuilder(store Store, cfg *config.LayoutConfig, rng *rand.Rand) *infrastructureBuilder {
	return &infrastructureBuilder{store: store, cfg: cfg, rng: rng}
}

// createWarehouses builds count warehouses. The returned slice carries
// each warehouse's locations and sensors so later stages can resolve
// docks without extra queries.
func (b *infrastructureBuilder) createWarehouses(count int) ([]models.Warehouse, error) {
	warehouses := make([]models.Warehouse, 0, count)

	for i := 0; i < count; i++ {
		idx := i % len(warehouseRegions)
		wh := models.Warehouse{
			Name:   fmt.Sprintf("WH-%s-%02d", warehouseRegions[idx], i+1),
			Region: warehouseRegions[idx],
			TZ:     warehouseTimezones[idx],
		}
		if err := b.store.Add(&wh); err != nil {
			return nil, err
		}

		if err := b.buildDock(&wh); err != nil {
			return nil, err
		}
		if err := b.buildZones(&wh); err != nil {
			return nil, err
		}

		warehouses = append(warehouses, wh)
	}

	return warehouses, nil
}

// buildDock creates the warehouse's single DOCK location, the staging
// node for every receipt and issue.
func (b *infrastructureBuilder) buildDock(wh *models.Warehouse) error {
	dock := models.Location{
		WarehouseID:   wh.WarehouseID,
		Code:          fmt.Sprintf("%s-DOCK", wh.Name),
		Type:          models.LocationDock,
		CapacityUnits: b.intBetween(b.cfg.Dock.CapacityMin, b.cfg.Dock.CapacityMax),
	}
	if err := b.store.Add(&dock); err != nil {
		return err
	}
	wh.Locations = append(wh.Locations, dock)
	return nil
}

// buildZones creates the virtual zone containers and their aisles.
func (b *infrastructureBuilder) buildZones(wh *models.Warehouse) error {
	zoneCount := b.intBetween(b.cfg.Zone.CountMin, b.cfg.Zone.CountMax)

	for z := 0; z < zoneCount; z++ {
		zoneName := fmt.Sprintf("ZONE-%c", 'A'+z)
		zone := models.Location{
			WarehouseID:   wh.WarehouseID,
			Code:          fmt.Sprintf("%s-%s", wh.Name, zoneName),
			Type:          models.LocationVirtual,
			CapacityUnits: b.intBetween(b.cfg.Zone.CapacityMin, b.cfg.Zone.CapacityMax),
		}
		if err := b.store.Add(&zone); err != nil {
			return err
		}
		wh.Locations = append(wh.Locations, zone)

		if err := b.buildAisles(wh, &zone, zoneName); err != nil {
			return err
		}
	}

	return nil
}

// buildAisles creates the shelf locations under a zone and rolls the
// sensor-attachment dice for each one.
func (b *infrastructureBuilder) buildAisles(wh *models.Warehouse, zone *models.Location, zoneName string) error {
	aisleCount := b.intBetween(b.cfg.Aisle.CountMin, b.cfg.Aisle.CountMax)

	for a := 1; a <= aisleCount; a++ {
		parentID := zone.LocationID
		aisle := models.Location{
			WarehouseID:      wh.WarehouseID,
			ParentLocationID: &parentID,
			Code:             fmt.Sprintf("%s-AISLE-%02d", zoneName, a),
			Type:             models.LocationShelf,
			CapacityUnits:    b.intBetween(b.cfg.Aisle.CapacityMin, b.cfg.Aisle.CapacityMax),
		}
		if err := b.store.Add(&aisle); err != nil {
			return err
		}
		wh.Locations = append(wh.Locations, aisle)

		if err := b.attachSensor(wh); err != nil {
			return err
		}
	}

	return nil
}

// attachSensor probabilistically adds a sensor device to the warehouse.
// The device belongs to the warehouse, not the aisle that triggered it.
// Camera and RFID profiles come from configuration; cameras are set up
// noisier there, never in the sensor manager.
func (b *infrastructureBuilder) attachSensor(wh *models.Warehouse) error {
	if b.rng.Float64() > b.cfg.Sensor.AttachProbability {
		return nil
	}

	var (
		deviceType models.DeviceType
		profile    config.SensorProfile
	)
	cameraShare := b.cfg.Sensor.Camera.Weight / (b.cfg.Sensor.Camera.Weight + b.cfg.Sensor.RFID.Weight)
	if b.rng.Float64() < cameraShare {
		deviceType = models.DeviceCamera
		profile = b.cfg.Sensor.Camera
	} else {
		deviceType = models.DeviceRFIDReader
		profile = b.cfg.Sensor.RFID
	}

	device := models.SensorDevice{
		WarehouseID: wh.WarehouseID,
		DeviceType:  deviceType,
		Status:      models.DeviceActive,
		NoiseSigma:  b.floatBetween(profile.NoiseMin, profile.NoiseMax),
		MissingRate: b.floatBetween(profile.MissingMin, profile.MissingMax),
	}
	if err := b.store.Add(&device); err != nil {
		return err
	}
	wh.SensorDevices = append(wh.SensorDevices, device)
	return nil
}

func (b *infrastructureBuilder) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + b.rng.Intn(max-min+1)
}

func (b *infrastructureBuilder) floatBetween(min, max float64) float64 {
	return min + b.rng.Float64()*(max-min)
}
