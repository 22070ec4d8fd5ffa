package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

// SensorManager is the observer layer. It never writes inventory; it
// writes what the installed devices claim to see, complete with Gaussian
// noise, dropped readings, and per-device confidence. The observation
// table is the imperfect view a downstream consumer trains against.
type SensorManager struct {
	store Store
	cfg   *config.SensorsConfig
	rng   *rand.Rand
}

func NewSensorManager(store Store, cfg *config.SensorsConfig, rng *rand.Rand) *SensorManager {
	return &SensorManager{store: store, cfg: cfg, rng: rng}
}

// GenerateDailyObservations runs one day of sensing across every
// warehouse.
func (m *SensorManager) GenerateDailyObservations(date time.Time, warehouses []models.Warehouse) error {
	obsCount := 0

	for i := range warehouses {
		n, err := m.observeWarehouse(&warehouses[i], date)
		if err != nil {
			return err
		}
		obsCount += n
	}

	if obsCount > 0 {
		logrus.WithFields(logrus.Fields{
			"observations_generated": obsCount,
			"date":                   date.Format("2006-01-02"),
		}).Info("sensors_updated")
	}
	return nil
}

// observeWarehouse scans the warehouse's positive balances with its
// active devices. Warehouses without sensors or without stock produce
// nothing.
func (m *SensorManager) observeWarehouse(warehouse *models.Warehouse, date time.Time) (int, error) {
	sensors, err := m.store.FindActiveSensors(warehouse.WarehouseID)
	if err != nil {
		return 0, fmt.Errorf("failed to list active sensors: %w", err)
	}
	if len(sensors) == 0 {
		return 0, nil
	}

	balances, err := m.store.FindPositiveBalances(warehouse.WarehouseID)
	if err != nil {
		return 0, fmt.Errorf("failed to list inventory balances: %w", err)
	}
	if len(balances) == 0 {
		return 0, nil
	}

	count := 0
	for i := range balances {
		if !m.shouldScan(&balances[i]) {
			continue
		}
		sensor := &sensors[m.rng.Intn(len(sensors))]
		if err := m.recordObservation(sensor, &balances[i], date); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// shouldScan rolls the per-tick detection chance. Docks see nearly all
// traffic; storage locations only get occasional cycle counts.
func (m *SensorManager) shouldScan(balance *models.InventoryBalance) bool {
	prob := m.cfg.ScanProbabilities.Default
	if balance.Location.Type == models.LocationDock {
		prob = m.cfg.ScanProbabilities.Dock
	}
	return m.rng.Float64() <= prob
}

func (m *SensorManager) recordObservation(sensor *models.SensorDevice, balance *models.InventoryBalance, date time.Time) error {
	observedQty, confidence, isMissing := m.observe(sensor, balance.OnHand)

	obs := &models.Observation{
		ObservedAt:         date,
		DeviceID:           sensor.DeviceID,
		ProductID:          balance.ProductID,
		LocationID:         balance.LocationID,
		ObsType:            models.ObsScan,
		ObservedQty:        observedQty,
		Confidence:         confidence,
		IsMissing:          isMissing,
		ReportedNoiseSigma: sensor.NoiseSigma,
	}
	return m.store.Add(obs)
}

// observe applies the device's noise model to the true quantity. A
// Bernoulli draw against the device's missing rate drops the reading
// entirely; otherwise Gaussian noise is added with a sigma proportional
// to the quantity and floored at the configured minimum, and confidence
// degrades with the device's noise level.
func (m *SensorManager) observe(sensor *models.SensorDevice, actualQty float64) (*float64, float64, bool) {
	if m.rng.Float64() < sensor.MissingRate {
		return nil, 0, true
	}

	nm := &m.cfg.NoiseModel

	sigma := actualQty * sensor.NoiseSigma
	if sigma < nm.MinSigmaUnits {
		sigma = nm.MinSigmaUnits
	}
	noise := m.rng.NormFloat64()*sigma + nm.NoiseMean

	observed := actualQty + noise
	if observed < nm.MinObservedQty {
		observed = nm.MinObservedQty
	}

	confidence := nm.BaseConfidence - sensor.NoiseSigma*nm.NoiseMultiplier
	if confidence < nm.MinConfidence {
		confidence = nm.MinConfidence
	}

	return &observed, confidence, false
}
