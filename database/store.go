package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/logisticsim/models"
)

// Store is the GORM-backed unit of work the simulation runs against. It
// keeps a single open transaction; Commit closes it and immediately opens
// the next one, so the caller always works inside a transaction and
// nothing is durable until Commit.
//
// Not safe for concurrent use: the simulation owns exactly one Store and
// drives it sequentially.
type Store struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewStore begins the first transaction on db and returns the store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, tx: db.Begin()}
}

// Add inserts a new row inside the current transaction, populating its
// generated primary key.
func (s *Store) Add(value any) error {
	if err := s.tx.Create(value).Error; err != nil {
		return fmt.Errorf("failed to insert %T: %w", value, err)
	}
	return nil
}

// Save persists field changes on a previously loaded row.
func (s *Store) Save(value any) error {
	if err := s.tx.Save(value).Error; err != nil {
		return fmt.Errorf("failed to save %T: %w", value, err)
	}
	return nil
}

// GetBalance returns the balance row for a product at a location, or nil
// when none exists yet.
func (s *Store) GetBalance(productID, locationID uint) (*models.InventoryBalance, error) {
	var balance models.InventoryBalance
	err := s.tx.
		Where("product_id = ? AND location_id = ?", productID, locationID).
		First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query balance: %w", err)
	}
	return &balance, nil
}

// FindArrivingShipments returns all in-transit shipments whose arrival
// date is on or before the given date.
func (s *Store) FindArrivingShipments(date time.Time) ([]models.Shipment, error) {
	var shipments []models.Shipment
	err := s.tx.
		Where("status = ? AND arrived_at <= ?", models.ShipmentInTransit, date).
		Order("shipment_id").
		Find(&shipments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query arriving shipments: %w", err)
	}
	return shipments, nil
}

// GetPurchaseOrder loads a purchase order with its lines, or nil when the
// id does not exist.
func (s *Store) GetPurchaseOrder(id uint) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := s.tx.Preload("Lines").First(&po, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase order: %w", err)
	}
	return &po, nil
}

// FindActiveSensors returns the warehouse's sensors currently marked ACTIVE.
func (s *Store) FindActiveSensors(warehouseID uint) ([]models.SensorDevice, error) {
	var sensors []models.SensorDevice
	err := s.tx.
		Where("warehouse_id = ? AND status = ?", warehouseID, models.DeviceActive).
		Order("device_id").
		Find(&sensors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query active sensors: %w", err)
	}
	return sensors, nil
}

// FindPositiveBalances returns every balance row in the warehouse with
// stock on hand, with its Location loaded for scan-probability decisions.
func (s *Store) FindPositiveBalances(warehouseID uint) ([]models.InventoryBalance, error) {
	var balances []models.InventoryBalance
	err := s.tx.
		Joins("JOIN locations ON locations.location_id = inventory_balances.location_id").
		Where("locations.warehouse_id = ? AND inventory_balances.on_hand > 0", warehouseID).
		Order("inventory_balances.balance_id").
		Preload("Location").
		Find(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query positive balances: %w", err)
	}
	return balances, nil
}

// FindLeadtimeModel returns the first lead-time model with the given
// scope, or nil when none exists.
func (s *Store) FindLeadtimeModel(scope models.LeadtimeScope) (*models.LeadtimeModel, error) {
	var model models.LeadtimeModel
	err := s.tx.Where("scope = ?", scope).Order("model_id").First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query leadtime model: %w", err)
	}
	return &model, nil
}

// Count reports the number of rows for the given model.
func (s *Store) Count(model any) (int64, error) {
	var n int64
	if err := s.tx.Model(model).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %T: %w", model, err)
	}
	return n, nil
}

// FindAll loads every row of dest's model. Used by verification queries
// that inspect generated datasets.
func (s *Store) FindAll(dest any) error {
	if err := s.tx.Find(dest).Error; err != nil {
		return fmt.Errorf("failed to query %T: %w", dest, err)
	}
	return nil
}

// Commit makes the current transaction durable and opens the next one.
func (s *Store) Commit() error {
	if err := s.tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.tx = s.db.Begin()
	return nil
}

// Rollback discards the current transaction.
func (s *Store) Rollback() error {
	if err := s.tx.Rollback().Error; err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// Close releases the underlying connection; the current transaction is
// discarded if still open.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
