package simulation

import (
	"time"

	"github.com/logisticsim/models"
)

// Store is the narrow unit-of-work port the simulation runs against. The
// production implementation sits on GORM (database.Store); tests may use
// the same implementation over an embedded SQLite database.
//
// Lookup methods return (nil, nil) when no row matches; an error always
// means the storage layer itself failed.
type Store interface {
	// Add inserts a new row and flushes it so generated keys are populated.
	Add(value any) error
	// Save persists field changes on a previously loaded row.
	Save(value any) error

	// Count reports the number of rows for the given model.
	Count(model any) (int64, error)

	GetBalance(productID, locationID uint) (*models.InventoryBalance, error)
	FindArrivingShipments(date time.Time) ([]models.Shipment, error)
	GetPurchaseOrder(id uint) (*models.PurchaseOrder, error)
	FindActiveSensors(warehouseID uint) ([]models.SensorDevice, error)
	FindPositiveBalances(warehouseID uint) ([]models.InventoryBalance, error)
	FindLeadtimeModel(scope models.LeadtimeScope) (*models.LeadtimeModel, error)

	Commit() error
	Rollback() error
	Close() error
}
