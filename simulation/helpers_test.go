package simulation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/logisticsim/database"
	"github.com/logisticsim/models"
)

// newTestStore opens a throwaway in-memory database behind the same
// store implementation production uses.
func newTestStore(t *testing.T) *database.Store {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	store := database.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// seedWarehouse inserts a warehouse with a single dock, mirroring the
// minimal layout the managers need.
func seedWarehouse(t *testing.T, store *database.Store, name string) models.Warehouse {
	t.Helper()

	wh := models.Warehouse{Name: name, Region: "NA-EAST", TZ: "UTC-5"}
	require.NoError(t, store.Add(&wh))

	dock := models.Location{
		WarehouseID:   wh.WarehouseID,
		Code:          fmt.Sprintf("%s-DOCK", name),
		Type:          models.LocationDock,
		CapacityUnits: 5000,
	}
	require.NoError(t, store.Add(&dock))
	wh.Locations = append(wh.Locations, dock)

	return wh
}

func seedProduct(t *testing.T, store *database.Store, sku string) models.Product {
	t.Helper()

	shelfLife := 365
	p := models.Product{SKU: sku, Name: "Widget " + sku, Category: "Home", ShelfLifeDays: &shelfLife}
	require.NoError(t, store.Add(&p))
	return p
}

func seedSupplier(t *testing.T, store *database.Store, name string) models.Supplier {
	t.Helper()

	s := models.Supplier{Name: name, ReliabilityScore: 0.9, Region: "EU-WEST"}
	require.NoError(t, store.Add(&s))
	return s
}

// seedBalance puts stock at a location directly, bypassing the ledger.
func seedBalance(t *testing.T, store *database.Store, productID, locationID uint, onHand float64) {
	t.Helper()

	b := models.InventoryBalance{
		ProductID:     productID,
		LocationID:    locationID,
		OnHand:        onHand,
		QualityStatus: models.QualityOK,
	}
	require.NoError(t, store.Add(&b))
}

func day(offset int) time.Time {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}
