package simulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisticsim/config"
	"github.com/logisticsim/database"
	"github.com/logisticsim/models"
)

func seedGlobalLeadtimeModel(t *testing.T, store *database.Store) models.LeadtimeModel {
	t.Helper()

	m := models.LeadtimeModel{
		Scope:      models.ScopeGlobal,
		DistFamily: models.DistNormal,
		P1:         5,
		P2:         1.5,
		FittedAt:   day(0),
	}
	require.NoError(t, store.Add(&m))
	return m
}

func newReplenishmentForTest(t *testing.T, store Store, suppliers []models.Supplier) *ReplenishmentManager {
	t.Helper()

	cfg := config.DefaultSimulation()
	manager, err := NewReplenishmentManager(store, &cfg.Replenishment, rand.New(rand.NewSource(1)), suppliers)
	require.NoError(t, err)
	return manager
}

// Stock under the reorder point raises a PO up to the target level with
// a matching in-transit shipment.
func TestReplenishmentOrdersUpToTarget(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-REP-01")
	product := seedProduct(t, store, "REP-0001-0001")
	supplier := seedSupplier(t, store, "Repl Supplier 001")
	ltModel := seedGlobalLeadtimeModel(t, store)
	seedBalance(t, store, product.ProductID, wh.Dock().LocationID, 15)

	manager := newReplenishmentForTest(t, store, []models.Supplier{supplier})
	created, err := manager.checkAndReplenish(&wh, wh.Dock().LocationID, &product, day(0))
	require.NoError(t, err)
	assert.True(t, created)

	var pos []models.PurchaseOrder
	require.NoError(t, store.FindAll(&pos))
	require.Len(t, pos, 1)
	assert.Equal(t, models.POSubmitted, pos[0].Status)
	assert.Equal(t, supplier.SupplierID, pos[0].SupplierID)
	assert.Equal(t, wh.WarehouseID, pos[0].DestinationWarehouseID)
	require.NotNil(t, pos[0].LeadtimeModelID)
	assert.Equal(t, ltModel.ModelID, *pos[0].LeadtimeModelID)

	var lines []models.POLine
	require.NoError(t, store.FindAll(&lines))
	require.Len(t, lines, 1)
	// Order up from 15 on hand to the default target of 100.
	assert.Equal(t, 85.0, lines[0].QtyOrdered)
	assert.Equal(t, 0.0, lines[0].QtyReceived)

	var shipments []models.Shipment
	require.NoError(t, store.FindAll(&shipments))
	require.Len(t, shipments, 1)
	assert.Equal(t, models.DirectionInbound, shipments[0].Direction)
	assert.Equal(t, models.ShipmentInTransit, shipments[0].Status)
	require.NotNil(t, shipments[0].POID)
	assert.Equal(t, pos[0].POID, *shipments[0].POID)

	require.NotNil(t, shipments[0].ShippedAt)
	require.NotNil(t, shipments[0].ArrivedAt)
	minArrival := day(0).AddDate(0, 0, 1)
	assert.False(t, shipments[0].ArrivedAt.Before(minArrival),
		"arrival must respect the minimum lead time")
}

func TestReplenishmentSkipsHealthyStock(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-REP-02")
	product := seedProduct(t, store, "REP-0001-0002")
	supplier := seedSupplier(t, store, "Repl Supplier 002")
	seedGlobalLeadtimeModel(t, store)
	seedBalance(t, store, product.ProductID, wh.Dock().LocationID, 50)

	manager := newReplenishmentForTest(t, store, []models.Supplier{supplier})
	created, err := manager.checkAndReplenish(&wh, wh.Dock().LocationID, &product, day(0))
	require.NoError(t, err)
	assert.False(t, created)

	var pos []models.PurchaseOrder
	require.NoError(t, store.FindAll(&pos))
	assert.Empty(t, pos)
}

// A missing balance row counts as zero stock and triggers a full order.
func TestReplenishmentTreatsMissingBalanceAsZero(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-REP-03")
	product := seedProduct(t, store, "REP-0001-0003")
	supplier := seedSupplier(t, store, "Repl Supplier 003")
	seedGlobalLeadtimeModel(t, store)

	manager := newReplenishmentForTest(t, store, []models.Supplier{supplier})
	created, err := manager.checkAndReplenish(&wh, wh.Dock().LocationID, &product, day(0))
	require.NoError(t, err)
	assert.True(t, created)

	var lines []models.POLine
	require.NoError(t, store.FindAll(&lines))
	require.Len(t, lines, 1)
	assert.Equal(t, 100.0, lines[0].QtyOrdered)
}

func TestReplenishmentNoSuppliersIsNoOp(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-REP-04")
	product := seedProduct(t, store, "REP-0001-0004")
	seedGlobalLeadtimeModel(t, store)

	manager := newReplenishmentForTest(t, store, nil)
	require.NoError(t, manager.ReviewStockLevels(day(0), []models.Warehouse{wh}, []models.Product{product}))

	var pos []models.PurchaseOrder
	require.NoError(t, store.FindAll(&pos))
	assert.Empty(t, pos)
}
