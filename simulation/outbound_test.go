package simulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

func newOutboundForTest(store Store) *OutboundManager {
	cfg := config.DefaultSimulation()
	return NewOutboundManager(store, &cfg.Outbound, rand.New(rand.NewSource(1)))
}

func TestOutboundFullAllocation(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-OUT-01")
	product := seedProduct(t, store, "OUT-0001-0001")
	dock := wh.Dock()
	seedBalance(t, store, product.ProductID, dock.LocationID, 100)

	manager := newOutboundForTest(store)
	created, err := manager.processOrder(&wh, &product, 5, day(0))
	require.NoError(t, err)
	assert.True(t, created)

	balance, err := store.GetBalance(product.ProductID, dock.LocationID)
	require.NoError(t, err)
	assert.Equal(t, 95.0, balance.OnHand)

	var lines []models.OrderLine
	require.NoError(t, store.FindAll(&lines))
	require.Len(t, lines, 1)
	assert.Equal(t, 5.0, lines[0].QtyOrdered)
	assert.Equal(t, 5.0, lines[0].QtyAllocated)
	assert.Equal(t, 5.0, lines[0].QtyShipped)
	assert.Equal(t, 0.0, lines[0].ServiceLevelPenalty)

	var orders []models.Order
	require.NoError(t, store.FindAll(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderShipped, orders[0].Status)

	var shipments []models.Shipment
	require.NoError(t, store.FindAll(&shipments))
	require.Len(t, shipments, 1)
	assert.Equal(t, models.DirectionOutbound, shipments[0].Direction)
	assert.Equal(t, models.ShipmentInTransit, shipments[0].Status)
	require.NotNil(t, shipments[0].OrderID)
	assert.Equal(t, orders[0].OrderID, *shipments[0].OrderID)
}

// Demand above stock ships what is available and prices the shortfall.
func TestOutboundPartialAllocation(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-OUT-02")
	product := seedProduct(t, store, "OUT-0001-0002")
	dock := wh.Dock()
	seedBalance(t, store, product.ProductID, dock.LocationID, 3)

	manager := newOutboundForTest(store)
	created, err := manager.processOrder(&wh, &product, 8, day(0))
	require.NoError(t, err)
	assert.True(t, created)

	balance, err := store.GetBalance(product.ProductID, dock.LocationID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.OnHand)

	var lines []models.OrderLine
	require.NoError(t, store.FindAll(&lines))
	require.Len(t, lines, 1)
	assert.Equal(t, 8.0, lines[0].QtyOrdered)
	assert.Equal(t, 3.0, lines[0].QtyAllocated)
	// 5 missed units at the default 10.0 penalty rate
	assert.Equal(t, 50.0, lines[0].ServiceLevelPenalty)

	var orders []models.Order
	require.NoError(t, store.FindAll(&orders))
	assert.Equal(t, models.OrderShipped, orders[0].Status)
}

// Orders against empty stock are still recorded, as cancelled lost
// sales, with no movement and no shipment.
func TestOutboundZeroStockLostSale(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-OUT-03")
	product := seedProduct(t, store, "OUT-0001-0003")

	manager := newOutboundForTest(store)
	created, err := manager.processOrder(&wh, &product, 4, day(0))
	require.NoError(t, err)
	assert.True(t, created)

	var orders []models.Order
	require.NoError(t, store.FindAll(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderCancelled, orders[0].Status)

	var lines []models.OrderLine
	require.NoError(t, store.FindAll(&lines))
	require.Len(t, lines, 1)
	assert.Equal(t, 0.0, lines[0].QtyAllocated)
	assert.Equal(t, 40.0, lines[0].ServiceLevelPenalty)

	var moves []models.InventoryMove
	require.NoError(t, store.FindAll(&moves))
	assert.Empty(t, moves)

	var shipments []models.Shipment
	require.NoError(t, store.FindAll(&shipments))
	assert.Empty(t, shipments)
}

func TestOutboundSampleSizeFloorsAtOne(t *testing.T) {
	store := newTestStore(t)
	manager := newOutboundForTest(store)

	products := []models.Product{{ProductID: 1}, {ProductID: 2}}
	active := manager.sampleActiveProducts(products)
	assert.Len(t, active, 1)
}

func TestPoissonDemandNonNegative(t *testing.T) {
	store := newTestStore(t)
	manager := newOutboundForTest(store)

	total := 0
	for i := 0; i < 10000; i++ {
		k := manager.poissonDemand(2.0)
		require.GreaterOrEqual(t, k, 0)
		total += k
	}
	// Sample mean of Poisson(2) over 10k draws stays near 2.
	mean := float64(total) / 10000
	assert.InDelta(t, 2.0, mean, 0.15)
}
