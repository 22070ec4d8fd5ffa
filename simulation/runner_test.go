package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisticsim/config"
	"github.com/logisticsim/database"
	"github.com/logisticsim/models"
)

func smallConfig(seed int64) *config.Simulation {
	cfg := config.DefaultSimulation()
	cfg.Seed = seed
	cfg.World.WarehouseCount = 2
	cfg.World.ProductCount = 10
	cfg.World.SupplierCount = 2
	cfg.CommitInterval = 5
	return cfg
}

type datasetCounts struct {
	orders       int64
	shipments    int64
	moves        int64
	observations int64
	pos          int64
}

func runGeneration(t *testing.T, seed int64, days int) (*database.Store, datasetCounts) {
	t.Helper()

	store := newTestStore(t)
	runner := NewRunner(store, smallConfig(seed))
	require.NoError(t, runner.Run(days))

	var counts datasetCounts
	var orders []models.Order
	require.NoError(t, store.FindAll(&orders))
	counts.orders = int64(len(orders))
	var shipments []models.Shipment
	require.NoError(t, store.FindAll(&shipments))
	counts.shipments = int64(len(shipments))
	var moves []models.InventoryMove
	require.NoError(t, store.FindAll(&moves))
	counts.moves = int64(len(moves))
	var observations []models.Observation
	require.NoError(t, store.FindAll(&observations))
	counts.observations = int64(len(observations))
	var pos []models.PurchaseOrder
	require.NoError(t, store.FindAll(&pos))
	counts.pos = int64(len(pos))

	return store, counts
}

func TestRunnerGeneratesHistory(t *testing.T) {
	_, counts := runGeneration(t, 42, 60)

	// Sixty days over an active catalog must produce demand, restocking,
	// and receipts; the exact numbers belong to the seed.
	assert.Positive(t, counts.orders)
	assert.Positive(t, counts.pos)
	assert.Positive(t, counts.shipments)
	assert.Positive(t, counts.moves)
}

func TestRunnerIsDeterministic(t *testing.T) {
	_, a := runGeneration(t, 42, 30)
	_, b := runGeneration(t, 42, 30)

	assert.Equal(t, a, b)
}

func TestRunnerSeedChangesDataset(t *testing.T) {
	_, a := runGeneration(t, 1, 30)
	_, b := runGeneration(t, 2, 30)

	assert.NotEqual(t, a, b)
}

func TestRunnerBalancesStayNonNegative(t *testing.T) {
	store, _ := runGeneration(t, 42, 60)

	var balances []models.InventoryBalance
	require.NoError(t, store.FindAll(&balances))
	for _, b := range balances {
		assert.GreaterOrEqual(t, b.OnHand, 0.0)
	}
}

// The signed sum of the move ledger must reproduce every balance row.
func TestRunnerMovesReconcileWithBalances(t *testing.T) {
	store, _ := runGeneration(t, 42, 60)

	var moves []models.InventoryMove
	require.NoError(t, store.FindAll(&moves))

	type key struct {
		productID  uint
		locationID uint
	}
	net := make(map[key]float64)
	for _, m := range moves {
		if m.ToLocationID != nil {
			net[key{m.ProductID, *m.ToLocationID}] += m.Qty
		}
		if m.FromLocationID != nil {
			net[key{m.ProductID, *m.FromLocationID}] -= m.Qty
		}
	}

	var balances []models.InventoryBalance
	require.NoError(t, store.FindAll(&balances))
	require.NotEmpty(t, balances)
	for _, b := range balances {
		assert.InDelta(t, net[key{b.ProductID, b.LocationID}], b.OnHand, 1e-9,
			"product %d at location %d", b.ProductID, b.LocationID)
	}

	assert.Len(t, balances, len(net))
}

func TestRunnerDeliveredShipmentsAreReceipted(t *testing.T) {
	store, _ := runGeneration(t, 42, 60)

	var shipments []models.Shipment
	require.NoError(t, store.FindAll(&shipments))
	for _, s := range shipments {
		if s.Direction != models.DirectionInbound || s.Status != models.ShipmentDelivered {
			continue
		}
		require.NotNil(t, s.POID)
		po, err := store.GetPurchaseOrder(*s.POID)
		require.NoError(t, err)
		require.NotNil(t, po)
		for _, line := range po.Lines {
			assert.Equal(t, line.QtyOrdered, line.QtyReceived)
		}
	}
}
