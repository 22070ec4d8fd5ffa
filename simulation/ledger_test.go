package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisticsim/models"
)

func TestLedgerReceiptCreatesBalance(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-LEDGER-01")
	product := seedProduct(t, store, "LED-0001-0001")
	dock := wh.Dock()
	ledger := NewLedger(store)

	err := ledger.RecordReceipt(MovementCommand{
		Location:  dock,
		ProductID: product.ProductID,
		Qty:       50,
		Date:      day(0),
		RefID:     1,
	})
	require.NoError(t, err)

	balance, err := store.GetBalance(product.ProductID, dock.LocationID)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, 50.0, balance.OnHand)
	assert.Equal(t, models.QualityOK, balance.QualityStatus)
}

func TestLedgerReceiptAccumulates(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-LEDGER-02")
	product := seedProduct(t, store, "LED-0001-0002")
	dock := wh.Dock()
	ledger := NewLedger(store)

	for _, qty := range []float64{50, 25} {
		cmd := MovementCommand{Location: dock, ProductID: product.ProductID, Qty: qty, Date: day(0), RefID: 1}
		require.NoError(t, ledger.RecordReceipt(cmd))
	}

	balance, err := store.GetBalance(product.ProductID, dock.LocationID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, balance.OnHand)
}

func TestLedgerIssuanceDeducts(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-LEDGER-03")
	product := seedProduct(t, store, "LED-0001-0003")
	dock := wh.Dock()
	ledger := NewLedger(store)

	require.NoError(t, ledger.RecordReceipt(MovementCommand{
		Location: dock, ProductID: product.ProductID, Qty: 50, Date: day(0), RefID: 1,
	}))
	require.NoError(t, ledger.RecordIssuance(MovementCommand{
		Location: dock, ProductID: product.ProductID, Qty: 20, Date: day(1), RefID: 9,
	}))

	balance, err := store.GetBalance(product.ProductID, dock.LocationID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, balance.OnHand)
}

// Every balance delta must be paired with exactly one move carrying the
// causing document's reference.
func TestLedgerMovesPairBalanceDeltas(t *testing.T) {
	store := newTestStore(t)
	wh := seedWarehouse(t, store, "WH-LEDGER-04")
	product := seedProduct(t, store, "LED-0001-0004")
	dock := wh.Dock()
	ledger := NewLedger(store)

	require.NoError(t, ledger.RecordReceipt(MovementCommand{
		Location: dock, ProductID: product.ProductID, Qty: 40, Date: day(0), RefID: 7,
	}))
	require.NoError(t, ledger.RecordIssuance(MovementCommand{
		Location: dock, ProductID: product.ProductID, Qty: 15, Date: day(1), RefID: 8,
	}))

	var moves []models.InventoryMove
	require.NoError(t, store.FindAll(&moves))
	require.Len(t, moves, 2)

	receipt, issue := moves[0], moves[1]

	assert.Equal(t, models.MoveInbound, receipt.MoveType)
	assert.Equal(t, 40.0, receipt.Qty)
	require.NotNil(t, receipt.ToLocationID)
	assert.Equal(t, dock.LocationID, *receipt.ToLocationID)
	assert.Nil(t, receipt.FromLocationID)
	require.NotNil(t, receipt.ReasonCode)
	assert.Equal(t, "PO_RECEIPT", *receipt.ReasonCode)
	require.NotNil(t, receipt.RefID)
	assert.Equal(t, uint(7), *receipt.RefID)

	assert.Equal(t, models.MoveOutbound, issue.MoveType)
	assert.Equal(t, 15.0, issue.Qty)
	require.NotNil(t, issue.FromLocationID)
	assert.Equal(t, dock.LocationID, *issue.FromLocationID)
	assert.Nil(t, issue.ToLocationID)
	require.NotNil(t, issue.ReasonCode)
	assert.Equal(t, "CUSTOMER_ORDER", *issue.ReasonCode)
}
