package simulation

import (
	"fmt"
	"time"

	"github.com/logisticsim/models"
)

// Movement reason codes recorded on the audit trail.
const (
	reasonPOReceipt     = "PO_RECEIPT"
	reasonCustomerOrder = "CUSTOMER_ORDER"
)

// MovementCommand carries everything the ledger needs to book one stock
// movement: where, what, how much, when, and the document that caused it
// (a Shipment for receipts, an Order for issuances).
type MovementCommand struct {
	Location  *models.Location
	ProductID uint
	Qty       float64
	Date      time.Time
	RefID     uint
}

// Ledger is the only component allowed to mutate InventoryBalance rows.
// Every balance delta it applies is paired with exactly one immutable
// InventoryMove. The ledger records transactions; it never decides them.
// Callers must not request an issuance larger than the current on-hand.
type Ledger struct {
	store Store
}

// NewLedger creates a ledger over the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// RecordReceipt books an inbound stock increase at the command's location,
// creating the balance row on first receipt.
func (l *Ledger) RecordReceipt(cmd MovementCommand) error {
	if err := l.updateBalance(cmd.Location, cmd.ProductID, cmd.Qty); err != nil {
		return err
	}
	return l.logMovement(cmd, models.MoveInbound, reasonPOReceipt)
}

// RecordIssuance books an outbound stock decrease.
func (l *Ledger) RecordIssuance(cmd MovementCommand) error {
	if err := l.updateBalance(cmd.Location, cmd.ProductID, -cmd.Qty); err != nil {
		return err
	}
	return l.logMovement(cmd, models.MoveOutbound, reasonCustomerOrder)
}

// updateBalance applies a signed delta to the perpetual balance for a
// product at a location, initializing the row if it does not exist yet.
func (l *Ledger) updateBalance(location *models.Location, productID uint, delta float64) error {
	balance, err := l.store.GetBalance(productID, location.LocationID)
	if err != nil {
		return fmt.Errorf("failed to read balance: %w", err)
	}

	if balance == nil {
		balance = &models.InventoryBalance{
			ProductID:     productID,
			LocationID:    location.LocationID,
			OnHand:        delta,
			Reserved:      0,
			QualityStatus: models.QualityOK,
		}
		return l.store.Add(balance)
	}

	balance.OnHand += delta
	return l.store.Save(balance)
}

// logMovement appends the immutable audit record for a balance delta.
// Receipts record the destination, issuances the source.
func (l *Ledger) logMovement(cmd MovementCommand, moveType models.MoveType, reason string) error {
	locID := cmd.Location.LocationID
	refID := cmd.RefID

	move := models.InventoryMove{
		ProductID:  cmd.ProductID,
		MoveType:   moveType,
		Qty:        cmd.Qty,
		OccurredAt: cmd.Date,
		ReasonCode: &reason,
		RefID:      &refID,
	}
	if moveType == models.MoveOutbound {
		move.FromLocationID = &locID
	} else {
		move.ToLocationID = &locID
	}

	return l.store.Add(&move)
}
