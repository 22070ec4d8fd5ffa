package simulation

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/logisticsim/models"
)

// InboundManager drives the receiving side of the simulation. Each tick
// it finds shipments whose arrival date has passed, verifies their
// paperwork against the linked purchase order, books the stock onto the
// destination dock through the ledger, and closes the shipment.
type InboundManager struct {
	store  Store
	ledger *Ledger
}

func NewInboundManager(store Store) *InboundManager {
	return &InboundManager{store: store, ledger: NewLedger(store)}
}

// ProcessDailyArrivals receives every in-transit shipment whose
// arrived_at is on or before date. Shipments that fail validation are
// logged and skipped; the tick keeps going.
func (m *InboundManager) ProcessDailyArrivals(date time.Time, warehouses []models.Warehouse) error {
	shipments, err := m.store.FindArrivingShipments(date)
	if err != nil {
		return fmt.Errorf("failed to fetch arriving shipments: %w", err)
	}
	if len(shipments) == 0 {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"count": len(shipments),
		"date":  date.Format("2006-01-02"),
	}).Info("processing_shipments")

	for i := range shipments {
		if err := m.processShipment(&shipments[i], date, warehouses); err != nil {
			return err
		}
	}
	return nil
}

func (m *InboundManager) processShipment(shipment *models.Shipment, date time.Time, warehouses []models.Warehouse) error {
	po, dock, err := m.validateShipment(shipment, warehouses)
	if err != nil {
		return err
	}
	if po == nil {
		return nil
	}

	for i := range po.Lines {
		line := &po.Lines[i]
		// No partial shipments or transit loss yet; received equals ordered.
		qtyReceived := line.QtyOrdered

		cmd := MovementCommand{
			Location:  dock,
			ProductID: line.ProductID,
			Qty:       qtyReceived,
			Date:      date,
			RefID:     shipment.ShipmentID,
		}
		if err := m.ledger.RecordReceipt(cmd); err != nil {
			return fmt.Errorf("failed to receive shipment %d: %w", shipment.ShipmentID, err)
		}

		line.QtyReceived += qtyReceived
		if err := m.store.Save(line); err != nil {
			return err
		}
	}

	shipment.Status = models.ShipmentDelivered
	if err := m.store.Save(shipment); err != nil {
		return err
	}
	logrus.WithField("shipment_id", shipment.ShipmentID).Debug("shipment_finalized")
	return nil
}

// validateShipment checks the receiving prerequisites: a linked PO, a
// known destination warehouse, and a dock at that warehouse. A nil PO
// return with a nil error means skip this shipment as a data defect; a
// non-nil error is a storage failure the caller must propagate.
func (m *InboundManager) validateShipment(shipment *models.Shipment, warehouses []models.Warehouse) (*models.PurchaseOrder, *models.Location, error) {
	if shipment.POID == nil {
		logrus.WithField("shipment_id", shipment.ShipmentID).Warn("shipment_missing_po")
		return nil, nil, nil
	}

	po, err := m.store.GetPurchaseOrder(*shipment.POID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load purchase order for shipment %d: %w", shipment.ShipmentID, err)
	}
	if po == nil {
		logrus.WithField("shipment_id", shipment.ShipmentID).Warn("shipment_missing_po")
		return nil, nil, nil
	}

	warehouse := findWarehouse(warehouses, shipment.DestinationWarehouseID)
	if warehouse == nil {
		logrus.WithField("shipment_id", shipment.ShipmentID).Error("shipment_missing_destination")
		return nil, nil, nil
	}

	dock := warehouse.Dock()
	if dock == nil {
		logrus.WithField("warehouse_id", warehouse.WarehouseID).Error("warehouse_missing_dock")
		return nil, nil, nil
	}

	return po, dock, nil
}

func findWarehouse(warehouses []models.Warehouse, id *uint) *models.Warehouse {
	if id == nil {
		return nil
	}
	for i := range warehouses {
		if warehouses[i].WarehouseID == *id {
			return &warehouses[i]
		}
	}
	return nil
}
