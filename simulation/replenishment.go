package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

// ReplenishmentManager plays the purchasing desk. It runs a stochastic
// (s, S) policy: when a reviewed product's dock stock falls below the
// reorder point s, it orders up to the target level S from a random
// supplier and books an inbound shipment with a Gaussian lead time.
type ReplenishmentManager struct {
	store     Store
	cfg       *config.ReplenishmentConfig
	rng       *rand.Rand
	suppliers []models.Supplier
	ltModel   *models.LeadtimeModel
}

// NewReplenishmentManager looks up the global lead-time model once at
// construction. POs reference it so downstream consumers can join order
// history to the timing distribution that produced it.
func NewReplenishmentManager(store Store, cfg *config.ReplenishmentConfig, rng *rand.Rand, suppliers []models.Supplier) (*ReplenishmentManager, error) {
	ltModel, err := store.FindLeadtimeModel(models.ScopeGlobal)
	if err != nil {
		return nil, fmt.Errorf("failed to load lead-time model: %w", err)
	}
	return &ReplenishmentManager{
		store:     store,
		cfg:       cfg,
		rng:       rng,
		suppliers: suppliers,
		ltModel:   ltModel,
	}, nil
}

// ReviewStockLevels samples a fraction of the catalog for review, the
// way a periodic cycle-count desk works, and raises purchase orders for
// anything under the reorder point.
func (m *ReplenishmentManager) ReviewStockLevels(date time.Time, warehouses []models.Warehouse, products []models.Product) error {
	if len(m.suppliers) == 0 {
		return nil
	}

	reviewed := m.sampleForReview(products)
	posCreated := 0

	for i := range warehouses {
		wh := &warehouses[i]
		dock := wh.Dock()
		if dock == nil {
			continue
		}

		for j := range reviewed {
			created, err := m.checkAndReplenish(wh, dock.LocationID, &reviewed[j], date)
			if err != nil {
				return err
			}
			if created {
				posCreated++
			}
		}
	}

	if posCreated > 0 {
		logrus.WithFields(logrus.Fields{
			"pos_created": posCreated,
			"date":        date.Format("2006-01-02"),
		}).Info("replenishment_run_completed")
	}
	return nil
}

func (m *ReplenishmentManager) checkAndReplenish(warehouse *models.Warehouse, locationID uint, product *models.Product, date time.Time) (bool, error) {
	onHand, err := m.currentStock(locationID, product.ProductID)
	if err != nil {
		return false, err
	}
	if onHand >= m.cfg.ReorderPoint {
		return false, nil
	}

	orderQty := m.cfg.TargetLevel - onHand
	if err := m.procure(warehouse, product, orderQty, date); err != nil {
		return false, err
	}
	return true, nil
}

func (m *ReplenishmentManager) currentStock(locationID, productID uint) (float64, error) {
	balance, err := m.store.GetBalance(productID, locationID)
	if err != nil {
		return 0, fmt.Errorf("failed to read stock level: %w", err)
	}
	if balance == nil {
		return 0, nil
	}
	return balance.OnHand, nil
}

// procure writes the linked PO, line, and inbound shipment triple.
func (m *ReplenishmentManager) procure(warehouse *models.Warehouse, product *models.Product, qty float64, date time.Time) error {
	supplier := m.suppliers[m.rng.Intn(len(m.suppliers))]

	po := &models.PurchaseOrder{
		SupplierID:             supplier.SupplierID,
		DestinationWarehouseID: warehouse.WarehouseID,
		Status:                 models.POSubmitted,
		OrderedAt:              date,
	}
	if m.ltModel != nil {
		id := m.ltModel.ModelID
		po.LeadtimeModelID = &id
	}
	if err := m.store.Add(po); err != nil {
		return err
	}

	line := &models.POLine{
		POID:        po.POID,
		ProductID:   product.ProductID,
		QtyOrdered:  qty,
		QtyReceived: 0,
	}
	if err := m.store.Add(line); err != nil {
		return err
	}

	return m.createInboundShipment(po, warehouse, date)
}

// createInboundShipment records the vendor's delivery promise. Arrival
// is shipped date plus a Gaussian lead time floored at the configured
// minimum so nothing arrives before it ships.
func (m *ReplenishmentManager) createInboundShipment(po *models.PurchaseOrder, warehouse *models.Warehouse, date time.Time) error {
	leadDays := int(m.rng.NormFloat64()*m.cfg.LeadTime.StdDevDays + m.cfg.LeadTime.MeanDays)
	if leadDays < m.cfg.LeadTime.MinDays {
		leadDays = m.cfg.LeadTime.MinDays
	}

	poID := po.POID
	destID := warehouse.WarehouseID
	shippedAt := date
	arrivedAt := date.AddDate(0, 0, leadDays)
	shipment := &models.Shipment{
		POID:                   &poID,
		DestinationWarehouseID: &destID,
		Direction:              models.DirectionInbound,
		Status:                 models.ShipmentInTransit,
		ShippedAt:              &shippedAt,
		ArrivedAt:              &arrivedAt,
	}
	return m.store.Add(shipment)
}

func (m *ReplenishmentManager) sampleForReview(products []models.Product) []models.Product {
	k := int(float64(len(products)) * m.cfg.ReviewCatalogFraction)
	if k < 1 {
		k = 1
	}
	if k > len(products) {
		k = len(products)
	}

	perm := m.rng.Perm(len(products))
	reviewed := make([]models.Product, 0, k)
	for _, idx := range perm[:k] {
		reviewed = append(reviewed, products[idx])
	}
	return reviewed
}
