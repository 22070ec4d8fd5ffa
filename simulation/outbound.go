package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

// OutboundManager is the demand side of the simulation. Each tick it
// samples a daily-active subset of the catalog, draws Poisson demand per
// warehouse and product, allocates whatever stock the dock holds, and
// writes the resulting orders, lines, issuances, and shipments.
type OutboundManager struct {
	store  Store
	cfg    *config.OutboundConfig
	rng    *rand.Rand
	ledger *Ledger
}

func NewOutboundManager(store Store, cfg *config.OutboundConfig, rng *rand.Rand) *OutboundManager {
	return &OutboundManager{store: store, cfg: cfg, rng: rng, ledger: NewLedger(store)}
}

// ProcessDailyDemand generates and fulfills the day's orders. Demand is
// drawn only for a sampled fraction of the catalog so most products sit
// quiet on any given day, the way a real sales history looks.
func (m *OutboundManager) ProcessDailyDemand(date time.Time, warehouses []models.Warehouse, products []models.Product) error {
	active := m.sampleActiveProducts(products)
	ordersCreated := 0

	for i := range warehouses {
		for j := range active {
			qtyDemanded := m.poissonDemand(m.cfg.PoissonMean)
			if qtyDemanded <= 0 {
				continue
			}

			created, err := m.processOrder(&warehouses[i], &active[j], float64(qtyDemanded), date)
			if err != nil {
				return err
			}
			if created {
				ordersCreated++
			}
		}
	}

	if ordersCreated > 0 {
		logrus.WithFields(logrus.Fields{
			"date":           date.Format("2006-01-02"),
			"orders_created": ordersCreated,
		}).Info("daily_demand_processed")
	}
	return nil
}

// processOrder runs the fulfillment workflow for one warehouse/product
// pair. An order header and line are written even when nothing ships,
// so lost sales stay visible in the dataset. Returns whether an order
// was created.
func (m *OutboundManager) processOrder(warehouse *models.Warehouse, product *models.Product, qtyOrdered float64, date time.Time) (bool, error) {
	dock := warehouse.Dock()
	if dock == nil {
		return false, nil
	}

	available, err := m.availableStock(dock, product)
	if err != nil {
		return false, err
	}
	qtyToShip := math.Min(qtyOrdered, available)

	order, err := m.createOrder(warehouse, qtyToShip)
	if err != nil {
		return false, err
	}
	if err := m.createOrderLine(order, product, qtyOrdered, qtyToShip); err != nil {
		return false, err
	}

	if qtyToShip > 0 {
		if err := m.shipOrder(warehouse, dock, product, order, qtyToShip, date); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (m *OutboundManager) availableStock(dock *models.Location, product *models.Product) (float64, error) {
	balance, err := m.store.GetBalance(product.ProductID, dock.LocationID)
	if err != nil {
		return 0, fmt.Errorf("failed to check stock availability: %w", err)
	}
	if balance == nil {
		return 0, nil
	}
	return balance.OnHand, nil
}

// createOrder writes the order header. The status reflects whether any
// stock could be allocated at all.
func (m *OutboundManager) createOrder(warehouse *models.Warehouse, allocated float64) (*models.Order, error) {
	status := models.OrderShipped
	if allocated <= 0 {
		status = models.OrderCancelled
	}

	region := warehouse.Region
	order := &models.Order{
		CustomerName:            m.cfg.CustomerNames[m.rng.Intn(len(m.cfg.CustomerNames))],
		Status:                  status,
		RequestedShipFromRegion: &region,
	}
	if err := m.store.Add(order); err != nil {
		return nil, err
	}
	return order, nil
}

// createOrderLine writes the detail line, pricing the shortfall between
// ordered and allocated as a lost-sale penalty.
func (m *OutboundManager) createOrderLine(order *models.Order, product *models.Product, ordered, allocated float64) error {
	line := &models.OrderLine{
		OrderID:             order.OrderID,
		ProductID:           product.ProductID,
		QtyOrdered:          ordered,
		QtyAllocated:        allocated,
		QtyShipped:          allocated,
		ServiceLevelPenalty: (ordered - allocated) * m.cfg.MissedSalePenaltyPerUnit,
	}
	return m.store.Add(line)
}

// shipOrder deducts the stock from the dock and opens the outbound
// shipment. Only called when something was allocated.
func (m *OutboundManager) shipOrder(warehouse *models.Warehouse, dock *models.Location, product *models.Product, order *models.Order, qty float64, date time.Time) error {
	cmd := MovementCommand{
		Location:  dock,
		ProductID: product.ProductID,
		Qty:       qty,
		Date:      date,
		RefID:     order.OrderID,
	}
	if err := m.ledger.RecordIssuance(cmd); err != nil {
		return fmt.Errorf("failed to issue order %d: %w", order.OrderID, err)
	}

	originID := warehouse.WarehouseID
	orderID := order.OrderID
	shippedAt := date
	shipment := &models.Shipment{
		OrderID:           &orderID,
		OriginWarehouseID: &originID,
		Direction:         models.DirectionOutbound,
		Status:            models.ShipmentInTransit,
		ShippedAt:         &shippedAt,
	}
	return m.store.Add(shipment)
}

// sampleActiveProducts picks the day's active slice of the catalog,
// always at least one product.
func (m *OutboundManager) sampleActiveProducts(products []models.Product) []models.Product {
	k := int(float64(len(products)) * m.cfg.ActiveCatalogFraction)
	if k < 1 {
		k = 1
	}
	if k > len(products) {
		k = len(products)
	}

	perm := m.rng.Perm(len(products))
	active := make([]models.Product, 0, k)
	for _, idx := range perm[:k] {
		active = append(active, products[idx])
	}
	return active
}

// poissonDemand draws from a Poisson distribution by Knuth's inversion.
func (m *OutboundManager) poissonDemand(mean float64) int {
	limit := math.Exp(-mean)
	k := 0
	p := 1.0
	for p > limit {
		k++
		p *= m.rng.Float64()
	}
	return k - 1
}
