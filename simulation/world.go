package simulation

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

// WorldBuilder constructs the static reference graph the simulation runs
// over: physical infrastructure, the product catalog, the supplier base,
// and the logistics network. It runs exactly once, before the first tick,
// and the entities it creates are treated as immutable afterwards.
type WorldBuilder struct {
	store Store
	cfg   *config.Simulation

	// State containers for generated entities
	Warehouses     []models.Warehouse
	Products       []models.Product
	Suppliers      []models.Supplier
	Routes         []models.Route
	LeadtimeModels []models.LeadtimeModel

	infra     *infrastructureBuilder
	catalog   *catalogBuilder
	logistics *logisticsBuilder
}

// NewWorldBuilder wires the specialized sub-builders. All randomness is
// derived from the set's root seed so world generation is reproducible.
func NewWorldBuilder(store Store, cfg *config.Simulation, rngs *RNGSet) *WorldBuilder {
	fake := gofakeit.New(uint64(rngs.Seed()))

	return &WorldBuilder{
		store:     store,
		cfg:       cfg,
		infra:     newInfrastructureBuilder(store, &cfg.Layout, rngs.ForSubsystem(SubsystemWorld)),
		catalog:   newCatalogBuilder(store, &cfg.Catalog, rngs.ForSubsystem(SubsystemWorld), fake),
		logistics: newLogisticsBuilder(store, &cfg.Logistics, rngs.ForSubsystem(SubsystemLogistics)),
	}
}

// BuildAll executes the build steps in the order required by foreign key
// constraints: infrastructure first, then catalog, then the route mesh
// connecting the infrastructure.
func (w *WorldBuilder) BuildAll() error {
	var err error

	if w.Warehouses, err = w.infra.createWarehouses(w.cfg.World.WarehouseCount); err != nil {
		return fmt.Errorf("failed to build warehouses: %w", err)
	}
	logrus.WithField("count", len(w.Warehouses)).Info("warehouses_built")

	if w.Products, err = w.catalog.createProducts(w.cfg.World.ProductCount); err != nil {
		return fmt.Errorf("failed to build products: %w", err)
	}
	logrus.WithField("count", len(w.Products)).Info("products_built")

	if w.Suppliers, err = w.catalog.createSuppliers(w.cfg.World.SupplierCount); err != nil {
		return fmt.Errorf("failed to build suppliers: %w", err)
	}
	logrus.WithField("count", len(w.Suppliers)).Info("suppliers_built")

	if w.LeadtimeModels, err = w.logistics.createGlobalLeadtimeModels(); err != nil {
		return fmt.Errorf("failed to build leadtime models: %w", err)
	}
	if w.Routes, err = w.logistics.connectWarehouses(w.Warehouses, w.LeadtimeModels); err != nil {
		return fmt.Errorf("failed to build routes: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"routes":          len(w.Routes),
		"leadtime_models": len(w.LeadtimeModels),
		"nodes_connected": len(w.Warehouses),
	}).Info("logistics_network_built")

	return nil
}
