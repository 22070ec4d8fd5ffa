package simulation

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

// Runner orchestrates the two-phase generation pipeline: build the
// static world, then run the historical day loop over it. It owns the
// store's transaction lifecycle, committing in batches and rolling back
// on the first failure.
type Runner struct {
	store Store
	cfg   *config.Simulation
	rngs  *RNGSet

	world *WorldBuilder
}

func NewRunner(store Store, cfg *config.Simulation) *Runner {
	return &Runner{
		store: store,
		cfg:   cfg,
		rngs:  NewRNGSet(cfg.Seed),
	}
}

// Run executes the full pipeline for the given number of historical
// days. On any error the open transaction is rolled back so a failed
// run leaves no partial batch behind.
func (r *Runner) Run(days int) error {
	if days <= 0 {
		days = r.cfg.DefaultDays
	}

	if err := r.buildWorld(); err != nil {
		return r.fail(err)
	}
	if err := r.simulateHistory(days); err != nil {
		return r.fail(err)
	}

	r.logSummary()
	logrus.WithField("total_days", days).Info("seed_generation_success")
	return nil
}

// logSummary reports the size of the generated dataset per table.
func (r *Runner) logSummary() {
	tables := []struct {
		name  string
		model any
	}{
		{"orders", &models.Order{}},
		{"purchase_orders", &models.PurchaseOrder{}},
		{"shipments", &models.Shipment{}},
		{"inventory_moves", &models.InventoryMove{}},
		{"observations", &models.Observation{}},
	}

	fields := logrus.Fields{}
	for _, table := range tables {
		n, err := r.store.Count(table.model)
		if err != nil {
			logrus.WithError(err).WithField("table", table.name).Warn("summary_count_failed")
			continue
		}
		fields[table.name] = n
	}
	logrus.WithFields(fields).Info("generation_summary")
}

// buildWorld runs phase 1 and commits it separately, so the static
// world survives even if the history phase dies on day one.
func (r *Runner) buildWorld() error {
	logrus.Info("phase_1_static_build_started")

	r.world = NewWorldBuilder(r.store, r.cfg, r.rngs)
	if err := r.world.BuildAll(); err != nil {
		return err
	}
	if err := r.store.Commit(); err != nil {
		return fmt.Errorf("failed to commit static world: %w", err)
	}

	logrus.Info("phase_1_static_build_completed")
	return nil
}

// simulateHistory runs phase 2: the day loop from (today - days) up to
// and including today, committing every CommitInterval ticks.
func (r *Runner) simulateHistory(days int) error {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	logrus.WithFields(logrus.Fields{
		"days":  days,
		"start": start.Format("2006-01-02"),
	}).Info("phase_2_simulation_started")

	engine, err := NewEngine(r.store, r.cfg, r.rngs, r.world.Suppliers)
	if err != nil {
		return err
	}

	ticks := 0
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		ctx := &TickContext{
			Date:       date,
			Warehouses: r.world.Warehouses,
			Products:   r.world.Products,
			Suppliers:  r.world.Suppliers,
		}
		if err := engine.Tick(ctx); err != nil {
			return err
		}

		if ticks%r.cfg.CommitInterval == 0 {
			if err := r.store.Commit(); err != nil {
				return fmt.Errorf("failed to commit batch at tick %d: %w", ticks, err)
			}
			logrus.WithField("progress", fmt.Sprintf("%d/%d", ticks, days)).Info("simulation_progress")
		}
		ticks++
	}

	if err := r.store.Commit(); err != nil {
		return fmt.Errorf("failed to commit final batch: %w", err)
	}
	return nil
}

func (r *Runner) fail(err error) error {
	logrus.WithError(err).Error("seed_generation_failed")
	if rbErr := r.store.Rollback(); rbErr != nil {
		logrus.WithError(rbErr).Warn("rollback_failed")
	}
	return err
}
