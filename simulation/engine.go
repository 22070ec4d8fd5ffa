package simulation

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

// TickContext carries the state a stage needs to execute one day.
type TickContext struct {
	Date       time.Time
	Warehouses []models.Warehouse
	Products   []models.Product
	Suppliers  []models.Supplier
}

// stage is one named step of the daily cycle.
type stage struct {
	name string
	run  func(ctx *TickContext) error
}

// Engine advances simulated time one day at a time. The stage order is
// fixed for causality: shipments arrive before customers order, the
// purchasing desk reviews the post-sales position, and sensors record
// the final state of the day.
type Engine struct {
	stages []stage
}

// NewEngine wires the four daily stages over their managers. Each
// subsystem draws from its own seeded stream so reordering one never
// perturbs the others.
func NewEngine(store Store, cfg *config.Simulation, rngs *RNGSet, suppliers []models.Supplier) (*Engine, error) {
	inbound := NewInboundManager(store)
	outbound := NewOutboundManager(store, &cfg.Outbound, rngs.ForSubsystem(SubsystemOutbound))
	replenishment, err := NewReplenishmentManager(store, &cfg.Replenishment, rngs.ForSubsystem(SubsystemReplenishment), suppliers)
	if err != nil {
		return nil, err
	}
	sensors := NewSensorManager(store, &cfg.Sensors, rngs.ForSubsystem(SubsystemSensors))

	return &Engine{
		stages: []stage{
			{"inbound", func(ctx *TickContext) error {
				return inbound.ProcessDailyArrivals(ctx.Date, ctx.Warehouses)
			}},
			{"outbound", func(ctx *TickContext) error {
				return outbound.ProcessDailyDemand(ctx.Date, ctx.Warehouses, ctx.Products)
			}},
			{"replenishment", func(ctx *TickContext) error {
				return replenishment.ReviewStockLevels(ctx.Date, ctx.Warehouses, ctx.Products)
			}},
			{"sensors", func(ctx *TickContext) error {
				return sensors.GenerateDailyObservations(ctx.Date, ctx.Warehouses)
			}},
		},
	}, nil
}

// Tick runs every stage in order for one simulated day. The first stage
// failure aborts the tick.
func (e *Engine) Tick(ctx *TickContext) error {
	logrus.WithField("date", ctx.Date.Format("2006-01-02")).Debug("tick_started")

	for _, s := range e.stages {
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("%s stage failed on %s: %w", s.name, ctx.Date.Format("2006-01-02"), err)
		}
	}
	return nil
}
