package simulation

import (
	"math/rand"
	"time"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

// logisticsBuilder creates the lead-time models and the warehouse route
// mesh. Transport mode follows distance: short hops go by truck, medium
// by air, and anything beyond the air cutoff by sea.
type logisticsBuilder struct {
	store Store
	cfg   *config.LogisticsConfig
	rng   *rand.Rand
}

func newLogisticsBuilder(store Store, cfg *config.LogisticsConfig, rng *rand.Rand) *logisticsBuilder {
	return &logisticsBuilder{store: store, cfg: cfg, rng: rng}
}

// createGlobalLeadtimeModels persists the three canonical timing models.
// The returned order is Express, Standard, Ocean; connectWarehouses
// relies on it when picking a model per route.
func (b *logisticsBuilder) createGlobalLeadtimeModels() ([]models.LeadtimeModel, error) {
	now := time.Now().UTC()
	specs := []struct {
		family models.DistFamily
		params config.LeadtimeParams
	}{
		{models.DistNormal, b.cfg.Express},
		{models.DistNormal, b.cfg.Standard},
		{models.DistLognormal, b.cfg.Ocean},
	}

	ltModels := make([]models.LeadtimeModel, 0, len(specs))
	for _, spec := range specs {
		m := models.LeadtimeModel{
			Scope:            models.ScopeGlobal,
			DistFamily:       spec.family,
			P1:               spec.params.P1,
			P2:               spec.params.P2,
			PRareDelay:       spec.params.PRareDelay,
			RareDelayAddDays: spec.params.RareDelayAddDays,
			FittedAt:         now,
		}
		if err := b.store.Add(&m); err != nil {
			return nil, err
		}
		ltModels = append(ltModels, m)
	}

	return ltModels, nil
}

// connectWarehouses builds a full directed mesh: one route per ordered
// warehouse pair. Distances are drawn uniformly and the mode, and with
// it the lead-time model, follows the distance cutoffs.
func (b *logisticsBuilder) connectWarehouses(warehouses []models.Warehouse, ltModels []models.LeadtimeModel) ([]models.Route, error) {
	routes := make([]models.Route, 0, len(warehouses)*(len(warehouses)-1))

	for i := range warehouses {
		for j := range warehouses {
			if i == j {
				continue
			}

			distance := float64(b.cfg.DistanceMinKM + b.rng.Intn(b.cfg.DistanceMaxKM-b.cfg.DistanceMinKM+1))
			mode, model := b.modeFor(distance, ltModels)

			modelID := model.ModelID
			route := models.Route{
				OriginWarehouseID:      warehouses[i].WarehouseID,
				DestinationWarehouseID: warehouses[j].WarehouseID,
				Mode:                   mode,
				DistanceKM:             distance,
				LeadtimeModelID:        &modelID,
			}
			if err := b.store.Add(&route); err != nil {
				return nil, err
			}
			routes = append(routes, route)
		}
	}

	return routes, nil
}

func (b *logisticsBuilder) modeFor(distance float64, ltModels []models.LeadtimeModel) (models.TransportMode, models.LeadtimeModel) {
	switch {
	case distance < float64(b.cfg.TruckMaxKM):
		return models.ModeTruck, ltModels[1]
	case distance < float64(b.cfg.AirMaxKM):
		return models.ModeAir, ltModels[0]
	default:
		return models.ModeSea, ltModels[2]
	}
}
