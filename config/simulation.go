package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulation is the root of the simulation parameter tree. Every knob the
// generator exposes lives here so a run is fully described by one document
// plus a seed.
type Simulation struct {
	Seed           int64 `yaml:"seed"`
	DefaultDays    int   `yaml:"default_days"`
	CommitInterval int   `yaml:"commit_interval"`

	World         WorldConfig         `yaml:"world"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Layout        LayoutConfig        `yaml:"layout"`
	Logistics     LogisticsConfig     `yaml:"logistics"`
	Outbound      OutboundConfig      `yaml:"outbound"`
	Replenishment ReplenishmentConfig `yaml:"replenishment"`
	Sensors       SensorsConfig       `yaml:"sensors"`
}

// WorldConfig sets the static world entity counts.
type WorldConfig struct {
	WarehouseCount int `yaml:"warehouse_count"`
	ProductCount   int `yaml:"product_count"`
	SupplierCount  int `yaml:"supplier_count"`
}

// ShelfLifeRange bounds shelf life in days for one product category.
type ShelfLifeRange struct {
	MinDays int `yaml:"min_days"`
	MaxDays int `yaml:"max_days"`
}

// CatalogConfig drives product and supplier generation.
type CatalogConfig struct {
	Categories        []string                  `yaml:"categories"`
	CategoryShelfLife map[string]ShelfLifeRange `yaml:"category_shelf_life"`
	SupplierRegions   []string                  `yaml:"supplier_regions"`
	ReliabilityMin    float64                   `yaml:"reliability_min"`
	ReliabilityMax    float64                   `yaml:"reliability_max"`
}

// CapacityRange bounds the capacity of generated locations.
type CapacityRange struct {
	CapacityMin int `yaml:"capacity_min"`
	CapacityMax int `yaml:"capacity_max"`
}

// CountCapacityRange adds a count range on top of a capacity range.
type CountCapacityRange struct {
	CountMin    int `yaml:"count_min"`
	CountMax    int `yaml:"count_max"`
	CapacityMin int `yaml:"capacity_min"`
	CapacityMax int `yaml:"capacity_max"`
}

// SensorProfile parameterizes one device type. Cameras are configured
// noisier than RFID readers here, not inside the sensor manager.
type SensorProfile struct {
	Weight     float64 `yaml:"weight"`
	NoiseMin   float64 `yaml:"noise_min"`
	NoiseMax   float64 `yaml:"noise_max"`
	MissingMin float64 `yaml:"missing_min"`
	MissingMax float64 `yaml:"missing_max"`
}

// SensorAttachConfig controls how sensors are sprinkled over the layout.
type SensorAttachConfig struct {
	AttachProbability float64       `yaml:"attach_probability"`
	Camera            SensorProfile `yaml:"camera"`
	RFID              SensorProfile `yaml:"rfid"`
}

// LayoutConfig shapes the physical layout inside each warehouse.
type LayoutConfig struct {
	Dock   CapacityRange      `yaml:"dock"`
	Zone   CountCapacityRange `yaml:"zone"`
	Aisle  CountCapacityRange `yaml:"aisle"`
	Sensor SensorAttachConfig `yaml:"sensor"`
}

// LeadtimeParams is one lead-time model's parameter triple.
type LeadtimeParams struct {
	P1               float64 `yaml:"p1"`
	P2               float64 `yaml:"p2"`
	PRareDelay       float64 `yaml:"p_rare_delay"`
	RareDelayAddDays float64 `yaml:"rare_delay_add_days"`
}

// LogisticsConfig drives the route mesh and its timing models.
type LogisticsConfig struct {
	Express  LeadtimeParams `yaml:"express"`
	Standard LeadtimeParams `yaml:"standard"`
	Ocean    LeadtimeParams `yaml:"ocean"`

	DistanceMinKM int `yaml:"distance_min_km"`
	DistanceMaxKM int `yaml:"distance_max_km"`
	TruckMaxKM    int `yaml:"truck_max_km"`
	AirMaxKM      int `yaml:"air_max_km"`
}

// OutboundConfig drives daily demand generation.
type OutboundConfig struct {
	ActiveCatalogFraction    float64  `yaml:"active_catalog_fraction"`
	PoissonMean              float64  `yaml:"poisson_mean"`
	MissedSalePenaltyPerUnit float64  `yaml:"missed_sale_penalty_per_unit"`
	CustomerNames            []string `yaml:"customer_names"`
}

// LeadTimeConfig is the stochastic transit time used for replenishment POs.
type LeadTimeConfig struct {
	MeanDays   float64 `yaml:"mean_days"`
	StdDevDays float64 `yaml:"std_dev_days"`
	MinDays    int     `yaml:"min_days"`
}

// ReplenishmentConfig drives the (s,S) review process.
type ReplenishmentConfig struct {
	ReviewCatalogFraction float64        `yaml:"review_catalog_fraction"`
	ReorderPoint          float64        `yaml:"reorder_point"`
	TargetLevel           float64        `yaml:"target_level"`
	LeadTime              LeadTimeConfig `yaml:"lead_time"`
}

// ScanProbabilities sets how often a balance row is scanned per day,
// keyed by location type. Docks see far more scanner traffic than storage.
type ScanProbabilities struct {
	Dock    float64 `yaml:"dock"`
	Default float64 `yaml:"default"`
}

// NoiseModelConfig bounds the sensor noise arithmetic.
type NoiseModelConfig struct {
	MinSigmaUnits   float64 `yaml:"min_sigma_units"`
	NoiseMean       float64 `yaml:"noise_mean"`
	MinObservedQty  float64 `yaml:"min_observed_qty"`
	BaseConfidence  float64 `yaml:"base_confidence"`
	MinConfidence   float64 `yaml:"min_confidence"`
	NoiseMultiplier float64 `yaml:"noise_multiplier"`
}

// SensorsConfig drives the observation layer.
type SensorsConfig struct {
	ScanProbabilities ScanProbabilities `yaml:"scan_probabilities"`
	NoiseModel        NoiseModelConfig  `yaml:"noise_model"`
}

// DefaultSimulation returns the built-in parameter set. A YAML file only
// needs to override what it changes.
func DefaultSimulation() *Simulation {
	return &Simulation{
		Seed:           42,
		DefaultDays:    365,
		CommitInterval: 10,
		World: WorldConfig{
			WarehouseCount: 3,
			ProductCount:   50,
			SupplierCount:  5,
		},
		Catalog: CatalogConfig{
			Categories: []string{"Electronics", "Food", "Pharmacy", "Clothing", "Home"},
			CategoryShelfLife: map[string]ShelfLifeRange{
				"Food":    {MinDays: 3, MaxDays: 14},
				"default": {MinDays: 180, MaxDays: 720},
			},
			SupplierRegions: []string{"NA-EAST", "EU-WEST", "APAC-SG", "NA-WEST", "EU-CENTRAL"},
			ReliabilityMin:  0.7,
			ReliabilityMax:  0.99,
		},
		Layout: LayoutConfig{
			Dock:  CapacityRange{CapacityMin: 5000, CapacityMax: 10000},
			Zone:  CountCapacityRange{CountMin: 2, CountMax: 5, CapacityMin: 2000, CapacityMax: 8000},
			Aisle: CountCapacityRange{CountMin: 3, CountMax: 8, CapacityMin: 100, CapacityMax: 500},
			Sensor: SensorAttachConfig{
				AttachProbability: 0.2,
				Camera:            SensorProfile{Weight: 0.6, NoiseMin: 0.05, NoiseMax: 0.15, MissingMin: 0.05, MissingMax: 0.20},
				RFID:              SensorProfile{Weight: 0.4, NoiseMin: 0.01, NoiseMax: 0.03, MissingMin: 0.00, MissingMax: 0.02},
			},
		},
		Logistics: LogisticsConfig{
			Express:       LeadtimeParams{P1: 2, P2: 0.5, PRareDelay: 0.01, RareDelayAddDays: 2},
			Standard:      LeadtimeParams{P1: 5, P2: 1.5, PRareDelay: 0.03, RareDelayAddDays: 4},
			Ocean:         LeadtimeParams{P1: 2.8, P2: 0.4, PRareDelay: 0.08, RareDelayAddDays: 14},
			DistanceMinKM: 50,
			DistanceMaxKM: 12000,
			TruckMaxKM:    800,
			AirMaxKM:      5000,
		},
		Outbound: OutboundConfig{
			ActiveCatalogFraction:    0.2,
			PoissonMean:              2.0,
			MissedSalePenaltyPerUnit: 10.0,
			CustomerNames: []string{
				"Acme Retail", "Globex Stores", "Initech Supply",
				"Umbrella Mart", "Stark Wholesale", "Wayne Distribution",
			},
		},
		Replenishment: ReplenishmentConfig{
			ReviewCatalogFraction: 0.10,
			ReorderPoint:          20,
			TargetLevel:           100,
			LeadTime:              LeadTimeConfig{MeanDays: 4, StdDevDays: 1.5, MinDays: 1},
		},
		Sensors: SensorsConfig{
			ScanProbabilities: ScanProbabilities{Dock: 0.90, Default: 0.05},
			NoiseModel: NoiseModelConfig{
				MinSigmaUnits:   1.0,
				NoiseMean:       0.0,
				MinObservedQty:  0.0,
				BaseConfidence:  1.0,
				MinConfidence:   0.1,
				NoiseMultiplier: 10.0,
			},
		},
	}
}

// LoadSimulation reads a YAML file over the defaults. An empty path
// returns the defaults unchanged.
func LoadSimulation(path string) (*Simulation, error) {
	cfg := DefaultSimulation()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects parameter combinations the simulation cannot run with.
func (s *Simulation) Validate() error {
	switch {
	case s.DefaultDays <= 0:
		return fmt.Errorf("default_days must be positive, got %d", s.DefaultDays)
	case s.CommitInterval <= 0:
		return fmt.Errorf("commit_interval must be positive, got %d", s.CommitInterval)
	case s.Outbound.ActiveCatalogFraction <= 0 || s.Outbound.ActiveCatalogFraction > 1:
		return fmt.Errorf("outbound.active_catalog_fraction must be in (0,1], got %g", s.Outbound.ActiveCatalogFraction)
	case s.Replenishment.ReviewCatalogFraction <= 0 || s.Replenishment.ReviewCatalogFraction > 1:
		return fmt.Errorf("replenishment.review_catalog_fraction must be in (0,1], got %g", s.Replenishment.ReviewCatalogFraction)
	case s.Outbound.PoissonMean <= 0:
		return fmt.Errorf("outbound.poisson_mean must be positive, got %g", s.Outbound.PoissonMean)
	case s.Outbound.MissedSalePenaltyPerUnit < 0:
		return fmt.Errorf("outbound.missed_sale_penalty_per_unit must be non-negative, got %g", s.Outbound.MissedSalePenaltyPerUnit)
	case s.Replenishment.TargetLevel <= s.Replenishment.ReorderPoint:
		return fmt.Errorf("replenishment.target_level (%g) must exceed reorder_point (%g)",
			s.Replenishment.TargetLevel, s.Replenishment.ReorderPoint)
	case s.Replenishment.LeadTime.MinDays < 1:
		return fmt.Errorf("replenishment.lead_time.min_days must be at least 1, got %d", s.Replenishment.LeadTime.MinDays)
	case s.World.WarehouseCount < 1 || s.World.ProductCount < 1 || s.World.SupplierCount < 1:
		return fmt.Errorf("world counts must all be at least 1")
	case len(s.Catalog.Categories) == 0:
		return fmt.Errorf("catalog.categories must not be empty")
	case len(s.Catalog.SupplierRegions) == 0:
		return fmt.Errorf("catalog.supplier_regions must not be empty")
	case len(s.Outbound.CustomerNames) == 0:
		return fmt.Errorf("outbound.customer_names must not be empty")
	}
	return nil
}

// ShelfLifeFor returns the shelf-life range for a category, falling back
// to the "default" entry.
func (c *CatalogConfig) ShelfLifeFor(category string) ShelfLifeRange {
	if r, ok := c.CategoryShelfLife[category]; ok {
		return r
	}
	return c.CategoryShelfLife["default"]
}
