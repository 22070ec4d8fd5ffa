package simulation

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/logisticsim/config"
	"github.com/logisticsim/models"
)

// catalogBuilder generates the product catalog and the supplier roster.
type catalogBuilder struct {
	store Store
	cfg   *config.CatalogConfig
	rng   *rand.Rand
	fake  *gofakeit.Faker
}

func newCatalogBuilder(store Store, cfg *config.CatalogConfig, rng *rand.Rand, fake *gofakeit.Faker) *catalogBuilder {
	return &catalogBuilder{store: store, cfg: cfg, rng: rng, fake: fake}
}

// createProducts generates count products with faker names and SKUs that
// embed a running index so they stay unique regardless of the name pool.
func (b *catalogBuilder) createProducts(count int) ([]models.Product, error) {
	products := make([]models.Product, 0, count)

	for i := 0; i < count; i++ {
		category := b.cfg.Categories[i%len(b.cfg.Categories)]
		shelf := b.cfg.ShelfLifeFor(category)
		shelfLife := shelf.MinDays
		if shelf.MaxDays > shelf.MinDays {
			shelfLife += b.rng.Intn(shelf.MaxDays - shelf.MinDays + 1)
		}

		p := models.Product{
			SKU:           b.makeSKU(category, i),
			Name:          b.fake.ProductName(),
			Category:      category,
			ShelfLifeDays: &shelfLife,
		}
		if err := b.store.Add(&p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// createSuppliers generates count suppliers with company names. The index
// suffix keeps names unique when the faker pool repeats.
func (b *catalogBuilder) createSuppliers(count int) ([]models.Supplier, error) {
	suppliers := make([]models.Supplier, 0, count)

	for i := 0; i < count; i++ {
		s := models.Supplier{
			Name:             fmt.Sprintf("%s %03d", b.fake.Company(), i+1),
			Region:           b.cfg.SupplierRegions[i%len(b.cfg.SupplierRegions)],
			ReliabilityScore: b.cfg.ReliabilityMin + b.rng.Float64()*(b.cfg.ReliabilityMax-b.cfg.ReliabilityMin),
		}
		if err := b.store.Add(&s); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}

	return suppliers, nil
}

// makeSKU builds a SKU like "ELE-4817-0042" from the category prefix,
// a random block, and the product's index.
func (b *catalogBuilder) makeSKU(category string, index int) string {
	prefix := strings.ToUpper(category)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%04d-%04d", prefix, b.rng.Intn(10000), index+1)
}
