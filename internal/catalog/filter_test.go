package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

func seedPointers() []*domain.Product {
	seed := SeedProducts()
	out := make([]*domain.Product, len(seed))
	for i := range seed {
		out[i] = &seed[i]
	}
	return out
}

func TestFilterProducts_AllSelectorsReturnFullInput(t *testing.T) {
	products := seedPointers()

	filtered := FilterProducts(products, SelectorAll, SelectorAll, SelectorAll)

	require.Len(t, filtered, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, filtered[i].ID, "order must be preserved")
	}
}

func TestFilterProducts_ByCategory(t *testing.T) {
	products := seedPointers()

	filtered := FilterProducts(products, "Solar", SelectorAll, SelectorAll)

	require.Len(t, filtered, 2)
	assert.Equal(t, "lp-solar-15", filtered[0].ID)
	assert.Equal(t, "lp-solar-30", filtered[1].ID)
}

func TestFilterProducts_CombinedSelectors(t *testing.T) {
	products := seedPointers()

	// Two products share the 48V label; capacity narrows it to one.
	filtered := FilterProducts(products, SelectorAll, "10 kWh", "48V")

	require.Len(t, filtered, 1)
	assert.Equal(t, "lp-home-10", filtered[0].ID)
}

func TestFilterProducts_NoMatchReturnsEmpty(t *testing.T) {
	products := seedPointers()

	filtered := FilterProducts(products, "EV", "5 kWh", SelectorAll)

	assert.Empty(t, filtered)
	assert.NotNil(t, filtered)
}

func TestFilterProducts_Idempotent(t *testing.T) {
	products := seedPointers()

	once := FilterProducts(products, "Industrial", SelectorAll, SelectorAll)
	twice := FilterProducts(once, "Industrial", SelectorAll, SelectorAll)

	assert.Equal(t, once, twice)
}

func TestFilterProducts_DoesNotMutateInput(t *testing.T) {
	products := seedPointers()
	before := make([]string, len(products))
	for i, p := range products {
		before[i] = p.ID
	}

	FilterProducts(products, "Home", SelectorAll, "24V")

	for i, p := range products {
		assert.Equal(t, before[i], p.ID)
	}
}

func TestSelectorLists_CoverSeedDataset(t *testing.T) {
	capacities := Capacities()
	voltages := Voltages()
	categories := Categories()

	for _, p := range SeedProducts() {
		assert.Contains(t, categories, p.Category.String())
		assert.Contains(t, capacities, p.Capacity)
		assert.Contains(t, voltages, p.Voltage)
	}
}
