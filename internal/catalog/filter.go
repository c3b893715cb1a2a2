package catalog

import "github.com/amansinghakash/legacy-battery/internal/domain"

// SelectorAll is the sentinel filter value meaning "no constraint" for a
// catalog dimension.
const SelectorAll = "All"

// FilterProducts narrows products by category, capacity label and voltage
// label. A product is kept only when every non-"All" selector matches the
// corresponding field exactly. Order is preserved; the input is never
// modified.
func FilterProducts(products []*domain.Product, category, capacity, voltage string) []*domain.Product {
	filtered := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if category != SelectorAll && p.Category.String() != category {
			continue
		}
		if capacity != SelectorAll && p.Capacity != capacity {
			continue
		}
		if voltage != SelectorAll && p.Voltage != voltage {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Categories lists the selectable category values, "All" first.
func Categories() []string {
	return []string{SelectorAll, "EV", "Solar", "Industrial", "Home"}
}

// Capacities lists the selectable capacity labels, "All" first.
func Capacities() []string {
	return []string{SelectorAll, "5 kWh", "10 kWh", "15 kWh", "30 kWh", "60 kWh", "100 kWh", "200 kWh", "500 kWh"}
}

// Voltages lists the selectable voltage labels, "All" first.
func Voltages() []string {
	return []string{SelectorAll, "24V", "48V", "96V", "350V", "400V", "800V", "1000V"}
}
