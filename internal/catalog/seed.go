package catalog

import "github.com/amansinghakash/legacy-battery/internal/domain"

// Seed dataset for the Legacy Power storefront. Products are read-only;
// repositories hand out copies so callers can never mutate the catalog.

var seedProducts = []domain.Product{
	{
		ID:            "lp-ev-100",
		Name:          "Legacy Power EV-100",
		Category:      domain.CategoryEV,
		Capacity:      "100 kWh",
		Voltage:       "400V",
		Price:         12999,
		OriginalPrice: 14999,
		Discount:      13,
		Description:   "Premium lithium-ion battery designed for high-performance electric vehicles. Features rapid charging and exceptional longevity.",
		Features: []string{
			"Ultra-fast charging (0-80% in 25 minutes)",
			"2000+ charge cycles",
			"Advanced thermal management",
			"Intelligent BMS (Battery Management System)",
			"Carbon fiber reinforced casing",
			"Regenerative braking optimization",
		},
		Specs: domain.ProductSpecs{
			Capacity:     "100 kWh",
			Voltage:      "400V DC",
			Chemistry:    "NMC 811 Lithium-Ion",
			CycleLife:    "2000+ cycles (80% capacity retention)",
			ChargingTime: "25 minutes (10-80% with DC fast charging)",
			Weight:       "450 kg",
			Dimensions:   "1200 × 800 × 150 mm",
			Temperature:  "-20°C to 60°C",
			Warranty:     "8 years / 160,000 km",
		},
		Applications: []string{"Electric Vehicles", "High-Performance EVs", "Electric Trucks", "Commercial Fleet"},
		InStock:      true,
		IsNew:        true,
	},
	{
		ID:          "lp-ev-60",
		Name:        "Legacy Power EV-60",
		Category:    domain.CategoryEV,
		Capacity:    "60 kWh",
		Voltage:     "350V",
		Price:       7999,
		Description: "Compact and efficient battery solution for urban electric vehicles and compact cars.",
		Features: []string{
			"Fast charging capability",
			"1800+ charge cycles",
			"Lightweight design",
			"Smart thermal control",
			"Modular architecture",
			"OTA update compatible",
		},
		Specs: domain.ProductSpecs{
			Capacity:     "60 kWh",
			Voltage:      "350V DC",
			Chemistry:    "LFP Lithium-Ion",
			CycleLife:    "1800+ cycles",
			ChargingTime: "35 minutes (10-80%)",
			Weight:       "280 kg",
			Dimensions:   "900 × 700 × 120 mm",
			Temperature:  "-15°C to 55°C",
			Warranty:     "6 years / 120,000 km",
		},
		Applications: []string{"Compact EVs", "Urban Mobility", "City Cars", "Hybrid Vehicles"},
		InStock:      true,
	},
	{
		ID:          "lp-solar-15",
		Name:        "Legacy Solar Pro 15",
		Category:    domain.CategorySolar,
		Capacity:    "15 kWh",
		Voltage:     "48V",
		Price:       3499,
		Description: "Premium home energy storage system designed for residential solar installations.",
		Features: []string{
			"Deep discharge protection",
			"6000+ charge cycles",
			"Solar inverter compatible",
			"Grid-tie ready",
			"Mobile app monitoring",
			"Weather-resistant enclosure",
		},
		Specs: domain.ProductSpecs{
			Capacity:     "15 kWh",
			Voltage:      "48V DC",
			Chemistry:    "LiFePO4",
			CycleLife:    "6000+ cycles (90% DoD)",
			ChargingTime: "3-4 hours (solar)",
			Weight:       "95 kg",
			Dimensions:   "650 × 450 × 200 mm",
			Temperature:  "-10°C to 50°C",
			Warranty:     "10 years",
		},
		Applications: []string{"Residential Solar", "Off-Grid Systems", "Backup Power", "Energy Independence"},
		InStock:      true,
		IsNew:        true,
	},
	{
		ID:            "lp-solar-30",
		Name:          "Legacy Solar Ultra 30",
		Category:      domain.CategorySolar,
		Capacity:      "30 kWh",
		Voltage:       "96V",
		Price:         6299,
		OriginalPrice: 6999,
		Discount:      10,
		Description:   "Commercial-grade solar energy storage for larger homes and small businesses.",
		Features: []string{
			"Expandable capacity",
			"7000+ charge cycles",
			"Peak shaving optimization",
			"Time-of-use arbitrage",
			"Cloud monitoring",
			"Emergency backup mode",
		},
		Specs: domain.ProductSpecs{
			Capacity:     "30 kWh",
			Voltage:      "96V DC",
			Chemistry:    "LiFePO4",
			CycleLife:    "7000+ cycles",
			ChargingTime: "5-6 hours",
			Weight:       "185 kg",
			Dimensions:   "800 × 600 × 250 mm",
			Temperature:  "-10°C to 50°C",
			Warranty:     "12 years",
		},
		Applications: []string{"Commercial Solar", "Small Business", "Large Homes", "Microgrids"},
		InStock:      true,
	},
	{
		ID:          "lp-ind-200",
		Name:        "Legacy Industrial 200",
		Category:    domain.CategoryIndustrial,
		Capacity:    "200 kWh",
		Voltage:     "800V",
		Price:       24999,
		Description: "Heavy-duty industrial battery system for manufacturing, data centers, and critical infrastructure.",
		Features: []string{
			"Enterprise-grade reliability",
			"5000+ charge cycles",
			"Redundant safety systems",
			"Scalable architecture",
			"24/7 remote monitoring",
			"Predictive maintenance AI",
		},
		Specs: domain.ProductSpecs{
			Capacity:     "200 kWh",
			Voltage:      "800V DC",
			Chemistry:    "NMC Lithium-Ion",
			CycleLife:    "5000+ cycles",
			ChargingTime: "2 hours (high-power charging)",
			Weight:       "1200 kg",
			Dimensions:   "2000 × 1200 × 400 mm",
			Temperature:  "-20°C to 55°C",
			Warranty:     "15 years",
		},
		Applications: []string{"Manufacturing", "Data Centers", "Warehouses", "Critical Infrastructure"},
		InStock:      true,
	},
	{
		ID:          "lp-ind-500",
		Name:        "Legacy Industrial Mega 500",
		Category:    domain.CategoryIndustrial,
		Capacity:    "500 kWh",
		Voltage:     "1000V",
		Price:       54999,
		Description: "Utility-scale energy storage solution for grid stabilization and large industrial facilities.",
		Features: []string{
			"Grid-scale performance",
			"4500+ charge cycles",
			"Advanced fire suppression",
			"Container-based deployment",
			"SCADA integration",
			"Load balancing automation",
		},
		Specs: domain.ProductSpecs{
			Capacity:     "500 kWh",
			Voltage:      "1000V DC",
			Chemistry:    "NMC 622 Lithium-Ion",
			CycleLife:    "4500+ cycles",
			ChargingTime: "3 hours",
			Weight:       "2800 kg",
			Dimensions:   "6000 × 2400 × 2600 mm (20ft container)",
			Temperature:  "-25°C to 50°C",
			Warranty:     "20 years",
		},
		Applications: []string{"Utilities", "Grid Storage", "Factories", "Renewable Integration"},
		InStock:      true,
	},
	{
		ID:            "lp-home-10",
		Name:          "Legacy Home Power 10",
		Category:      domain.CategoryHome,
		Capacity:      "10 kWh",
		Voltage:       "48V",
		Price:         2499,
		OriginalPrice: 2999,
		Discount:      17,
		Description:   "Compact home backup power solution for essential loads during outages.",
		Features: []string{
			"Automatic transfer switch",
			"4000+ charge cycles",
			"Silent operation",
			"Wall-mountable",
			"Smart home integration",
			"Eco-friendly materials",
		},
		Specs: domain.ProductSpecs{
			Capacity:     "10 kWh",
			Voltage:      "48V DC",
			Chemistry:    "LiFePO4",
			CycleLife:    "4000+ cycles",
			ChargingTime: "2-3 hours",
			Weight:       "65 kg",
			Dimensions:   "600 × 400 × 150 mm",
			Temperature:  "-5°C to 45°C",
			Warranty:     "8 years",
		},
		Applications: []string{"Home Backup", "Emergency Power", "Off-Grid Cabins", "RVs"},
		InStock:      true,
		IsNew:        true,
	},
	{
		ID:          "lp-home-5",
		Name:        "Legacy Home Essential 5",
		Category:    domain.CategoryHome,
		Capacity:    "5 kWh",
		Voltage:     "24V",
		Price:       1499,
		Description: "Entry-level home energy storage for basic backup needs and solar integration.",
		Features: []string{
			"Plug-and-play installation",
			"3500+ charge cycles",
			"Compact footprint",
			"LED status indicators",
			"Multiple charging modes",
			"Affordable solution",
		},
		Specs: domain.ProductSpecs{
			Capacity:     "5 kWh",
			Voltage:      "24V DC",
			Chemistry:    "LiFePO4",
			CycleLife:    "3500+ cycles",
			ChargingTime: "2 hours",
			Weight:       "35 kg",
			Dimensions:   "500 × 300 × 120 mm",
			Temperature:  "-5°C to 40°C",
			Warranty:     "5 years",
		},
		Applications: []string{"Essential Backup", "Small Homes", "Apartments", "Emergency Kits"},
		InStock:      true,
	},
}

var seedUpcoming = []domain.UpcomingProduct{
	{
		ID:          "lp-ev-150-coming",
		Name:        "Legacy Power EV-150 Ultra",
		Category:    domain.CategoryEV,
		Capacity:    "150 kWh",
		Voltage:     "800V",
		Description: "Next-generation solid-state battery technology with 1000km+ range",
		LaunchDate:  "2026-06-15",
	},
	{
		ID:          "lp-graphene-coming",
		Name:        "Legacy Graphene X1",
		Category:    domain.CategoryEV,
		Capacity:    "120 kWh",
		Voltage:     "900V",
		Description: "Revolutionary graphene-based battery with 5-minute charging",
		LaunchDate:  "2026-09-01",
	},
	{
		ID:          "lp-quantum-coming",
		Name:        "Legacy Quantum Cell",
		Category:    domain.CategoryIndustrial,
		Capacity:    "1000 kWh",
		Voltage:     "1500V",
		Description: "Quantum dot enhanced energy storage for utility-scale applications",
		LaunchDate:  "2027-01-15",
	},
}

var seedOffers = []domain.Offer{
	{
		ID:          "offer-1",
		Title:       "New Year Flash Sale",
		Description: "Up to 20% off on all EV batteries",
		Discount:    20,
		ValidUntil:  "2026-02-01",
		ProductIDs:  []string{"lp-ev-100", "lp-ev-60"},
		BannerColor: "blue",
	},
	{
		ID:          "offer-2",
		Title:       "Solar Power Bundle",
		Description: "Buy 2 Solar batteries, get 15% off",
		Discount:    15,
		ValidUntil:  "2026-03-15",
		ProductIDs:  []string{"lp-solar-15", "lp-solar-30"},
		BannerColor: "green",
	},
	{
		ID:          "offer-3",
		Title:       "Industrial Mega Deal",
		Description: "Free installation on Industrial 500",
		Discount:    0,
		ValidUntil:  "2026-02-28",
		ProductIDs:  []string{"lp-ind-500"},
		BannerColor: "orange",
	},
}

// SeedProducts returns a copy of the full product dataset.
func SeedProducts() []domain.Product {
	out := make([]domain.Product, len(seedProducts))
	copy(out, seedProducts)
	return out
}

// UpcomingProducts returns the announced-but-unreleased products.
func UpcomingProducts() []domain.UpcomingProduct {
	out := make([]domain.UpcomingProduct, len(seedUpcoming))
	copy(out, seedUpcoming)
	return out
}

// Offers returns the current promotional offers.
func Offers() []domain.Offer {
	out := make([]domain.Offer, len(seedOffers))
	copy(out, seedOffers)
	return out
}
