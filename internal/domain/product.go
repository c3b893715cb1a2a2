package domain

// ProductCategory is the catalog dimension a battery belongs to.
type ProductCategory string

const (
	CategoryEV         ProductCategory = "EV"
	CategorySolar      ProductCategory = "Solar"
	CategoryIndustrial ProductCategory = "Industrial"
	CategoryHome       ProductCategory = "Home"
)

func (c ProductCategory) String() string {
	return string(c)
}

// ProductSpecs is the fixed-shape technical specification sheet of a battery.
type ProductSpecs struct {
	Capacity     string `json:"capacity"`
	Voltage      string `json:"voltage"`
	Chemistry    string `json:"chemistry"`
	CycleLife    string `json:"cycle_life"`
	ChargingTime string `json:"charging_time"`
	Weight       string `json:"weight"`
	Dimensions   string `json:"dimensions"`
	Temperature  string `json:"temperature"`
	Warranty     string `json:"warranty"`
}

// Product is a catalog record. Products are created at startup from the seed
// dataset and never mutated afterwards.
type Product struct {
	ID            string
	Name          string
	Category      ProductCategory
	Capacity      string
	Voltage       string
	Price         float64
	OriginalPrice float64 // zero when the product was never discounted
	Description   string
	Features      []string
	Specs         ProductSpecs
	Applications  []string
	InStock       bool
	IsNew         bool
	Discount      int // percent off, zero when none
}

// UpcomingProduct is an announced-but-unreleased battery.
type UpcomingProduct struct {
	ID          string
	Name        string
	Category    ProductCategory
	Capacity    string
	Voltage     string
	Description string
	LaunchDate  string // ISO date
}

// Offer is a promotional record tied to one or more products.
type Offer struct {
	ID          string
	Title       string
	Description string
	Discount    int // percent, zero for non-price promotions
	ValidUntil  string
	ProductIDs  []string
	BannerColor string
}
