package entity

// Seller is the public seller profile embedded in a product listing.
type Seller struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	FarmName string      `json:"farmName,omitempty"`
	Location *Coordinate `json:"location,omitempty"` // Farm location; nil when unknown or malformed.
}

// Product is a produce listing provided by the product source.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Quantity      string  `json:"quantity"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	AverageRating float64 `json:"averageRating"`
	NumOfReviews  int     `json:"numOfReviews"`
	Seller        Seller  `json:"seller"`
}

// RankedProduct is a product annotated with its distance from the viewer.
// The distance is derived and never persisted.
type RankedProduct struct {
	*Product
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// HasDistance reports whether the product was annotated with a distance.
func (p *RankedProduct) HasDistance() bool {
	return p.DistanceKm != nil
}
