// Package geo defines the geocoding contract: free-text address in,
// resolved coordinates out. The engine only ever consumes the result.
package geo

import "context"

// Address is one resolved address.
type Address struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	PostalCode  string  `json:"postal_code"`
	City        string  `json:"city"`
	CountryCode string  `json:"country_code"`
	Label       string  `json:"label"`
}

// Geocoder resolves free-text queries to addresses.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]Address, error)
}
