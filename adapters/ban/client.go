// Package ban implements the geo.Geocoder contract against the French
// Base Adresse Nationale search endpoint.
package ban

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moverz/core/geo"
	"moverz/internal/errors"
)

// Client calls the BAN /search endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a BAN client for baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // lon, lat
		} `json:"geometry"`
		Properties struct {
			Label    string `json:"label"`
			Postcode string `json:"postcode"`
			City     string `json:"city"`
		} `json:"properties"`
	} `json:"features"`
}

// Search resolves a free-text address query.
func (c *Client) Search(ctx context.Context, query string) ([]geo.Address, error) {
	endpoint := c.baseURL + "/search/?limit=5&q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Geocoding("build BAN request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Geocoding("call BAN", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.TypeGeocoding, "BAN returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Geocoding("decode BAN response", err)
	}

	addresses := make([]geo.Address, 0, len(parsed.Features))
	for _, f := range parsed.Features {
		if len(f.Geometry.Coordinates) != 2 {
			continue
		}
		addresses = append(addresses, geo.Address{
			Lat:         f.Geometry.Coordinates[1],
			Lon:         f.Geometry.Coordinates[0],
			PostalCode:  f.Properties.Postcode,
			City:        f.Properties.City,
			CountryCode: "FR",
			Label:       f.Properties.Label,
		})
	}
	return addresses, nil
}
