// Package osrm implements the routing.Resolver contract against an OSRM
// routing server.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"moverz/core/routing"
	"moverz/internal/errors"
)

// Client calls the OSRM route service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an OSRM client for baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
	} `json:"routes"`
}

// ResolveDistance returns the routed driving distance between two points.
func (c *Client) ResolveDistance(ctx context.Context, origin, destination routing.Coordinate) (routing.Resolved, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.baseURL, origin.Lon, origin.Lat, destination.Lon, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return routing.Resolved{}, errors.Routing("build OSRM request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return routing.Resolved{}, errors.Routing("call OSRM", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return routing.Resolved{}, errors.Newf(errors.TypeRouting, "OSRM returned status %d", resp.StatusCode)
	}

	var parsed routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return routing.Resolved{}, errors.Routing("decode OSRM response", err)
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return routing.Resolved{}, errors.Newf(errors.TypeRouting, "OSRM found no route (code %q)", parsed.Code)
	}

	return routing.Resolved{
		DistanceKm: parsed.Routes[0].Distance / 1000,
		Source:     routing.SourceOSRM,
	}, nil
}
