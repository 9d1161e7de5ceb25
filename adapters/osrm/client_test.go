package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"moverz/core/routing"
	"moverz/internal/errors"
)

func TestResolveDistance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route/v1/driving/2.352200,48.856600;4.835700,45.764000" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":465300}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.ResolveDistance(context.Background(),
		routing.Coordinate{Lat: 48.8566, Lon: 2.3522},
		routing.Coordinate{Lat: 45.764, Lon: 4.8357})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.DistanceKm != 465.3 {
		t.Fatalf("distance = %v km, want 465.3", got.DistanceKm)
	}
	if got.Source != routing.SourceOSRM {
		t.Fatalf("source = %s", got.Source)
	}
}

func TestResolveDistanceNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ResolveDistance(context.Background(), routing.Coordinate{}, routing.Coordinate{})
	if !errors.IsType(err, errors.TypeRouting) {
		t.Fatalf("expected a routing error, got %v", err)
	}
}

func TestResolveDistanceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ResolveDistance(context.Background(), routing.Coordinate{}, routing.Coordinate{})
	if !errors.IsType(err, errors.TypeRouting) {
		t.Fatalf("expected a routing error, got %v", err)
	}
}
