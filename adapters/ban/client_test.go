package ban

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"moverz/internal/errors"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "10 rue de la paix paris" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`{"features":[
			{"geometry":{"coordinates":[2.3316,48.8692]},
			 "properties":{"label":"10 Rue de la Paix 75002 Paris","postcode":"75002","city":"Paris"}},
			{"geometry":{"coordinates":[]}, "properties":{"label":"broken"}}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.Search(context.Background(), "10 rue de la paix paris")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	// the malformed feature is skipped
	if len(got) != 1 {
		t.Fatalf("got %d addresses, want 1", len(got))
	}
	addr := got[0]
	if addr.Lat != 48.8692 || addr.Lon != 2.3316 {
		t.Fatalf("coordinates = %v,%v", addr.Lat, addr.Lon)
	}
	if addr.City != "Paris" || addr.PostalCode != "75002" || addr.CountryCode != "FR" {
		t.Fatalf("address = %+v", addr)
	}
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Search(context.Background(), "anything")
	if !errors.IsType(err, errors.TypeGeocoding) {
		t.Fatalf("expected a geocoding error, got %v", err)
	}
}
