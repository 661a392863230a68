package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkout-address-verify/internal/models"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClientWithBaseURLs("test-key", time.Second, srv.URL, srv.URL, srv.URL)
}

func TestGeocodeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apiKey") != "test-key" {
			t.Errorf("apiKey = %q", q.Get("apiKey"))
		}
		if q.Get("q") != "Hauptstraße 10, Berlin, 10115, Germany" {
			t.Errorf("q = %q", q.Get("q"))
		}
		if q.Get("limit") != "3" {
			t.Errorf("limit = %q", q.Get("limit"))
		}
		if q.Get("lang") != "en-US" {
			t.Errorf("lang = %q", q.Get("lang"))
		}
		if q.Get("resultType") != "houseNumber,street,postalCode" {
			t.Errorf("resultType = %q", q.Get("resultType"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"title":"Hauptstraße 10, 10115 Berlin, Deutschland","address":{"street":"Hauptstraße","houseNumber":"10","postalCode":"10115","city":"Berlin","countryCode":"DEU","countryName":"Germany","label":"Hauptstraße 10, 10115 Berlin, Deutschland"}}]}`))
	}))
	defer srv.Close()

	items, err := newTestClient(srv).Geocode(context.Background(), "Hauptstraße 10, Berlin, 10115, Germany", Options{
		Limit:      3,
		ResultType: "houseNumber,street,postalCode",
	})
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Title != "Hauptstraße 10, 10115 Berlin, Deutschland" {
		t.Errorf("title = %q", items[0].Title)
	}
	if items[0].Address == nil || items[0].Address.HouseNumber != "10" {
		t.Errorf("address = %+v", items[0].Address)
	}
}

func TestGeocodeNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Nonexistent Street 999, Nowhere", Options{})
	if !errors.Is(err, models.ErrNoMatch) {
		t.Fatalf("error = %v, want ErrNoMatch", err)
	}
}

func TestGeocodeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":401,"title":"Unauthorized","error_description":"apiKey invalid"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Hauptstraße 10, Berlin", Options{})
	var ge *models.GeocodeError
	if !errors.As(err, &ge) {
		t.Fatalf("error = %v, want GeocodeError", err)
	}
	if ge.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", ge.StatusCode)
	}
	if ge.Message != "apiKey invalid" {
		t.Errorf("message = %q", ge.Message)
	}
}

func TestGeocodeErrorTitleFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"status":429,"title":"Too Many Requests"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Hauptstraße 10, Berlin", Options{})
	var ge *models.GeocodeError
	if !errors.As(err, &ge) {
		t.Fatalf("error = %v, want GeocodeError", err)
	}
	if ge.Message != "Too Many Requests" {
		t.Errorf("message = %q", ge.Message)
	}
}

func TestGeocodeMissingItemsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Hauptstraße 10, Berlin", Options{})
	var ge *models.GeocodeError
	if !errors.As(err, &ge) {
		t.Fatalf("error = %v, want GeocodeError", err)
	}
}

func TestGeocodeMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Hauptstraße 10, Berlin", Options{})
	var ge *models.GeocodeError
	if !errors.As(err, &ge) {
		t.Fatalf("error = %v, want GeocodeError", err)
	}
}

func TestGeocodeNotConfigured(t *testing.T) {
	c := NewClient("", 0)
	if c.IsConfigured() {
		t.Error("client without key reports configured")
	}
	if _, err := c.Geocode(context.Background(), "Hauptstraße 10, Berlin", Options{}); !errors.Is(err, models.ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}

func TestGeocodeEmptyQuery(t *testing.T) {
	c := NewClient("test-key", 0)
	_, err := c.Geocode(context.Background(), "", Options{})
	var ge *models.GeocodeError
	if !errors.As(err, &ge) {
		t.Fatalf("error = %v, want GeocodeError", err)
	}
}

func TestAutocompleteEmptyListIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("types") != "address" {
			t.Errorf("types = %q", r.URL.Query().Get("types"))
		}
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	items, err := newTestClient(srv).Autocomplete(context.Background(), "Hauptstr", Options{Limit: 5})
	if err != nil {
		t.Fatalf("Autocomplete returned error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestReverseGeocodeParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if at := r.URL.Query().Get("at"); at != "52.532100,13.393500" {
			t.Errorf("at = %q", at)
		}
		w.Write([]byte(`{"items":[{"title":"Hauptstraße 10, 10115 Berlin, Deutschland"}]}`))
	}))
	defer srv.Close()

	items, err := newTestClient(srv).ReverseGeocode(context.Background(), 52.5321, 13.3935, Options{})
	if err != nil {
		t.Fatalf("ReverseGeocode returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}

func TestGeocodeContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv).Geocode(ctx, "Hauptstraße 10, Berlin", Options{})
	var ge *models.GeocodeError
	if !errors.As(err, &ge) {
		t.Fatalf("error = %v, want GeocodeError", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error chain should carry context.Canceled, got %v", err)
	}
}
