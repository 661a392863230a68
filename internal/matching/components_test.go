package matching

import (
	"testing"

	"checkout-address-verify/internal/models"
)

func TestSplitStreet(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		street string
		number string
	}{
		{name: "trailing number", input: "Main Street 42", street: "Main Street", number: "42"},
		{name: "number with letter suffix", input: "Main Street 42B", street: "Main Street", number: "42B"},
		{name: "no number", input: "Main Street", street: "Main Street", number: ""},
		{name: "leading number not split", input: "123 Main", street: "123 Main", number: ""},
		{name: "number with unit", input: "Hauptstraße 10 a", street: "Hauptstraße", number: "10 a"},
		{name: "empty", input: "", street: "", number: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			street, number := SplitStreet(tt.input)
			if street != tt.street || number != tt.number {
				t.Errorf("SplitStreet(%q) = (%q, %q), want (%q, %q)",
					tt.input, street, number, tt.street, tt.number)
			}
		})
	}
}

func TestExtractComponents(t *testing.T) {
	t.Run("nil address yields zero components", func(t *testing.T) {
		got := ExtractComponents(models.GeocodeCandidate{Title: "whatever"})
		if got != (models.AddressComponents{}) {
			t.Errorf("expected zero components, got %+v", got)
		}
	})

	t.Run("house number taken directly when present", func(t *testing.T) {
		got := ExtractComponents(models.GeocodeCandidate{
			Title: "Main Street 5, Springfield",
			Address: &models.CandidateAddress{
				Street:      "Main Street",
				HouseNumber: "5",
				City:        "Springfield",
				CountryCode: "us",
			},
		})
		if got.Street != "Main Street" || got.HouseNumber != "5" {
			t.Errorf("street/house = (%q, %q), want (Main Street, 5)", got.Street, got.HouseNumber)
		}
		if got.Country != "US" {
			t.Errorf("country = %q, want US (uppercased)", got.Country)
		}
		if got.FormattedAddress != "Main Street 5, Springfield" {
			t.Errorf("formatted address = %q", got.FormattedAddress)
		}
	})

	t.Run("alpha-3 country code resolves to alpha-2", func(t *testing.T) {
		got := ExtractComponents(models.GeocodeCandidate{
			Address: &models.CandidateAddress{CountryCode: "DEU", CountryName: "Germany"},
		})
		if got.Country != "DE" {
			t.Errorf("country = %q, want DE", got.Country)
		}
	})

	t.Run("combined street is split", func(t *testing.T) {
		got := ExtractComponents(models.GeocodeCandidate{
			Address: &models.CandidateAddress{Street: "Main Street 42B"},
		})
		if got.Street != "Main Street" || got.HouseNumber != "42B" {
			t.Errorf("street/house = (%q, %q), want (Main Street, 42B)", got.Street, got.HouseNumber)
		}
	})

	t.Run("remaining fields pass through", func(t *testing.T) {
		got := ExtractComponents(models.GeocodeCandidate{
			Title: "Hauptstraße 10, 10115 Berlin, Deutschland",
			Address: &models.CandidateAddress{
				Street:      "Hauptstraße",
				HouseNumber: "10",
				PostalCode:  "10115",
				City:        "Berlin",
				State:       "Berlin",
				CountryCode: "DE",
				CountryName: "Germany",
			},
		})
		want := models.AddressComponents{
			Street:           "Hauptstraße",
			HouseNumber:      "10",
			PostalCode:       "10115",
			City:             "Berlin",
			State:            "Berlin",
			Country:          "DE",
			CountryName:      "Germany",
			FormattedAddress: "Hauptstraße 10, 10115 Berlin, Deutschland",
		}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})
}

func TestComponentsFromInput(t *testing.T) {
	t.Run("street split and country resolved from name", func(t *testing.T) {
		got := ComponentsFromInput(models.AddressInput{
			Street:     "Hauptstraße 10",
			City:       "Berlin",
			PostalCode: "10115",
			Country:    "Germany",
		})
		if got.Street != "Hauptstraße" || got.HouseNumber != "10" {
			t.Errorf("street/house = (%q, %q), want (Hauptstraße, 10)", got.Street, got.HouseNumber)
		}
		if got.Country != "DE" {
			t.Errorf("country = %q, want DE", got.Country)
		}
	})

	t.Run("address_line1 stands in for street", func(t *testing.T) {
		got := ComponentsFromInput(models.AddressInput{
			AddressLine1: "Main Street 7",
			City:         "Springfield",
			Postcode:     "12345",
			Country:      "USA",
		})
		if got.Street != "Main Street" || got.HouseNumber != "7" {
			t.Errorf("street/house = (%q, %q), want (Main Street, 7)", got.Street, got.HouseNumber)
		}
		if got.PostalCode != "12345" {
			t.Errorf("postal code = %q, want 12345 (postcode spelling)", got.PostalCode)
		}
	})

	t.Run("alpha-3 country code", func(t *testing.T) {
		got := ComponentsFromInput(models.AddressInput{Country: "DEU"})
		if got.Country != "DE" {
			t.Errorf("country = %q, want DE", got.Country)
		}
	})

	t.Run("alpha-2 country code uppercased", func(t *testing.T) {
		got := ComponentsFromInput(models.AddressInput{Country: "de"})
		if got.Country != "DE" {
			t.Errorf("country = %q, want DE", got.Country)
		}
	})
}
