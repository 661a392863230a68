package matching

import (
	"math"
	"testing"

	"checkout-address-verify/internal/models"
)

func TestLevelWeightsSumToOne(t *testing.T) {
	for level, w := range levelWeights {
		sum := w.street + w.houseNumber + w.postalCode + w.city + w.state + w.country
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("weights for level %q sum to %v, want 1.0", level, sum)
		}
	}
}

func TestWeightsForLevelFallback(t *testing.T) {
	if weightsForLevel("sloppy") != levelWeights[models.LevelStandard] {
		t.Error("unrecognized level should fall back to standard weights")
	}
	if weightsForLevel(models.LevelStrict) != levelWeights[models.LevelStrict] {
		t.Error("strict level should use strict weights")
	}
}

func berlinCandidate() models.AddressComponents {
	return models.AddressComponents{
		Street:      "Hauptstraße",
		HouseNumber: "10",
		PostalCode:  "10115",
		City:        "Berlin",
		Country:     "DE",
		CountryName: "Germany",
	}
}

func TestScoreConfidenceExactMatch(t *testing.T) {
	input := models.AddressInput{
		Street:     "Hauptstraße 10",
		City:       "Berlin",
		PostalCode: "10115",
		Country:    "Germany",
	}
	got := ScoreConfidence(berlinCandidate(), input, models.LevelStandard)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("exact match confidence = %v, want 1.0", got)
	}
}

func TestScoreConfidenceMisspelledCity(t *testing.T) {
	input := models.AddressInput{
		Street:     "Hauptstraße 10",
		City:       "Berlinn",
		PostalCode: "10115",
		Country:    "Germany",
	}
	got := ScoreConfidence(berlinCandidate(), input, models.LevelStandard)

	// Exact weighted computation: street, house number, postal code and
	// country match fully, city scores 1 - 1/7, state is absent on both
	// sides and skipped, and the total renormalizes over the applied weight.
	citySim := 1 - 1.0/7
	want := (0.25 + 0.15 + 0.25 + 0.20*citySim + 0.10) / 0.95
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("misspelled city confidence = %v, want %v", got, want)
	}
	if got <= 0.7 || got >= 1.0 {
		t.Errorf("misspelled city confidence = %v, want within (0.7, 1.0)", got)
	}
}

func TestScoreConfidenceNothingComparable(t *testing.T) {
	got := ScoreConfidence(models.AddressComponents{}, models.AddressInput{
		Street:     "Hauptstraße 10",
		City:       "Berlin",
		PostalCode: "10115",
		Country:    "Germany",
	}, models.LevelStandard)
	if got != 0 {
		t.Errorf("confidence with empty candidate = %v, want 0", got)
	}

	got = ScoreConfidence(berlinCandidate(), models.AddressInput{}, models.LevelStandard)
	if got != 0 {
		t.Errorf("confidence with empty input = %v, want 0", got)
	}
}

func TestScoreConfidenceRange(t *testing.T) {
	inputs := []models.AddressInput{
		{Street: "Completely Different Road 1", City: "Nowhere", PostalCode: "00000", Country: "France"},
		{Street: "Hauptstraße 10", City: "Berlin", PostalCode: "10115", Country: "Germany", State: "Berlin"},
		{AddressLine1: "Hauptstraße 10", City: "Berlin", Country: "DE"},
	}
	for _, in := range inputs {
		for _, level := range []string{models.LevelRelaxed, models.LevelStandard, models.LevelStrict, "bogus"} {
			got := ScoreConfidence(berlinCandidate(), in, level)
			if got < 0 || got > 1 {
				t.Errorf("confidence for %+v at level %q = %v, out of [0,1]", in, level, got)
			}
		}
	}
}

func TestScoreConfidenceCountryCategorical(t *testing.T) {
	tests := []struct {
		name    string
		country string
		want    float64
	}{
		{name: "name resolves to matching code", country: "Germany", want: 1},
		{name: "name resolves to different code", country: "France", want: 0},
		{name: "unresolvable name", country: "Atlantis", want: 0},
		{name: "code matches textually", country: "DE", want: 1},
	}

	candidate := models.AddressComponents{Country: "DE"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only the country component is comparable, so the renormalized
			// confidence equals the country similarity itself.
			got := ScoreConfidence(candidate, models.AddressInput{Country: tt.country}, models.LevelStandard)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("country-only confidence for %q = %v, want %v", tt.country, got, tt.want)
			}
		})
	}
}

func TestScoreConfidenceAddressLine1Fragment(t *testing.T) {
	// address_line1 drops its trailing token as a house-number heuristic
	// before the street comparison.
	input := models.AddressInput{
		AddressLine1: "Hauptstraße 10",
		City:         "Berlin",
		PostalCode:   "10115",
		Country:      "Germany",
	}
	got := ScoreConfidence(berlinCandidate(), input, models.LevelStandard)

	// Street matches via the fragment, house number is absent on the input
	// side and skipped; postal code, city and country match fully.
	want := (0.25 + 0.25 + 0.20 + 0.10) / 0.80
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("address_line1 confidence = %v, want %v", got, want)
	}
}

func TestScoreConfidenceStateWeighed(t *testing.T) {
	input := models.AddressInput{
		Street:     "Hauptstraße 10",
		City:       "Berlin",
		PostalCode: "10115",
		State:      "Brandenburg",
		Country:    "Germany",
	}
	candidate := berlinCandidate()
	candidate.State = "Berlin"

	withMismatch := ScoreConfidence(candidate, input, models.LevelStandard)
	input.State = "Berlin"
	withMatch := ScoreConfidence(candidate, input, models.LevelStandard)

	if withMismatch >= withMatch {
		t.Errorf("state mismatch (%v) should score below state match (%v)", withMismatch, withMatch)
	}
	if math.Abs(withMatch-1.0) > 1e-9 {
		t.Errorf("full six-component match = %v, want 1.0", withMatch)
	}
}
