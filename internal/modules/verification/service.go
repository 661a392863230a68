package verification

import (
	"context"
	"errors"
	"strings"

	"checkout-address-verify/internal/matching"
	"checkout-address-verify/internal/metrics"
	"checkout-address-verify/internal/models"
	"checkout-address-verify/pkg/geocode"
)

// geocodeLimit is how many ranked candidates are requested per verification:
// one best match plus up to two suggestions.
const geocodeLimit = 3

// geocodeResultTypes restricts provider results to address-level matches.
const geocodeResultTypes = "houseNumber,street,postalCode"

// Geocoder is the external geocoding collaborator. *geocode.Client satisfies
// it; tests substitute a mock.
type Geocoder interface {
	IsConfigured() bool
	Geocode(ctx context.Context, query string, opts geocode.Options) ([]models.GeocodeCandidate, error)
	Autocomplete(ctx context.Context, query string, opts geocode.Options) ([]models.GeocodeCandidate, error)
	ReverseGeocode(ctx context.Context, lat, lng float64, opts geocode.Options) ([]models.GeocodeCandidate, error)
}

// ServiceInterface defines the address verification business logic.
type ServiceInterface interface {
	VerifyAddress(ctx context.Context, input models.AddressInput, opts *models.VerificationOptions) (*models.VerificationResult, error)
	Autocomplete(ctx context.Context, query string, limit int) ([]models.GeocodeCandidate, error)
	Geocode(ctx context.Context, query string, limit int) ([]models.GeocodeCandidate, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) ([]models.GeocodeCandidate, error)
}

type Service struct {
	geo         Geocoder
	defaultArgs models.VerificationArgs
}

// NewService creates the verification service. defaults are the
// deployment-level verification settings; each call may override them.
func NewService(geo Geocoder, defaults models.VerificationArgs) ServiceInterface {
	return &Service{geo: geo, defaultArgs: defaults}
}

// VerifyAddress validates the input, geocodes it, scores the provider's best
// candidate against the input, and decides whether the address is verified.
// Validation failures surface before any network call; provider failures are
// never downgraded to a low-confidence result.
func (s *Service) VerifyAddress(ctx context.Context, input models.AddressInput, opts *models.VerificationOptions) (*models.VerificationResult, error) {
	args := opts.Apply(s.defaultArgs)

	query, err := s.buildQuery(input, args)
	if err != nil {
		metrics.RecordVerification("invalid_input")
		return nil, err
	}

	metrics.RecordGeocodeRequest("geocode")
	candidates, err := s.geo.Geocode(ctx, query, geocode.Options{
		Limit:      geocodeLimit,
		ResultType: geocodeResultTypes,
	})
	if err != nil {
		if errors.Is(err, models.ErrNoMatch) {
			metrics.RecordVerification("no_match")
		} else {
			metrics.RecordGeocodeError("geocode")
			metrics.RecordVerification("error")
		}
		return nil, err
	}

	best := candidates[0]
	confidence := matching.ScoreConfidence(matching.ExtractComponents(best), input, args.VerificationLevel)
	metrics.RecordConfidence(confidence)

	result := &models.VerificationResult{
		Verified:         confidence >= args.MinConfidence,
		FormattedAddress: best.Title,
		GeocodedAddress:  matching.ExtractComponents(best),
		InputAddress:     input,
	}
	if args.IncludeConfidence {
		result.Confidence = &confidence
	}
	if !result.Verified && args.IncludeSuggestions && len(candidates) > 1 {
		suggestions := make([]models.Suggestion, 0, len(candidates)-1)
		for _, c := range candidates[1:] {
			suggestions = append(suggestions, models.Suggestion{
				FormattedAddress: c.Title,
				Address:          matching.ExtractComponents(c),
			})
		}
		result.Suggestions = suggestions
	}

	if result.Verified {
		metrics.RecordVerification("verified")
	} else {
		metrics.RecordVerification("unverified")
	}
	return result, nil
}

// buildQuery runs the pre-network validations and assembles the free-text
// geocoding query: street with house number, city, postal code, country,
// comma-separated with empty parts skipped.
func (s *Service) buildQuery(input models.AddressInput, args models.VerificationArgs) (string, error) {
	if !s.geo.IsConfigured() {
		return "", models.ErrNotConfigured
	}

	var parts []string

	switch {
	case input.Street != "":
		street := input.Street
		if input.HouseNumber != "" {
			// House number placement varies by country; trailing it after the
			// street is a simple approximation the geocoder tolerates.
			street += " " + input.HouseNumber
		} else if args.RequireHouseNumber {
			if _, derived := matching.SplitStreet(input.Street); derived == "" {
				return "", &models.MissingFieldError{Field: "house_number"}
			}
		}
		parts = append(parts, street)
	case input.AddressLine1 != "":
		parts = append(parts, input.AddressLine1)
		if input.AddressLine2 != "" {
			parts = append(parts, input.AddressLine2)
		}
	default:
		return "", &models.MissingFieldError{Field: "street"}
	}

	if input.City == "" {
		return "", &models.MissingFieldError{Field: "city"}
	}
	parts = append(parts, input.City)

	if postal := input.PostalOrPostcode(); postal != "" {
		parts = append(parts, postal)
	} else if args.RequirePostalCode {
		return "", &models.MissingFieldError{Field: "postal_code"}
	}

	if input.Country == "" {
		return "", &models.MissingFieldError{Field: "country"}
	}
	parts = append(parts, input.Country)

	return strings.Join(parts, ", "), nil
}

// Autocomplete passes a partial address query through to the provider.
func (s *Service) Autocomplete(ctx context.Context, query string, limit int) ([]models.GeocodeCandidate, error) {
	if !s.geo.IsConfigured() {
		return nil, models.ErrNotConfigured
	}
	if limit <= 0 {
		limit = 5
	}
	metrics.RecordGeocodeRequest("autocomplete")
	items, err := s.geo.Autocomplete(ctx, query, geocode.Options{Limit: limit})
	if err != nil {
		metrics.RecordGeocodeError("autocomplete")
		return nil, err
	}
	return items, nil
}

// Geocode passes a raw free-text query through to the provider.
func (s *Service) Geocode(ctx context.Context, query string, limit int) ([]models.GeocodeCandidate, error) {
	if !s.geo.IsConfigured() {
		return nil, models.ErrNotConfigured
	}
	if limit <= 0 {
		limit = 1
	}
	metrics.RecordGeocodeRequest("geocode")
	items, err := s.geo.Geocode(ctx, query, geocode.Options{Limit: limit})
	if err != nil {
		metrics.RecordGeocodeError("geocode")
		return nil, err
	}
	return items, nil
}

// ReverseGeocode resolves coordinates to the nearest address.
func (s *Service) ReverseGeocode(ctx context.Context, lat, lng float64) ([]models.GeocodeCandidate, error) {
	if !s.geo.IsConfigured() {
		return nil, models.ErrNotConfigured
	}
	metrics.RecordGeocodeRequest("revgeocode")
	items, err := s.geo.ReverseGeocode(ctx, lat, lng, geocode.Options{Limit: 1})
	if err != nil {
		metrics.RecordGeocodeError("revgeocode")
		return nil, err
	}
	return items, nil
}
