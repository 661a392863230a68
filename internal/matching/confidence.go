package matching

import (
	"strings"

	"checkout-address-verify/internal/models"
)

// componentWeights assigns a relative weight to each address component per
// verification level. Every row sums to 1.0.
type componentWeights struct {
	street      float64
	houseNumber float64
	postalCode  float64
	city        float64
	state       float64
	country     float64
}

var levelWeights = map[string]componentWeights{
	models.LevelRelaxed: {
		street:      0.30,
		houseNumber: 0.10,
		postalCode:  0.25,
		city:        0.25,
		state:       0.05,
		country:     0.05,
	},
	models.LevelStandard: {
		street:      0.25,
		houseNumber: 0.15,
		postalCode:  0.25,
		city:        0.20,
		state:       0.05,
		country:     0.10,
	},
	models.LevelStrict: {
		street:      0.25,
		houseNumber: 0.20,
		postalCode:  0.25,
		city:        0.15,
		state:       0.05,
		country:     0.10,
	},
}

// weightsForLevel returns the per-component weights for a verification
// level. An unrecognized level silently falls back to standard.
func weightsForLevel(level string) componentWeights {
	if w, ok := levelWeights[level]; ok {
		return w
	}
	return levelWeights[models.LevelStandard]
}

// ScoreConfidence compares a geocoded candidate against the user's input and
// returns a weighted confidence score in [0,1]. Components empty on either
// side are skipped entirely; the final score is renormalized over the
// weights that were actually applied, so an address missing a state on both
// sides is neither penalized nor rewarded for it. Returns 0 when nothing was
// comparable.
func ScoreConfidence(candidate models.AddressComponents, input models.AddressInput, level string) float64 {
	w := weightsForLevel(level)

	var score, applied float64

	compare := func(inputVal, candidateVal string, weight float64) {
		if inputVal == "" || candidateVal == "" {
			return
		}
		score += StringSimilarity(NormalizeString(inputVal), NormalizeString(candidateVal)) * weight
		applied += weight
	}

	// Street and house number from the input side. A combined "Street 42"
	// line is split so it lines up with the geocoder's separate fields; an
	// address_line1 fallback drops its trailing token as a house-number
	// heuristic instead.
	streetVal := input.Street
	houseVal := input.HouseNumber
	switch {
	case streetVal != "":
		if houseVal == "" {
			streetVal, houseVal = SplitStreet(streetVal)
		}
	case input.AddressLine1 != "":
		if parts := strings.Fields(input.AddressLine1); len(parts) > 1 {
			streetVal = strings.Join(parts[:len(parts)-1], " ")
		}
	}
	compare(streetVal, candidate.Street, w.street)
	compare(houseVal, candidate.HouseNumber, w.houseNumber)
	compare(input.PostalOrPostcode(), candidate.PostalCode, w.postalCode)
	compare(input.City, candidate.City, w.city)
	compare(input.State, candidate.State, w.state)

	if input.Country != "" && candidate.Country != "" {
		score += countrySimilarity(input.Country, candidate.Country) * w.country
		applied += w.country
	}

	if applied == 0 {
		return 0
	}
	return score / applied
}

// countrySimilarity scores the country component. The candidate side carries
// an alpha-2 code, so a user-typed name ("Germany" vs "DE") would score near
// zero on edit distance alone. When the normalized strings differ and the
// candidate looks like a code, the input is resolved through the
// common-country table instead and scored categorically: full credit on a
// code match, none otherwise.
func countrySimilarity(inputCountry, candidateCountry string) float64 {
	in := NormalizeString(inputCountry)
	cand := NormalizeString(candidateCountry)
	if in == cand {
		return 1
	}
	if len(candidateCountry) == 2 {
		if code, ok := commonCountryCode(inputCountry); ok && code == strings.ToUpper(candidateCountry) {
			return 1
		}
		return 0
	}
	return StringSimilarity(in, cand)
}
