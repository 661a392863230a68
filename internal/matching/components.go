package matching

import (
	"regexp"
	"strings"

	"checkout-address-verify/internal/models"
)

// streetNumberRe captures a trailing house-number token ("42", "42B",
// "42 bis") after at least one leading word. The heuristic assumes the
// number trails the street name, which holds for many European formats but
// not all locales ("12 Main St" will not be split).
var streetNumberRe = regexp.MustCompile(`^(.*?)\s+(\d+.*)$`)

// SplitStreet separates a combined "<street> <number>" line into street and
// house number. When no trailing number is found the input is returned
// unchanged with an empty house number.
func SplitStreet(line string) (street, houseNumber string) {
	if m := streetNumberRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return line, ""
}

// ExtractComponents decomposes one geocoder candidate into normalized
// address components. A candidate without an address object yields zero
// components; this never fails.
func ExtractComponents(c models.GeocodeCandidate) models.AddressComponents {
	if c.Address == nil {
		return models.AddressComponents{}
	}

	street := c.Address.Street
	houseNumber := c.Address.HouseNumber
	if houseNumber == "" && street != "" {
		street, houseNumber = SplitStreet(street)
	}

	// HERE reports countryCode as an alpha-3 code ("DEU").
	country := strings.ToUpper(strings.TrimSpace(c.Address.CountryCode))
	if code, ok := ISO3ToISO2(country); ok {
		country = code
	}

	return models.AddressComponents{
		Street:           street,
		HouseNumber:      houseNumber,
		PostalCode:       c.Address.PostalCode,
		City:             c.Address.City,
		State:            c.Address.State,
		Country:          country,
		CountryName:      c.Address.CountryName,
		FormattedAddress: c.Title,
	}
}

// ComponentsFromInput derives address components from a raw user input, with
// AddressLine1 standing in for Street when the latter is absent. The country
// is resolved to an alpha-2 code when the input carries a known name or an
// alpha-3 code; a two-letter value is taken as a code directly.
func ComponentsFromInput(in models.AddressInput) models.AddressComponents {
	street := in.Street
	if street == "" {
		street = in.AddressLine1
	}

	houseNumber := in.HouseNumber
	if houseNumber == "" && street != "" {
		street, houseNumber = SplitStreet(street)
	}

	return models.AddressComponents{
		Street:      street,
		HouseNumber: houseNumber,
		PostalCode:  in.PostalOrPostcode(),
		City:        in.City,
		State:       in.State,
		Country:     resolveCountry(in.Country),
		CountryName: in.Country,
	}
}

func resolveCountry(country string) string {
	c := strings.TrimSpace(country)
	switch len(c) {
	case 0:
		return ""
	case 2:
		return strings.ToUpper(c)
	case 3:
		if code, ok := ISO3ToISO2(c); ok {
			return code
		}
	}
	if code, ok := CountryNameToCode(c); ok {
		return code
	}
	return ""
}
