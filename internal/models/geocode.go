package models

// CandidateAddress is the nested address object of one HERE geocoder result.
// Field names mirror the provider's JSON.
type CandidateAddress struct {
	Label       string `json:"label,omitempty"`
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"houseNumber,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	CountryName string `json:"countryName,omitempty"`
}

// GeocodeCandidate is one ranked result returned by the geocoding provider.
// The provider orders candidates by match quality; index 0 is its best guess.
type GeocodeCandidate struct {
	Title   string            `json:"title"`
	Address *CandidateAddress `json:"address,omitempty"`
}
