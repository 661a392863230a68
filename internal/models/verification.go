package models

// Verification levels control how strictly address components must match.
const (
	LevelRelaxed  = "relaxed"
	LevelStandard = "standard"
	LevelStrict   = "strict"
)

// AddressInput is a user-supplied address as it arrives from the checkout
// form. Either Street or AddressLine1 must be present, along with City and
// Country; everything else is optional. PostalCode and Postcode are two
// spellings of the same field seen in the wild, checked in that order.
type AddressInput struct {
	Street       string `json:"street,omitempty"`
	HouseNumber  string `json:"house_number,omitempty"`
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
}

// PostalOrPostcode returns whichever postal code spelling was supplied.
func (a AddressInput) PostalOrPostcode() string {
	if a.PostalCode != "" {
		return a.PostalCode
	}
	return a.Postcode
}

// AddressComponents is the normalized component form shared by geocoder
// candidates and raw inputs. Country always holds an uppercased ISO-3166
// alpha-2 code when one is derivable.
type AddressComponents struct {
	Street           string `json:"street"`
	HouseNumber      string `json:"house_number"`
	PostalCode       string `json:"postal_code"`
	City             string `json:"city"`
	State            string `json:"state"`
	Country          string `json:"country"`
	CountryName      string `json:"country_name"`
	FormattedAddress string `json:"formatted_address"`
}

// VerificationArgs configures a single verification call.
type VerificationArgs struct {
	RequireHouseNumber bool    `json:"require_house_number"`
	RequirePostalCode  bool    `json:"require_postal_code"`
	VerificationLevel  string  `json:"verification_level"`
	IncludeConfidence  bool    `json:"include_confidence"`
	IncludeSuggestions bool    `json:"include_suggestions"`
	MinConfidence      float64 `json:"min_confidence"`
}

// DefaultVerificationArgs returns the stock verification configuration.
func DefaultVerificationArgs() VerificationArgs {
	return VerificationArgs{
		RequireHouseNumber: false,
		RequirePostalCode:  true,
		VerificationLevel:  LevelStandard,
		IncludeConfidence:  true,
		IncludeSuggestions: true,
		MinConfidence:      0.7,
	}
}

// VerificationOptions is the optional per-request override block. Nil fields
// leave the configured defaults untouched.
type VerificationOptions struct {
	RequireHouseNumber *bool    `json:"require_house_number,omitempty"`
	RequirePostalCode  *bool    `json:"require_postal_code,omitempty"`
	VerificationLevel  *string  `json:"verification_level,omitempty"`
	IncludeConfidence  *bool    `json:"include_confidence,omitempty"`
	IncludeSuggestions *bool    `json:"include_suggestions,omitempty"`
	MinConfidence      *float64 `json:"min_confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// Apply overlays the non-nil options onto args.
func (o *VerificationOptions) Apply(args VerificationArgs) VerificationArgs {
	if o == nil {
		return args
	}
	if o.RequireHouseNumber != nil {
		args.RequireHouseNumber = *o.RequireHouseNumber
	}
	if o.RequirePostalCode != nil {
		args.RequirePostalCode = *o.RequirePostalCode
	}
	if o.VerificationLevel != nil {
		args.VerificationLevel = *o.VerificationLevel
	}
	if o.IncludeConfidence != nil {
		args.IncludeConfidence = *o.IncludeConfidence
	}
	if o.IncludeSuggestions != nil {
		args.IncludeSuggestions = *o.IncludeSuggestions
	}
	if o.MinConfidence != nil {
		args.MinConfidence = *o.MinConfidence
	}
	return args
}

// VerifyAddressRequest is the body of POST /addresses/verify.
type VerifyAddressRequest struct {
	Address AddressInput         `json:"address"`
	Options *VerificationOptions `json:"options,omitempty"`
}

// Suggestion is one alternative candidate offered when the best match did not
// clear the confidence threshold. Suggestions are never re-scored.
type Suggestion struct {
	FormattedAddress string            `json:"formatted_address"`
	Address          AddressComponents `json:"address"`
}

// VerificationResult is the outcome of a successful verification call.
// Confidence is present only when requested; Suggestions only when the
// address was not verified, suggestions were requested, and the provider
// returned more than one candidate.
type VerificationResult struct {
	Verified         bool              `json:"verified"`
	FormattedAddress string            `json:"formatted_address"`
	GeocodedAddress  AddressComponents `json:"geocoded_address"`
	InputAddress     AddressInput      `json:"input_address"`
	Confidence       *float64          `json:"confidence,omitempty"`
	Suggestions      []Suggestion      `json:"suggestions,omitempty"`
}
