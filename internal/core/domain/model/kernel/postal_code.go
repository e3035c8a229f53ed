package kernel

import (
	"strings"

	"geodelivery/internal/pkg/errs"
	"geodelivery/internal/pkg/guard"
)

const (
	// PostalCodeLength is the number of digits in a valid postal code.
	PostalCodeLength = 6

	// PostalCodeMinLeadingDigit is the smallest allowed leading digit.
	// Codes in this reference system never begin with 0.
	PostalCodeMinLeadingDigit = '1'

	// PostalCodeMaxLeadingDigit is the largest allowed leading digit.
	// Codes in this reference system never begin with 9.
	PostalCodeMaxLeadingDigit = '8'
)

const (
	regionPrefixLength     = 2
	settlementPrefixLength = 3
)

// ErrPostalCodeIsNotConstructed is returned when attempting to use an
// improperly initialized PostalCode. Postal codes must be created via
// NewPostalCode to ensure validity.
var ErrPostalCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"postal code must be created via NewPostalCode constructor")

// PostalCode is an immutable value object representing a validated 6-digit
// postal code (pincode). Formatting characters such as spaces and dashes in
// the raw input are tolerated and stripped before validation, so
// "400 001" and "400-001" both construct the code "400001".
//
// The zero value of PostalCode is invalid and will fail validation - use
// NewPostalCode to create instances.
//
// Example:
//
//	code, err := kernel.NewPostalCode("400001")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(code.RegionPrefix())     // Output: 40
//	fmt.Println(code.SettlementPrefix()) // Output: 400
type PostalCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPostalCode creates a PostalCode from raw input.
// Non-digit characters are stripped first; the cleaned string must then be
// exactly 6 digits long with a leading digit in [1,8].
//
// Returns:
//   - PostalCode: A valid postal code instance
//   - error: Validation error describing why the input was rejected
func NewPostalCode(raw string) (PostalCode, error) {
	code := PostalCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := code.setValue(raw); err != nil {
		return PostalCode{}, err
	}

	return code, nil
}

// IsValidPostalCode reports whether raw would construct a valid PostalCode.
// It is the boundary predicate for callers that must not handle errors:
// invalid input simply yields false.
func IsValidPostalCode(raw string) bool {
	_, err := NewPostalCode(raw)
	return err == nil
}

// Validate checks if the PostalCode was properly constructed.
// Returns ErrPostalCodeIsNotConstructed for zero-value instances.
func (p PostalCode) Validate() error {
	return p.guard.Validate(ErrPostalCodeIsNotConstructed)
}

// String returns the cleaned 6-digit code.
// This method implements the fmt.Stringer interface.
func (p PostalCode) String() string {
	return p.value
}

// RegionPrefix returns the first 2 digits of the code, the key used for
// state-level resolution.
func (p PostalCode) RegionPrefix() string {
	return p.value[:regionPrefixLength]
}

// SettlementPrefix returns the first 3 digits of the code, the key used for
// city-level resolution.
func (p PostalCode) SettlementPrefix() string {
	return p.value[:settlementPrefixLength]
}

// IsEqual compares two postal codes by their digit values.
func (p PostalCode) IsEqual(other PostalCode) bool {
	return p.value == other.value
}

// setValue cleans and validates the raw input.
// Note: pointer receiver for self-encapsulated validation during construction,
// mirroring the private setter pattern used across the domain model.
func (p *PostalCode) setValue(raw string) error {
	cleaned := stripNonDigits(raw)

	if len(cleaned) != PostalCodeLength {
		return errs.NewValueIsInvalidError("postal code must contain exactly 6 digits")
	}

	if cleaned[0] < PostalCodeMinLeadingDigit || cleaned[0] > PostalCodeMaxLeadingDigit {
		return errs.NewValueIsOutOfRangeError("postal code leading digit",
			string(cleaned[0]),
			string(rune(PostalCodeMinLeadingDigit)),
			string(rune(PostalCodeMaxLeadingDigit)))
	}

	p.value = cleaned
	return nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
