package queries

import (
	"errors"

	"geodelivery/internal/pkg/guard"
)

var (
	ErrResolvePincodeQueryIsNotConstructed = errors.New(
		"ResolvePincodeQuery must be created via NewResolvePincodeQuery constructor",
	)
)

// ResolvePincodeQuery looks up the region and settlement behind a postal code.
// Accepts any raw input; malformed codes produce a response with Valid set to false
// rather than an error, so callers can probe codes without special error handling.
//
// Example:
//
//	query := NewResolvePincodeQuery("560001")
//	info, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	if info.Valid {
//	    fmt.Printf("%s is in %s, %s\n", info.Pincode, info.Settlement, info.Region)
//	}
type ResolvePincodeQuery struct {
	rawCode string

	guard guard.ConstructorGuard
}

// NewResolvePincodeQuery creates a lookup query for the given raw code.
// No validation happens here; validity is part of the query result.
func NewResolvePincodeQuery(rawCode string) ResolvePincodeQuery {
	return ResolvePincodeQuery{
		rawCode: rawCode,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrResolvePincodeQueryIsNotConstructed if validation fails.
func (q ResolvePincodeQuery) Validate() error {
	return q.guard.Validate(ErrResolvePincodeQueryIsNotConstructed)
}

// RawCode returns the code exactly as the caller supplied it.
func (q ResolvePincodeQuery) RawCode() string {
	return q.rawCode
}

// ResolvePincodeQueryResponse describes what is known about a postal code.
// Region and Settlement fall back to "Unknown" for codes outside the
// reference tables; Valid reports whether the code is well formed at all.
type ResolvePincodeQueryResponse struct {
	Pincode    string
	Valid      bool
	Region     string
	Settlement string
}
