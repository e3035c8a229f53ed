package queries

import (
	"context"

	"geodelivery/internal/core/domain/model/geo"
	"geodelivery/internal/core/domain/model/kernel"
)

// ResolvePincodeQueryHandler answers postal code lookups against the reference tables.
// Never fails on malformed input; the response carries the validity verdict instead.
type ResolvePincodeQueryHandler struct {
	directory *geo.Directory
}

// NewResolvePincodeQueryHandler creates a handler backed by the given directory.
func NewResolvePincodeQueryHandler(directory *geo.Directory) ResolvePincodeQueryHandler {
	return ResolvePincodeQueryHandler{directory: directory}
}

// Handle resolves the raw code to its region and settlement.
// Malformed codes yield Valid=false with empty location fields.
// Codes absent from the tables yield Valid=true with "Unknown" placeholders.
func (h ResolvePincodeQueryHandler) Handle(
	ctx context.Context,
	query ResolvePincodeQuery,
) (ResolvePincodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolvePincodeQueryResponse{}, err
	}

	code, err := kernel.NewPostalCode(query.RawCode())
	if err != nil {
		return ResolvePincodeQueryResponse{
			Pincode: query.RawCode(),
			Valid:   false,
		}, nil
	}

	settlement := h.directory.ResolveSettlement(code)

	return ResolvePincodeQueryResponse{
		Pincode:    code.String(),
		Valid:      true,
		Region:     settlement.Region.String(),
		Settlement: settlement.Name,
	}, nil
}
