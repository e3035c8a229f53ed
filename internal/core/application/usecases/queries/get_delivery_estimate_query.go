package queries

import (
	"errors"
	"time"

	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/pkg/errs"
	"geodelivery/internal/pkg/guard"
)

var (
	ErrGetDeliveryEstimateQueryIsNotConstructed = errors.New(
		"GetDeliveryEstimateQuery must be created via NewGetDeliveryEstimateQuery constructor",
	)
)

// GetDeliveryEstimateQuery estimates delivery of a specific product to a customer pincode.
// The shipment origin is the pincode of the partner who sells the product; it is
// resolved by the handler, so the query only carries the product and the destination.
//
// Example:
//
//	query, err := NewGetDeliveryEstimateQuery(productID, "560001")
//	if err != nil {
//	    return fmt.Errorf("bad destination: %w", err)
//	}
//
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("Ships from %s (%s), arrives by %s\n",
//	    estimate.Origin.Settlement, estimate.Origin.Region,
//	    estimate.LatestDate.Format(time.DateOnly))
type GetDeliveryEstimateQuery struct {
	productID   kernel.UUID
	destination kernel.PostalCode

	guard guard.ConstructorGuard
}

// NewGetDeliveryEstimateQuery creates an estimate query for a product and destination.
// Returns a ValueIsInvalidError when the destination is not a deliverable postal code.
func NewGetDeliveryEstimateQuery(productID kernel.UUID, destination string) (GetDeliveryEstimateQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetDeliveryEstimateQuery{}, errs.NewValueIsRequiredErrorWithCause("productID", err)
	}

	destinationCode, err := kernel.NewPostalCode(destination)
	if err != nil {
		return GetDeliveryEstimateQuery{}, errs.NewValueIsInvalidErrorWithCause("pincode", err)
	}

	return GetDeliveryEstimateQuery{
		productID:   productID,
		destination: destinationCode,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryEstimateQueryIsNotConstructed if validation fails.
func (q GetDeliveryEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryEstimateQueryIsNotConstructed)
}

// ProductID returns the identifier of the product being shipped.
func (q GetDeliveryEstimateQuery) ProductID() kernel.UUID {
	return q.productID
}

// Destination returns the customer postal code.
func (q GetDeliveryEstimateQuery) Destination() kernel.PostalCode {
	return q.destination
}

// OriginLocation describes where the shipment departs from.
type OriginLocation struct {
	Pincode    string
	Region     string
	Settlement string
}

// GetDeliveryEstimateQueryResponse is the read model for a product delivery estimate.
type GetDeliveryEstimateQueryResponse struct {
	ProductID    kernel.UUID
	ProductName  string
	PartnerName  string
	Origin       OriginLocation
	Destination  string
	Tier         string
	DayRange     string
	MinDays      int
	MaxDays      int
	EarliestDate time.Time
	LatestDate   time.Time
}
