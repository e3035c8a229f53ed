// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/pkg/errs"
	"geodelivery/internal/pkg/guard"
)

var (
	ErrEstimateDeliveryDaysQueryIsNotConstructed = errors.New(
		"EstimateDeliveryDaysQuery must be created via NewEstimateDeliveryDaysQuery constructor",
	)
)

// EstimateDeliveryDaysQuery estimates the delivery window between two postal codes.
// Both codes are validated at construction so handlers operate on well-formed input.
//
// Example:
//
//	query, err := NewEstimateDeliveryDaysQuery("400001", "560001")
//	if err != nil {
//	    return fmt.Errorf("invalid postal codes: %w", err)
//	}
//
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("Delivery in %s days, by %s\n", estimate.DayRange, estimate.LatestDate)
type EstimateDeliveryDaysQuery struct {
	origin      kernel.PostalCode
	destination kernel.PostalCode

	guard guard.ConstructorGuard
}

// NewEstimateDeliveryDaysQuery creates a query from raw origin and destination codes.
// Returns a ValueIsInvalidError when either code is not a deliverable postal code.
func NewEstimateDeliveryDaysQuery(origin string, destination string) (EstimateDeliveryDaysQuery, error) {
	originCode, err := kernel.NewPostalCode(origin)
	if err != nil {
		return EstimateDeliveryDaysQuery{}, errs.NewValueIsInvalidErrorWithCause("origin", err)
	}

	destinationCode, err := kernel.NewPostalCode(destination)
	if err != nil {
		return EstimateDeliveryDaysQuery{}, errs.NewValueIsInvalidErrorWithCause("destination", err)
	}

	return EstimateDeliveryDaysQuery{
		origin:      originCode,
		destination: destinationCode,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrEstimateDeliveryDaysQueryIsNotConstructed if validation fails.
func (q EstimateDeliveryDaysQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryDaysQueryIsNotConstructed)
}

// Origin returns the origin postal code.
func (q EstimateDeliveryDaysQuery) Origin() kernel.PostalCode {
	return q.origin
}

// Destination returns the destination postal code.
func (q EstimateDeliveryDaysQuery) Destination() kernel.PostalCode {
	return q.destination
}

// EstimateDeliveryDaysQueryResponse is the read model for a delivery window.
// Dates are calendar days with the time component truncated.
type EstimateDeliveryDaysQueryResponse struct {
	Tier         string
	DayRange     string
	MinDays      int
	MaxDays      int
	EarliestDate time.Time
	LatestDate   time.Time
}
