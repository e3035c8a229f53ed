package queries

import (
	"context"
	"time"

	"geodelivery/internal/core/domain/services"
)

// EstimateDeliveryDaysQueryHandler computes a delivery window for a pair of postal codes.
// Combines tier classification with business day scheduling to produce concrete dates.
//
// Example:
//
//	handler := NewEstimateDeliveryDaysQueryHandler(calculator, scheduler, time.Now)
//	query, _ := NewEstimateDeliveryDaysQuery("400001", "560001")
//
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("Expected between %s and %s\n",
//	    estimate.EarliestDate.Format(time.DateOnly),
//	    estimate.LatestDate.Format(time.DateOnly))
type EstimateDeliveryDaysQueryHandler struct {
	calculator services.TierCalculator
	scheduler  services.BusinessDayScheduler
	now        func() time.Time
}

// NewEstimateDeliveryDaysQueryHandler creates a handler for delivery window queries.
// The now function supplies the current date and is injectable for deterministic tests.
func NewEstimateDeliveryDaysQueryHandler(
	calculator services.TierCalculator,
	scheduler services.BusinessDayScheduler,
	now func() time.Time,
) EstimateDeliveryDaysQueryHandler {
	if now == nil {
		now = time.Now
	}

	return EstimateDeliveryDaysQueryHandler{
		calculator: calculator,
		scheduler:  scheduler,
		now:        now,
	}
}

// Handle classifies the pair of codes and schedules the delivery window.
// Counting starts from the day after the current date, skipping non-working days.
func (h EstimateDeliveryDaysQueryHandler) Handle(
	ctx context.Context,
	query EstimateDeliveryDaysQuery,
) (EstimateDeliveryDaysQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateDeliveryDaysQueryResponse{}, err
	}

	tier, err := h.calculator.Classify(query.Origin(), query.Destination())
	if err != nil {
		return EstimateDeliveryDaysQueryResponse{}, err
	}

	earliest, latest, err := h.scheduler.DatesForTier(tier, h.now())
	if err != nil {
		return EstimateDeliveryDaysQueryResponse{}, err
	}

	return EstimateDeliveryDaysQueryResponse{
		Tier:         tier.String(),
		DayRange:     tier.RangeLabel(),
		MinDays:      tier.MinDays(),
		MaxDays:      tier.MaxDays(),
		EarliestDate: earliest,
		LatestDate:   latest,
	}, nil
}
