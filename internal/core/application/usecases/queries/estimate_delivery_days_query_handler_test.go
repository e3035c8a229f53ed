package queries_test

import (
	"testing"
	"time"

	"geodelivery/internal/core/application/usecases/queries"
	"geodelivery/internal/core/domain/model/geo"
	"geodelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEstimateHandler(now time.Time) queries.EstimateDeliveryDaysQueryHandler {
	calculator := services.NewTierCalculator(geo.NewDirectory(), geo.NewAdjacencyGraph())

	return queries.NewEstimateDeliveryDaysQueryHandler(
		calculator,
		services.NewBusinessDayScheduler(),
		func() time.Time { return now },
	)
}

func TestEstimateDeliveryDaysQueryHandler_Handle(t *testing.T) {
	// Monday.
	monday := time.Date(2026, time.August, 24, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		origin       string
		destination  string
		wantTier     string
		wantRange    string
		wantEarliest time.Time
		wantLatest   time.Time
	}{
		{
			name:         "same address",
			origin:       "400001",
			destination:  "400001",
			wantTier:     "SameAddress",
			wantRange:    "1",
			wantEarliest: time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC),
			wantLatest:   time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "same settlement",
			origin:       "400001",
			destination:  "400059",
			wantTier:     "SameSettlement",
			wantRange:    "1-2",
			wantEarliest: time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC),
			wantLatest:   time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "same region",
			origin:       "400001",
			destination:  "411038",
			wantTier:     "SameRegion",
			wantRange:    "2-3",
			wantEarliest: time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC),
			wantLatest:   time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "neighboring region",
			origin:       "400001",
			destination:  "380001",
			wantTier:     "NeighboringRegion",
			wantRange:    "3-4",
			wantEarliest: time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC),
			wantLatest:   time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "distant region",
			origin:       "400001",
			destination:  "700001",
			wantTier:     "DistantRegion",
			wantRange:    "4-5",
			wantEarliest: time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
			// Saturday is a working day, so the fifth day lands on it.
			wantLatest: time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	handler := newEstimateHandler(monday)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewEstimateDeliveryDaysQuery(tt.origin, tt.destination)
			require.NoError(t, err)

			result, err := handler.Handle(t.Context(), query)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTier, result.Tier)
			assert.Equal(t, tt.wantRange, result.DayRange)
			assert.Equal(t, tt.wantEarliest, result.EarliestDate)
			assert.Equal(t, tt.wantLatest, result.LatestDate)
		})
	}
}

func TestEstimateDeliveryDaysQueryHandler_Handle_NotConstructed(t *testing.T) {
	handler := newEstimateHandler(time.Now())

	var query queries.EstimateDeliveryDaysQuery
	_, err := handler.Handle(t.Context(), query)
	assert.ErrorIs(t, err, queries.ErrEstimateDeliveryDaysQueryIsNotConstructed)
}
