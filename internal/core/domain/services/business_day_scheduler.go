package services

import (
	"time"

	"geodelivery/internal/core/domain/model/estimate"
)

// BusinessDayScheduler converts a tier's day-count range into concrete
// calendar dates, advancing day-by-day from "today" and skipping the
// designated non-working weekday without consuming budget.
//
// The loop always looks forward from tomorrow: if today itself falls on the
// non-working day it is not counted as day zero, and neither bound ever
// lands on the non-working day.
//
// Example:
//
//	scheduler := services.NewBusinessDayScheduler()
//	// Saturday + 1 business day = Monday (Sunday skipped)
//	earliest, latest, err := scheduler.DatesForTier(estimate.SameAddress, saturday)
type BusinessDayScheduler struct {
	nonWorkingDay time.Weekday
}

// NewBusinessDayScheduler creates a scheduler with Sunday as the
// non-working weekday.
func NewBusinessDayScheduler() BusinessDayScheduler {
	return BusinessDayScheduler{nonWorkingDay: time.Sunday}
}

// NewBusinessDaySchedulerWithNonWorkingDay creates a scheduler skipping the
// given weekday. Used by tests and deployments with a different rest day.
func NewBusinessDaySchedulerWithNonWorkingDay(day time.Weekday) BusinessDayScheduler {
	return BusinessDayScheduler{nonWorkingDay: day}
}

// DatesForTier returns the earliest and latest delivery dates for a tier,
// counting tier.MinDays() and tier.MaxDays() business days forward from
// today. The returned dates are calendar dates: any time-of-day component
// of today is truncated.
func (s BusinessDayScheduler) DatesForTier(
	tier estimate.Tier,
	today time.Time,
) (earliest, latest time.Time, err error) {
	if err = tier.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := truncateToDate(today)
	earliest = s.addBusinessDays(start, tier.MinDays())
	latest = s.addBusinessDays(start, tier.MaxDays())
	return earliest, latest, nil
}

// addBusinessDays advances day-by-day; each advanced day counts toward the
// budget unless it falls on the non-working weekday.
func (s BusinessDayScheduler) addBusinessDays(from time.Time, days int) time.Time {
	current := from
	for counted := 0; counted < days; {
		current = current.AddDate(0, 0, 1)
		if current.Weekday() != s.nonWorkingDay {
			counted++
		}
	}
	return current
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
