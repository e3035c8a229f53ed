// Package services contains the domain services of the estimation engine:
// the tier calculator, which classifies a route by locality, and the
// business-day scheduler, which turns a tier's day range into calendar
// dates. Both are pure functions of their inputs and the injected static
// tables, which keeps the engine trivially safe under concurrent
// invocation.
package services
