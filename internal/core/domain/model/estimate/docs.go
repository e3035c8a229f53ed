// Package estimate defines the delivery tier classification produced by the
// tier calculator and consumed by the business-day scheduler. A Tier is
// derived per request from the geographic resolution of the origin and
// destination codes; it is never persisted.
package estimate
