// Package partner contains the selling-partner aggregate of the catalog.
// The estimation engine consults a partner's recorded shop pincode to
// resolve the origin side of a delivery route.
package partner
