// Package product contains the catalog listing aggregate. A product links a
// delivery-estimate request to the selling partner whose shop location is
// the route origin.
package product
