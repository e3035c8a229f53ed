package product

import (
	"errors"

	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a catalog listing sold by a partner. The estimation
// engine uses the product solely to reach its selling partner, whose shop
// location is the origin of the delivery route.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Must reference a valid partner identifier
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	id kernel.UUID

	name string

	// partnerID references the selling partner
	partnerID kernel.UUID

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new Product instance with validation.
//
// Parameters:
//   - id: Unique identifier for the product (must be valid)
//   - name: Display name (must be non-empty)
//   - partnerID: Identifier of the selling partner (must be valid)
//
// Returns:
//   - *Product: The created product if all validations pass
//   - error: Validation error if any parameter is invalid
func NewProduct(id kernel.UUID, name string, partnerID kernel.UUID) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPartnerID(partnerID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// Applies the same invariants as NewProduct.
func RestoreProduct(id kernel.UUID, name string, partnerID kernel.UUID) (*Product, error) {
	return NewProduct(id, name, partnerID)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// PartnerID returns the identifier of the selling partner.
func (p *Product) PartnerID() kernel.UUID {
	return p.partnerID
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}

func (p *Product) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	p.partnerID = partnerID
	return nil
}
