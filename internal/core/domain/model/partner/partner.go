package partner

import (
	"errors"

	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/pkg/errs"
)

// ErrPartnerIsNotConstructed is returned when a Partner instance was not
// created through NewPartner or RestorePartner.
var ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

// Partner represents a selling partner whose shop location anchors delivery
// estimates for its products.
//
// Partner follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Can only be created through NewPartner or RestorePartner
//
// The shop pincode is deliberately stored raw and may be empty or
// syntactically invalid: partner records in the wild frequently lack a
// usable postal code, and the estimation use case falls back to the company
// headquarters origin in that case instead of failing the request.
type Partner struct {
	id kernel.UUID

	name string

	// shopPincode is the partner's shop postal code as recorded, possibly
	// empty or unusable
	shopPincode string

	// isConstructed ensures the partner was created via a constructor
	isConstructed bool
}

// NewPartner creates a new Partner instance with validation.
//
// Parameters:
//   - id: Unique identifier for the partner (must be valid)
//   - name: Display name (must be non-empty)
//   - shopPincode: Shop postal code as recorded; may be empty
//
// Returns:
//   - *Partner: The created partner if all validations pass
//   - error: Validation error if any parameter is invalid
func NewPartner(id kernel.UUID, name string, shopPincode string) (*Partner, error) {
	p := &Partner{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	p.shopPincode = shopPincode
	return p, nil
}

// RestorePartner reconstructs a Partner from persistence.
// Applies the same invariants as NewPartner.
func RestorePartner(id kernel.UUID, name string, shopPincode string) (*Partner, error) {
	return NewPartner(id, name, shopPincode)
}

// Validate ensures the Partner instance was properly constructed.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// ShopPincode returns the recorded shop postal code, which may be empty or
// syntactically invalid. Callers that need a usable origin must parse it
// and fall back when parsing fails.
func (p *Partner) ShopPincode() string {
	return p.shopPincode
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}
