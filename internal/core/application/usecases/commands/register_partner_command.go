package commands

import (
	"errors"

	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/pkg/errs"
	"geodelivery/internal/pkg/guard"
)

var (
	ErrRegisterPartnerCommandIsNotConstructed = errors.New(
		"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
	)
)

// RegisterPartnerCommand represents a request to register a selling partner
// in the catalog. The shop pincode is optional and carried raw: partner
// records without a usable pincode are valid, and the estimation use case
// falls back to the headquarters origin for them.
//
// Example:
//
//	partnerID := kernel.NewUUID()
//	cmd, err := NewRegisterPartnerCommand(partnerID, "Chroma Traders", "411038")
//	if err != nil {
//	    return fmt.Errorf("invalid partner data: %w", err)
//	}
//
//	handler := NewRegisterPartnerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register partner: %w", err)
//	}
type RegisterPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID   kernel.UUID
	name        string
	shopPincode string

	guard guard.ConstructorGuard
}

// NewRegisterPartnerCommand creates a command to register a partner.
// Validates that the partner id is valid and the name is not empty.
// The shop pincode is accepted as-is, including empty.
func NewRegisterPartnerCommand(
	partnerID kernel.UUID, name string, shopPincode string,
) (RegisterPartnerCommand, error) {
	cmd := RegisterPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setName(name),
	); err != nil {
		return RegisterPartnerCommand{}, err
	}

	cmd.shopPincode = shopPincode
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterPartnerCommandIsNotConstructed if validation fails.
func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the partner.
func (c RegisterPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c RegisterPartnerCommand) Name() string {
	return c.name
}

// ShopPincode returns the recorded shop postal code, possibly empty.
func (c RegisterPartnerCommand) ShopPincode() string {
	return c.shopPincode
}

func (c *RegisterPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *RegisterPartnerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
