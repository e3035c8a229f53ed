package commands

import (
	"errors"

	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/pkg/errs"
	"geodelivery/internal/pkg/guard"
)

var (
	ErrRegisterProductCommandIsNotConstructed = errors.New(
		"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
	)
)

// RegisterProductCommand represents a request to register a catalog listing
// owned by an existing partner.
//
// Example:
//
//	cmd, err := NewRegisterProductCommand(kernel.NewUUID(), "Ceramic Vase", partnerID)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewRegisterProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register product: %w", err)
//	}
type RegisterProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterProductCommand creates a command to register a product.
// Validates that both identifiers are valid and the name is not empty.
func NewRegisterProductCommand(
	productID kernel.UUID, name string, partnerID kernel.UUID,
) (RegisterProductCommand, error) {
	cmd := RegisterProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return RegisterProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterProductCommandIsNotConstructed if validation fails.
func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c RegisterProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c RegisterProductCommand) Name() string {
	return c.name
}

// PartnerID returns the identifier of the selling partner.
func (c RegisterProductCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *RegisterProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RegisterProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterProductCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}
