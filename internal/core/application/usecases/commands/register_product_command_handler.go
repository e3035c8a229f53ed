package commands

import (
	"context"

	"geodelivery/internal/core/domain/model/product"
)

// RegisterProductCommandHandler handles the business logic for product
// registration. The referenced partner must already exist: the handler
// reads it within the same transaction before persisting the product, so a
// product can never point at a missing partner.
//
// Example:
//
//	handler := NewRegisterProductCommandHandler(uowFactory)
//	cmd, _ := NewRegisterProductCommand(kernel.NewUUID(), "Ceramic Vase", partnerID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("product registration failed: %w", err)
//	}
type RegisterProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRegisterProductCommandHandler creates a handler for product
// registration operations. Requires a CatalogUoWFactory because the handler
// touches both catalog aggregates.
func NewRegisterProductCommandHandler(uowFactory CatalogUoWFactory) RegisterProductCommandHandler {
	return RegisterProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product registration command.
// Returns an ObjectNotFoundError when the referenced partner does not exist.
func (h *RegisterProductCommandHandler) Handle(ctx context.Context, cmd RegisterProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
