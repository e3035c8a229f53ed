package commands

import (
	"context"

	"geodelivery/internal/core/domain/model/partner"
)

// RegisterPartnerCommandHandler handles the business logic for partner
// registration. Uses a transaction to ensure the partner is properly
// persisted or rolled back on error.
//
// Example:
//
//	handler := NewRegisterPartnerCommandHandler(uowFactory)
//	cmd, _ := NewRegisterPartnerCommand(kernel.NewUUID(), "Chroma Traders", "411038")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("partner registration failed: %w", err)
//	}
type RegisterPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewRegisterPartnerCommandHandler creates a handler for partner
// registration operations. Requires a PartnerUoWFactory for transactional
// persistence.
func NewRegisterPartnerCommandHandler(uowFactory PartnerUoWFactory) RegisterPartnerCommandHandler {
	return RegisterPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command.
func (h *RegisterPartnerCommandHandler) Handle(ctx context.Context, cmd RegisterPartnerCommand) error {
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

	aggregate, err := partner.NewPartner(cmd.PartnerID(), cmd.Name(), cmd.ShopPincode())
	if err != nil {
		return err
	}

	if err = uow.PartnerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
