package commands_test

import (
	"testing"

	"geodelivery/internal/core/application/usecases/commands"
	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/core/domain/model/partner"
	"geodelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	existing, err := partner.NewPartner(partnerID, "Chroma Traders", "411038")
	require.NoError(t, err)

	cmd, err := commands.NewRegisterProductCommand(kernel.NewUUID(), "Ceramic Vase", partnerID)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, partnerID).Return(existing, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	partnerRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterProductCommandHandler_Handle_PartnerNotFound(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterProductCommand(kernel.NewUUID(), "Ceramic Vase", partnerID)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, partnerID).
			Return(nil, errs.NewObjectNotFoundError("partner", partnerID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestRegisterProductCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterProductCommand{} // not constructed properly
	factory := new(MockCatalogUoWFactory)
	h := commands.NewRegisterProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
