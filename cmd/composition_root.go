package cmd

import (
	"time"

	"geodelivery/internal/adapters/out/postgres"
	"geodelivery/internal/core/application/usecases/commands"
	"geodelivery/internal/core/application/usecases/queries"
	"geodelivery/internal/core/domain/model/geo"
	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	directory     *geo.Directory
	borders       *geo.AdjacencyGraph
	calculator    services.TierCalculator
	scheduler     services.BusinessDayScheduler
	defaultOrigin kernel.PostalCode
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	defaultOrigin, err := kernel.NewPostalCode(config.DefaultOriginPincode)
	if err != nil {
		return CompositionRoot{}, err
	}

	directory := geo.NewDirectory()
	borders := geo.NewAdjacencyGraph()

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:     directory,
		borders:       borders,
		calculator:    services.NewTierCalculator(directory, borders),
		scheduler:     services.NewBusinessDayScheduler(),
		defaultOrigin: defaultOrigin,
	}, nil
}

func (c *CompositionRoot) Directory() *geo.Directory {
	return c.directory
}

func (c *CompositionRoot) Borders() *geo.AdjacencyGraph {
	return c.borders
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() commands.RegisterProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDeliveryEstimateQueryHandler() queries.GetDeliveryEstimateQueryHandler {
	return queries.NewGetDeliveryEstimateQueryHandler(
		c.gormDB, c.calculator, c.scheduler, c.directory, c.defaultOrigin, time.Now,
	)
}

func (c *CompositionRoot) CreateResolvePincodeQueryHandler() queries.ResolvePincodeQueryHandler {
	return queries.NewResolvePincodeQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateEstimateDeliveryDaysQueryHandler() queries.EstimateDeliveryDaysQueryHandler {
	return queries.NewEstimateDeliveryDaysQueryHandler(c.calculator, c.scheduler, time.Now)
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
