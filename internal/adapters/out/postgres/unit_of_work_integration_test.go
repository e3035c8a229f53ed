package postgres_test

import (
	"context"
	"testing"
	"time"

	"geodelivery/internal/adapters/out/postgres"
	"geodelivery/internal/adapters/out/postgres/partnerrepo"
	"geodelivery/internal/adapters/out/postgres/productrepo"
	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/core/domain/model/partner"
	"geodelivery/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of the
// GORM unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&partnerrepo.PartnerDTO{},
		&productrepo.ProductDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products, partners").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) partnerCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&partnerrepo.PartnerDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) productCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&productrepo.ProductDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := partner.NewPartner(kernel.NewUUID(), "Chroma Traders", "411038")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.PartnerRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.partnerCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := partner.NewPartner(kernel.NewUUID(), "Chroma Traders", "411038")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.PartnerRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.partnerCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MultipleRepositories_Atomic() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	partnerAggregate, err := partner.NewPartner(kernel.NewUUID(), "Chroma Traders", "411038")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, partnerAggregate))

	productAggregate, err := product.NewProduct(kernel.NewUUID(), "Ceramic Vase", partnerAggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, productAggregate))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.partnerCount())
	suite.Equal(int64(1), suite.productCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_MultipleRepositories_NothingPersisted() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	partnerAggregate, err := partner.NewPartner(kernel.NewUUID(), "Chroma Traders", "411038")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, partnerAggregate))

	productAggregate, err := product.NewProduct(kernel.NewUUID(), "Ceramic Vase", partnerAggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, productAggregate))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.partnerCount())
	suite.Equal(int64(0), suite.productCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_Fails() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsIdempotent() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
