package clientrepo_test

import (
	"context"
	"testing"

	"workshop/internal/adapters/out/postgres/clientrepo"
	"workshop/internal/adapters/out/postgres/pgtest"
	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ClientRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *clientrepo.GormClientRepository
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(database.DB.AutoMigrate(&clientrepo.ClientDTO{}))
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("clients"))
	suite.repository = clientrepo.NewGormClientRepository(suite.database.DB)
}

func (suite *ClientRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ClientRepositoryIntegrationTestSuite) newClient(first, phoneNumber, email string) *client.Client {
	name, err := kernel.NewPersonName(first, "Smirnova", "")
	suite.Require().NoError(err)
	phone, err := kernel.NewPhone(phoneNumber)
	suite.Require().NoError(err)
	c, err := client.NewClient(name, phone, email)
	suite.Require().NoError(err)
	return c
}

func (suite *ClientRepositoryIntegrationTestSuite) TestSave_AndGetByPhone() {
	ctx := context.Background()
	c := suite.newClient("Olga", "+79001234567", "olga@example.com")
	suite.Require().NoError(suite.repository.Save(ctx, c))

	got, err := suite.repository.GetByPhone(ctx, c.Phone())

	suite.Require().NoError(err)
	suite.True(c.ID().IsEqual(got.ID()))
	suite.Equal("Olga", got.Name().First())
	suite.Equal("olga@example.com", got.Email())
}

func (suite *ClientRepositoryIntegrationTestSuite) TestGetByPhone_Unknown_ReturnsNotFoundError() {
	phone, err := kernel.NewPhone("+79990000000")
	suite.Require().NoError(err)

	_, err = suite.repository.GetByPhone(context.Background(), phone)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestSave_DuplicatePhone_IsRejected() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, suite.newClient("Olga", "+79001234567", "")))

	err := suite.repository.Save(ctx, suite.newClient("Anna", "+79001234567", ""))

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestGetAll_OrderedByID() {
	ctx := context.Background()
	first := suite.newClient("Olga", "+79001234567", "")
	second := suite.newClient("Anna", "+79007654321", "")
	suite.Require().NoError(suite.repository.Save(ctx, first))
	suite.Require().NoError(suite.repository.Save(ctx, second))

	all, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(first.ID().IsEqual(all[0].ID()))
	suite.True(second.ID().IsEqual(all[1].ID()))
}

func TestClientRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ClientRepositoryIntegrationTestSuite))
}
