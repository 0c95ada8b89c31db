package queries_test

import (
	"context"
	"testing"

	"ayoya/internal/core/application/usecases/queries"
	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetCourierQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCourierQueryHandler
}

func (suite *GetCourierQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startQueryTestDB(&suite.Suite)
	suite.handler = queries.NewGetCourierQueryHandler(suite.db)
}

func (suite *GetCourierQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCourierQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, couriers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCourierQueryHandlerTestSuite) TestHandle_ReturnsRosterEntryWithCounts() {
	courierID := seedCourier(suite.db, "Pierre Dossou", true)
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-ONEAA1", Status: order.InDelivery, CourierID: &courierID})
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-ONEBB2", Status: order.Delivered, CourierID: &courierID})

	id, err := kernel.UUIDFromBytes(courierID[:])
	suite.Require().NoError(err)
	query, err := queries.NewGetCourierQuery(id)
	suite.Require().NoError(err)

	item, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(courierID.String(), item.ID)
	suite.Equal("Pierre Dossou", item.Name)
	suite.True(item.Active)
	suite.Equal(1, item.ActiveOrders)
	suite.Equal(2, item.OrdersCount)
}

func (suite *GetCourierQueryHandlerTestSuite) TestHandle_UnknownCourier_ReturnsNotFound() {
	query, err := queries.NewGetCourierQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetCourierQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetCourierQueryHandlerTestSuite))
}
