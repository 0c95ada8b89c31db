package queries_test

import (
	"context"
	"testing"
	"time"

	"ayoya/internal/adapters/out/postgres/courierrepo"
	"ayoya/internal/adapters/out/postgres/orderrepo"
	"ayoya/internal/core/application/usecases/queries"
	"ayoya/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// orderSeed describes one row for the tests; zero fields get sensible
// defaults in seedOrder.
type orderSeed struct {
	Number       string
	CustomerName string
	Phone        string
	City         string
	Zone         string
	Status       order.Status
	CourierID    *uuid.UUID
	TotalAmount  int
	CreatedAt    time.Time
}

func seedOrder(db *gorm.DB, seed orderSeed) uuid.UUID {
	if seed.CustomerName == "" {
		seed.CustomerName = "Adjoua Koffi"
	}
	if seed.Phone == "" {
		seed.Phone = "+22990000000"
	}
	if seed.City == "" {
		seed.City = "Cotonou"
		if seed.Zone == "" {
			seed.Zone = "centre"
		}
	}
	if seed.Status == order.Unknown {
		seed.Status = order.Pending
	}
	if seed.TotalAmount == 0 {
		seed.TotalAmount = 11000
	}
	if seed.CreatedAt.IsZero() {
		seed.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	dto := orderrepo.OrderDTO{
		ID:            uuid.New(),
		Number:        seed.Number,
		CustomerName:  seed.CustomerName,
		Phone:         seed.Phone,
		DeliveryPhone: seed.Phone,
		Address: orderrepo.AddressDTO{
			Street: "Rue 201",
			City:   seed.City,
			Zone:   seed.Zone,
		},
		OrderType:        "bottle",
		Quantity:         2,
		BottlesPerCarton: 6,
		PaymentMethod:    "cash",
		DeliveryMethod:   "delivery",
		TotalAmount:      seed.TotalAmount,
		Status:           int(seed.Status),
		CourierID:        seed.CourierID,
		CreatedAt:        seed.CreatedAt,
		UpdatedAt:        seed.CreatedAt,
	}

	if err := db.Create(&dto).Error; err != nil {
		panic(err)
	}
	return dto.ID
}

func seedCourier(db *gorm.DB, name string, active bool) uuid.UUID {
	now := time.Now().UTC().Truncate(time.Microsecond)
	dto := courierrepo.CourierDTO{
		ID:        uuid.New(),
		Name:      name,
		Phone:     "+22991111111",
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := db.Create(&dto).Error; err != nil {
		panic(err)
	}
	return dto.ID
}

func startQueryTestDB(s *suite.Suite) (*postgres.PostgresContainer, *gorm.DB) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &courierrepo.CourierDTO{})
	s.Require().NoError(err)

	return container, db
}

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startQueryTestDB(&suite.Suite)
	suite.handler = queries.NewListOrdersQueryHandler(suite.db)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, couriers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{}, 1, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(page.Items)
	suite.Equal(int64(0), page.Total)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_NewestFirst() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-AAAAAA", CreatedAt: base.Add(-2 * time.Hour)})
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-BBBBBB", CreatedAt: base.Add(-1 * time.Hour)})
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-CCCCCC", CreatedAt: base})

	query, err := queries.NewListOrdersQuery(queries.OrderFilter{}, 1, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 3)
	suite.Equal("AYO-20260827-CCCCCC", page.Items[0].Number)
	suite.Equal("AYO-20260827-AAAAAA", page.Items[2].Number)
	suite.Equal(int64(3), page.Total)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_Pagination() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := 0; i < 5; i++ {
		seedOrder(suite.db, orderSeed{
			Number:    "AYO-20260827-PAGE0" + string(rune('A'+i)),
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}

	query, err := queries.NewListOrdersQuery(queries.OrderFilter{}, 2, 2)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 2)
	suite.Equal(int64(5), page.Total)
	suite.Equal(2, page.Page)
	suite.Equal("AYO-20260827-PAGE0C", page.Items[0].Number)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_FilterByStatus() {
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-STATA1", Status: order.Pending})
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-STATB2", Status: order.Delivered})

	query, err := queries.NewListOrdersQuery(queries.OrderFilter{Status: "delivered"}, 1, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal("AYO-20260827-STATB2", page.Items[0].Number)
	suite.Equal("delivered", page.Items[0].Status)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_FilterByCityIsCaseInsensitive() {
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-CITYA1", City: "Cotonou", Zone: "akpakpa"})
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-CITYB2", City: "Porto-Novo"})

	query, err := queries.NewListOrdersQuery(queries.OrderFilter{City: "porto-novo"}, 1, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal("AYO-20260827-CITYB2", page.Items[0].Number)
	suite.Empty(page.Items[0].Zone)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_SearchMatchesNumberNameAndPhone() {
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-SRCHA1", CustomerName: "Mariam Soule"})
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-SRCHB2", CustomerName: "Jean Houngbo", Phone: "+22997000001"})

	for search, wantNumber := range map[string]string{
		"mariam":  "AYO-20260827-SRCHA1",
		"srchb2":  "AYO-20260827-SRCHB2",
		"9700000": "AYO-20260827-SRCHB2",
	} {
		query, err := queries.NewListOrdersQuery(queries.OrderFilter{Search: search}, 1, 10)
		suite.Require().NoError(err)

		page, err := suite.handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().Len(page.Items, 1, search)
		suite.Equal(wantNumber, page.Items[0].Number, search)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_FilterByCreatedWindow() {
	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-TIMEA1", CreatedAt: base.Add(-3 * time.Hour)})
	seedOrder(suite.db, orderSeed{Number: "AYO-20260827-TIMEB2", CreatedAt: base.Add(-1 * time.Hour)})

	from := base.Add(-2 * time.Hour)
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{CreatedFrom: &from}, 1, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal("AYO-20260827-TIMEB2", page.Items[0].Number)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_JoinsCourierName() {
	courierID := seedCourier(suite.db, "Pierre Dossou", true)
	seedOrder(suite.db, orderSeed{
		Number:    "AYO-20260827-CRRNA1",
		Status:    order.Assigned,
		CourierID: &courierID,
	})

	query, err := queries.NewListOrdersQuery(queries.OrderFilter{}, 1, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Require().NotNil(page.Items[0].CourierID)
	suite.Equal(courierID.String(), *page.Items[0].CourierID)
	suite.Require().NotNil(page.Items[0].CourierName)
	suite.Equal("Pierre Dossou", *page.Items[0].CourierName)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
