package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetOrderQueryHandlerTestSuite exercises the single-order read model against
// a real PostgreSQL instance with the customer join in place.
type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetOrderQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	testCustomer *customer.Customer
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &customerrepo.CustomerDTO{}))
	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, customers").Error)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db)

	testCustomer, err := customer.RestoreCustomer(
		kernel.NewUUID(), "budi@example.com", "Budi", "+628123456789", "REF-BUDI", 0, 3)
	suite.Require().NoError(err)
	suite.Require().NoError(
		customerrepo.NewGormCustomerRepository(suite.db).Add(context.Background(), testCustomer))
	suite.testCustomer = testCustomer
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) seedOrder(partnerID kernel.UUID) *order.Order {
	ord, err := order.NewOrder(
		kernel.NewUUID(), partnerID, suite.testCustomer.ID(),
		order.Contact{
			Name:  suite.testCustomer.Name(),
			Phone: suite.testCustomer.Phone(),
			Email: suite.testCustomer.Email(),
		},
		"",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), ord))
	return ord
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsJoinedView() {
	ctx := context.Background()
	partnerID := kernel.NewUUID()
	ord := suite.seedOrder(partnerID)

	query, err := queries.NewGetOrderQuery(ord.ID(), partnerID)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(resp.ID.IsEqual(ord.ID()))
	suite.Equal("Budi", resp.CustomerName)
	suite.Equal("+628123456789", resp.CustomerPhone)
	suite.Equal("baru", resp.Status)
	suite.Equal("belum bayar", resp.PaymentStatus)
	suite.True(resp.WeightGrams.IsZero())
	suite.True(resp.PriceAfter.IsZero())
	suite.Empty(resp.PaymentURL)
	suite.Nil(resp.PaymentExpiry)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReflectsPricingAndLink() {
	ctx := context.Background()
	partnerID := kernel.NewUUID()
	ord := suite.seedOrder(partnerID)

	weight, err := kernel.WeightFromInt(5000)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.ChangeStatus(order.Processing, weight))
	price, err := kernel.MoneyFromInt(50000)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AssignPrice(price))
	link, err := order.NewPaymentLink("https://pay.example.com/inv-1", time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AttachPaymentLink(link))

	suite.Require().NoError(suite.orderRepo.UpdateStatus(ctx, ord))
	suite.Require().NoError(suite.orderRepo.UpdatePrice(ctx, ord))
	suite.Require().NoError(suite.orderRepo.UpdatePaymentLink(ctx, ord))

	query, err := queries.NewGetOrderQuery(ord.ID(), partnerID)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("diproses", resp.Status)
	suite.True(resp.WeightGrams.Equal(weight.Grams()))
	suite.True(resp.PriceAfter.Equal(price.Amount()))
	suite.Equal("https://pay.example.com/inv-1", resp.PaymentURL)
	suite.NotNil(resp.PaymentExpiry)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ForeignPartnerNotAuthorized() {
	ord := suite.seedOrder(kernel.NewUUID())

	query, err := queries.NewGetOrderQuery(ord.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrNotAuthorized)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
