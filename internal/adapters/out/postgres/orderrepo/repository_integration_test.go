package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/stretchr/testify/suite"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including the customer join on the read side.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	repository   *orderrepo.GormOrderRepository
	customerRepo *customerrepo.GormCustomerRepository
	testCustomer *customer.Customer
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, customers").Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
	suite.customerRepo = customerrepo.NewGormCustomerRepository(suite.db)

	testCustomer, err := customer.RestoreCustomer(
		kernel.NewUUID(), "budi@example.com", "Budi", "+628123456789", "REF-BUDI", 0, 3)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(context.Background(), testCustomer))
	suite.testCustomer = testCustomer
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(partnerID kernel.UUID) *order.Order {
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
	return ord
}

func (suite *OrderRepositoryIntegrationTestSuite) weigh(ord *order.Order, grams int64) {
	weight, err := kernel.WeightFromInt(grams)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.ChangeStatus(order.Processing, weight))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_JoinsCustomerContact() {
	ctx := context.Background()

	ord := suite.newOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(ord))
	suite.Equal("Budi", loaded.Contact().Name)
	suite.Equal("+628123456789", loaded.Contact().Phone)
	suite.Equal("budi@example.com", loaded.Contact().Email)
	suite.Equal(order.Created, loaded.Status())
	suite.Equal(order.PaymentUnpaid, loaded.PaymentStatus())
	suite.True(loaded.Weight().IsZero())
	suite.True(loaded.PriceAfter().IsZero())
	suite.Nil(loaded.PaymentLink())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByPartner_FiltersAndOrders() {
	ctx := context.Background()
	partnerID := kernel.NewUUID()

	first := suite.newOrder(partnerID)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newOrder(partnerID)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	foreign := suite.newOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	orders, err := suite.repository.GetAllByPartner(ctx, partnerID)
	suite.Require().NoError(err)

	suite.Len(orders, 2)
	for _, o := range orders {
		suite.True(o.IsOwnedBy(partnerID))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_PersistsStatusAndWeight() {
	ctx := context.Background()

	ord := suite.newOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	suite.weigh(ord, 4500)
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, ord))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, loaded.Status())
	suite.True(loaded.Weight().IsEqual(ord.Weight()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_MissingRowConflicts() {
	ctx := context.Background()

	ord := suite.newOrder(kernel.NewUUID())
	// never added
	err := suite.repository.UpdateStatus(ctx, ord)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrUpdateConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdatePriceAndLink_RoundTrip() {
	ctx := context.Background()

	ord := suite.newOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	suite.weigh(ord, 5000)
	price, err := kernel.MoneyFromInt(50000)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AssignPrice(price))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, ord))
	suite.Require().NoError(suite.repository.UpdatePrice(ctx, ord))

	expiresAt := time.Now().Add(24 * time.Hour).Truncate(time.Second).UTC()
	link, err := order.NewPaymentLink("https://pay.example.com/inv-1", expiresAt)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AttachPaymentLink(link))
	suite.Require().NoError(suite.repository.UpdatePaymentLink(ctx, ord))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.True(loaded.PriceAfter().IsEqual(price))
	suite.Require().NotNil(loaded.PaymentLink())
	suite.Equal("https://pay.example.com/inv-1", loaded.PaymentLink().URL())
	suite.True(loaded.PaymentLink().ExpiresAt().Equal(expiresAt))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCancellation_ClearsPriceAndLink() {
	ctx := context.Background()

	ord := suite.newOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	suite.weigh(ord, 5000)
	price, err := kernel.MoneyFromInt(50000)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AssignPrice(price))
	link, err := order.NewPaymentLink("https://pay.example.com/inv-2", time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AttachPaymentLink(link))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, ord))
	suite.Require().NoError(suite.repository.UpdatePrice(ctx, ord))
	suite.Require().NoError(suite.repository.UpdatePaymentLink(ctx, ord))

	suite.Require().NoError(ord.ChangeStatus(order.Cancelled, kernel.ZeroWeight()))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, ord))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, loaded.Status())
	suite.True(loaded.PriceAfter().IsZero())
	suite.Nil(loaded.PaymentLink())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_KeepsConcurrentlyCommittedPriceAndLink() {
	ctx := context.Background()

	ord := suite.newOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, ord))
	suite.weigh(ord, 5000)
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, ord))

	// A second caller reads the row before pricing lands.
	stale, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)

	price, err := kernel.MoneyFromInt(50000)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AssignPrice(price))
	suite.Require().NoError(suite.repository.UpdatePrice(ctx, ord))

	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second).UTC()
	link, err := order.NewPaymentLink("https://pay.example.com/inv-3", expiresAt)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AttachPaymentLink(link))
	suite.Require().NoError(suite.repository.UpdatePaymentLink(ctx, ord))

	suite.Require().NoError(stale.ChangeStatus(order.Delivering, kernel.ZeroWeight()))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, stale))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivering, loaded.Status())
	suite.True(loaded.PriceAfter().IsEqual(price))
	suite.Require().NotNil(loaded.PaymentLink())
	suite.Equal("https://pay.example.com/inv-3", loaded.PaymentLink().URL())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdatePaymentStatus_Persists() {
	ctx := context.Background()

	ord := suite.newOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	suite.Require().NoError(ord.MarkPaid())
	suite.Require().NoError(suite.repository.UpdatePaymentStatus(ctx, ord))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PaymentPaid, loaded.PaymentStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetUnpaidWithActiveLink_Filters() {
	ctx := context.Background()
	now := time.Now()

	withActiveLink := suite.newOrder(kernel.NewUUID())
	suite.prepareLinked(ctx, withActiveLink, now.Add(2*time.Hour))

	withExpiredLink := suite.newOrder(kernel.NewUUID())
	suite.prepareLinked(ctx, withExpiredLink, now.Add(-time.Hour))

	paid := suite.newOrder(kernel.NewUUID())
	suite.prepareLinked(ctx, paid, now.Add(2*time.Hour))
	suite.Require().NoError(paid.MarkPaid())
	suite.Require().NoError(suite.repository.UpdatePaymentStatus(ctx, paid))

	unlinked := suite.newOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, unlinked))

	pending, err := suite.repository.GetUnpaidWithActiveLink(ctx, now)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 1)
	suite.True(pending[0].IsEqual(withActiveLink))
}

// prepareLinked persists an order weighed, priced, and holding a link with
// the given expiry.
func (suite *OrderRepositoryIntegrationTestSuite) prepareLinked(
	ctx context.Context, ord *order.Order, expiresAt time.Time,
) {
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	suite.weigh(ord, 3000)
	price, err := kernel.MoneyFromInt(30000)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AssignPrice(price))
	link, err := order.NewPaymentLink("https://pay.example.com/"+uuid.NewString(), expiresAt)
	suite.Require().NoError(err)
	suite.Require().NoError(ord.AttachPaymentLink(link))

	suite.Require().NoError(suite.repository.UpdateStatus(ctx, ord))
	suite.Require().NoError(suite.repository.UpdatePrice(ctx, ord))
	suite.Require().NoError(suite.repository.UpdatePaymentLink(ctx, ord))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
