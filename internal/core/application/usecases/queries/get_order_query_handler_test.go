package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"algexpress/internal/adapters/out/postgres/orderrepo"
	"algexpress/internal/adapters/out/postgres/paymentrepo"
	"algexpress/internal/core/application/usecases/queries"
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/core/domain/model/payment"
	"algexpress/internal/pkg/errs"
)

// mockAggregateTracker implements the repositories' tracker for test
// purposes.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

// GetOrderQueryHandlerTestSuite verifies the read side against a real
// PostgreSQL instance using the write-side repositories as fixtures.
type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	orderHandler   queries.GetOrderQueryHandler
	paymentHandler queries.GetOrderPaymentsQueryHandler
	activeHandler  queries.GetActiveOrdersQueryHandler
	orderRepo      *orderrepo.GormOrderRepository
	paymentRepo    *paymentrepo.GormPaymentRepository
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}, &paymentrepo.PaymentDTO{})
	suite.Require().NoError(err)

	suite.orderHandler = queries.NewGetOrderQueryHandler(db)
	suite.paymentHandler = queries.NewGetOrderPaymentsQueryHandler(db)
	suite.activeHandler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.paymentRepo = paymentrepo.NewGormPaymentRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) money(value string) kernel.Money {
	m, err := kernel.NewMoneyFromString(value)
	suite.Require().NoError(err)
	return m
}

func (suite *GetOrderQueryHandlerTestSuite) createDeliveryOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Delivery, suite.money("8.00"), "")
	suite.Require().NoError(err)

	line, err := order.NewLine(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita",
		menu.Medium, 1, nil, nil, "", suite.money("32.90"),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddLine(line))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	return o
}

func (suite *GetOrderQueryHandlerTestSuite) createApprovedPayment(orderID kernel.UUID, amount string) *payment.Payment {
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, payment.Cash, suite.money(amount), "")
	suite.Require().NoError(err)
	suite.Require().NoError(p.RecordTendered(suite.money(amount)))
	suite.Require().NoError(p.Process())
	suite.Require().NoError(suite.paymentRepo.Add(context.Background(), p))
	return p
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsOrderWithLines() {
	testOrder := suite.createDeliveryOrder()

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.orderHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(testOrder.ID()))
	suite.Equal("Delivery", result.Kind)
	suite.Equal("Pending", result.Status)
	suite.True(result.Total.IsEqual(suite.money("40.90")))
	suite.Require().Len(result.Lines, 1)
	suite.Equal("Margherita", result.Lines[0].ItemName)
	suite.Equal("Medium", result.Lines[0].Size)
	suite.False(result.FullyPaid)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_FullyPaidWhenApprovedCoversTotal() {
	testOrder := suite.createDeliveryOrder()
	suite.createApprovedPayment(testOrder.ID(), "40.90")

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.orderHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ApprovedTotal.IsEqual(suite.money("40.90")))
	suite.True(result.FullyPaid)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.orderHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_PaymentHistory_OldestFirst() {
	testOrder := suite.createDeliveryOrder()
	first := suite.createApprovedPayment(testOrder.ID(), "20.00")
	second := suite.createApprovedPayment(testOrder.ID(), "20.90")

	query, err := queries.NewGetOrderPaymentsQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.paymentHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.Equal("Cash", result[0].Method)
	suite.Equal("Approved", result[0].Status)
	suite.Require().NotNil(result[0].PaidAt)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ActiveOrders_ExcludesTerminal() {
	open := suite.createDeliveryOrder()

	closed := suite.createDeliveryOrder()
	suite.Require().NoError(closed.Cancel(false))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), closed))

	result, err := suite.activeHandler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(open.ID()))
	suite.Equal("Pending", result[0].Status)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
