package courierdir_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"algexpress/internal/adapters/out/postgres/courierdir"
	"algexpress/internal/adapters/out/postgres/deliveryrepo"
	"algexpress/internal/core/domain/model/delivery"
	"algexpress/internal/pkg/errs"
)

// CourierDirectoryIntegrationTestSuite verifies courier availability lookups
// against a real PostgreSQL database.
type CourierDirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *courierdir.GormCourierDirectory
}

func (suite *CourierDirectoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&courierdir.CourierDTO{}, &deliveryrepo.AssignmentDTO{})
	suite.Require().NoError(err)

	directory, err := courierdir.NewGormCourierDirectory(db)
	suite.Require().NoError(err)
	suite.directory = directory
}

func (suite *CourierDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_assignments").Error)
}

func (suite *CourierDirectoryIntegrationTestSuite) seedCourier(name string, active bool) uuid.UUID {
	courier := courierdir.CourierDTO{
		ID:     uuid.New(),
		Name:   name,
		Phone:  "+5511999990000",
		Active: active,
	}
	suite.Require().NoError(suite.db.Create(&courier).Error)
	return courier.ID
}

func (suite *CourierDirectoryIntegrationTestSuite) seedAssignment(courierID uuid.UUID, status delivery.Status) {
	assignment := deliveryrepo.AssignmentDTO{
		ID:          uuid.New(),
		OrderID:     uuid.New(),
		CourierID:   &courierID,
		Status:      int(status),
		CreatedAt:   time.Now().UTC(),
		DeliveryFee: decimal.NewFromFloat(8.00),
	}
	suite.Require().NoError(suite.db.Create(&assignment).Error)
}

func (suite *CourierDirectoryIntegrationTestSuite) TestGetAvailableCourier_SkipsBusyCouriers() {
	busy := suite.seedCourier("Ana", true)
	free := suite.seedCourier("Bruno", true)
	suite.seedAssignment(busy, delivery.EnRoute)

	id, err := suite.directory.GetAvailableCourier(context.Background())

	suite.Require().NoError(err)
	suite.Equal(free, id.Bytes())
}

func (suite *CourierDirectoryIntegrationTestSuite) TestGetAvailableCourier_SkipsInactiveCouriers() {
	suite.seedCourier("Ana", false)
	free := suite.seedCourier("Bruno", true)

	id, err := suite.directory.GetAvailableCourier(context.Background())

	suite.Require().NoError(err)
	suite.Equal(free, id.Bytes())
}

func (suite *CourierDirectoryIntegrationTestSuite) TestGetAvailableCourier_FreedByTerminalAssignment() {
	courier := suite.seedCourier("Ana", true)
	suite.seedAssignment(courier, delivery.Delivered)

	id, err := suite.directory.GetAvailableCourier(context.Background())

	suite.Require().NoError(err)
	suite.Equal(courier, id.Bytes())
}

func (suite *CourierDirectoryIntegrationTestSuite) TestGetAvailableCourier_NobodyFree() {
	busy := suite.seedCourier("Ana", true)
	suite.seedAssignment(busy, delivery.WaitingForCourier)

	_, err := suite.directory.GetAvailableCourier(context.Background())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCourierDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierDirectoryIntegrationTestSuite))
}
