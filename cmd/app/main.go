package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"algexpress/cmd"
	adapterhttp "algexpress/internal/adapters/in/http"
	"algexpress/internal/adapters/out/fees"
	"algexpress/internal/adapters/out/postgres/courierdir"
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/generated/servers"
	"algexpress/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	baseFee, err := kernel.NewMoneyFromString(configs.DeliveryBaseFee)
	if err != nil {
		log.Fatalf("Invalid delivery base fee: %v", err)
	}

	feeCalculator, err := fees.NewZoneFeeCalculator(baseFee, nil)
	if err != nil {
		log.Fatalf("Failed to create fee calculator: %v", err)
	}

	directory, err := courierdir.NewGormCourierDirectory(gormDB)
	if err != nil {
		log.Fatalf("Failed to create courier directory: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		feeCalculator,
		directory,
	)

	startJobs(&app, configs)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		DeliveryBaseFee:   goDotEnvVariable("DELIVERY_BASE_FEE"),
		PaymentMaxAgeMins: goDotEnvVariable("PAYMENT_MAX_AGE_MINS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) {
	maxAgeMins, err := strconv.Atoi(configs.PaymentMaxAgeMins)
	if err != nil || maxAgeMins < 1 {
		log.Fatalf("Invalid payment max age: %q", configs.PaymentMaxAgeMins)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateAssignCourierCommandHandler(),
		app.CreateExpirePaymentsCommandHandler(),
		time.Duration(maxAgeMins)*time.Minute,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.String(http.StatusInternalServerError, "Failed to load API document")
		}
		return c.JSON(http.StatusOK, swagger)
	})

	server := adapterhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddOrderLineCommandHandler(),
		app.CreateRemoveOrderLineCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateProcessPaymentCommandHandler(),
		app.CreateRedeemLoyaltyPointsCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrderPaymentsQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
