package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	netHttp "net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/schema"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)

	capabilities, err := schema.Detect(context.Background(), gormDB)
	if err != nil {
		log.Fatalf("Error detecting schema capabilities: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		capabilities,
		packageWeightLimit(configs),
		logger,
	)

	jobManager := jobs.NewJobManager(app.CreateRefreshShippingCachesCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		CarrierBaseURL:     goDotEnvVariable("CARRIER_BASE_URL"),
		PackageWeightLimit: goDotEnvVariable("PACKAGE_WEIGHT_LIMIT"),
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

// openDatabase opens the connection through lib/pq and hands it to gorm.
// The advisory lock adapter inspects pq error codes, so the pq driver has to
// sit underneath instead of gorm's default pgx.
func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting gorm: %v", err)
	}

	return gormDB
}

func packageWeightLimit(configs cmd.Config) *kernel.Weight {
	if configs.PackageWeightLimit == "" {
		return nil
	}

	value, err := decimal.NewFromString(configs.PackageWeightLimit)
	if err != nil {
		log.Fatalf("Error parsing package weight limit: %v", err)
	}
	limit, err := kernel.NewWeight(value)
	if err != nil {
		log.Fatalf("Error parsing package weight limit: %v", err)
	}
	return &limit
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(netHttp.StatusOK, "Healthy")
	})

	server := http.NewServer(
		app.CreateEnsureOrderAndOpenGroupCommandHandler(),
		app.CreateAddItemCommandHandler(),
		app.CreateUpdateItemCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateRefundPaymentCommandHandler(),
		app.CreateCompleteCheckoutCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateRecalculateShippingCommandHandler(),
		app.CreateCreateShippingLabelCommandHandler(),
		app.CreatePreviewShippingQueryHandler(),
		app.CreateGetClientBalancesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
