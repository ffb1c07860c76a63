package main

import (
	"fmt"
	"log/slog"
	"os"

	"procurement/cmd"
	httpin "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres/catalogrepo"
	"procurement/internal/adapters/out/postgres/lineitemrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/productrepo"
	"procurement/internal/adapters/out/postgres/supplierrepo"
	"procurement/internal/adapters/out/postgres/userrepo"
	"procurement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetOrdersByStatusQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, relying on process environment: %v", err)
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
	}
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&lineitemrepo.LineItemDTO{},
		&supplierrepo.SupplierDTO{},
		&productrepo.ProductDTO{},
		&catalogrepo.CatalogItemDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrdersBySupplierQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
