package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ordermanagement/cmd"
	_ "ordermanagement/docs"
	adapterhttp "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Order Management API
//	@version		1.0
//	@description	REST API for creating, querying, and managing orders and their payment lifecycle.
//	@BasePath		/api/v1

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load(".env")

	configs, err := cmd.ParseConfig()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		configs.StaleOrderSchedule,
		configs.StaleOrderTTL,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := adapterhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateSearchOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
