package main

import (
	"fmt"
	"net/http"

	"rentalhub/cmd"
	_ "rentalhub/docs"
	adapterhttp "rentalhub/internal/adapters/in/http"
	"rentalhub/internal/adapters/out/email"
	"rentalhub/internal/jobs"
	"rentalhub/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoswagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			RentalHub Admin API
//	@version		1.0
//	@description	Order status management and vendor administration for the rental marketplace.
//	@BasePath		/api/v1
func main() {
	// A missing .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")
	configs := cmd.LoadConfig()

	zapLogger, err := logger.New(configs.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	notifier := email.NewSMTPNotifier(email.Config{
		Host:     configs.SMTPHost,
		Port:     configs.SMTPPort,
		Username: configs.SMTPUser,
		Password: configs.SMTPPassword,
		From:     configs.SMTPFrom,
	})

	root := cmd.NewCompositionRoot(gormDB, notifier, zapLogger)

	jobManager := jobs.NewJobManager(root.CreateGetOverdueRentalsQueryHandler(), zapLogger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoswagger.WrapHandler)

	validator, err := adapterhttp.NewRequestValidator()
	if err != nil {
		log.Fatalf("Failed to build request validator: %v", err)
	}

	server := adapterhttp.NewServer(
		root.CreateUpdateOrderCommandHandler(),
		root.CreateDeleteVendorCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetOrdersQueryHandler(),
	)

	api := e.Group("/api/v1")
	api.Use(validator)
	server.RegisterRoutes(api)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
