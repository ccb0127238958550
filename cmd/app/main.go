package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"printflow/cmd"
	_ "printflow/docs"
	httpin "printflow/internal/adapters/in/http"
	"printflow/internal/adapters/out/postgres/catalogrepo"
	"printflow/internal/adapters/out/postgres/orderrepo"
	"printflow/internal/generated/servers"
	"printflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateSyncCatalogCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

// mustConnectDB ensures the target database exists, opens a GORM
// connection and migrates the schema. Exits on any failure since the
// service cannot run without storage.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	if err := createDBIfNotExists(configs); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.TimelineEntryDTO{},
		&catalogrepo.CatalogEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

// createDBIfNotExists connects to the maintenance database and creates the
// application database when it is missing.
func createDBIfNotExists(configs cmd.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName))
	return err
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateEditOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateUndoOrderCommandHandler(),
		app.CreateRemoveCatalogEntryCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
		app.CreateGetCatalogQueryHandler(),
		app.CreateComposeChallanQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	apiDoc, err := httpin.LoadOpenAPISpec()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI spec: %v", err)
	}
	httpin.RegisterOpenAPIRoute(e, apiDoc)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
