package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"dronedelivery/cmd"
	deliveryhttp "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/adapters/out/postgres/dronerepo"
	"dronedelivery/internal/adapters/out/postgres/enduserrepo"
	"dronedelivery/internal/adapters/out/postgres/jobrepo"
	"dronedelivery/internal/adapters/out/postgres/orderrepo"
	"dronedelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultTokenTTL           = 24 * time.Hour
	defaultAssignmentInterval = 10 * time.Second
	defaultSweepInterval      = time.Minute
	defaultHeartbeatTimeout   = 5 * time.Minute
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	schedule := jobs.Schedule{
		AssignmentInterval: durationConfig(configs.AssignmentInterval, defaultAssignmentInterval),
		SweepInterval:      durationConfig(configs.SweepInterval, defaultSweepInterval),
		HeartbeatTimeout:   durationConfig(configs.HeartbeatTimeout, defaultHeartbeatTimeout),
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(schedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
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
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		TokenTTL:           goDotEnvVariable("TOKEN_TTL"),
		AssignmentInterval: goDotEnvVariable("ASSIGNMENT_INTERVAL"),
		SweepInterval:      goDotEnvVariable("SWEEP_INTERVAL"),
		HeartbeatTimeout:   goDotEnvVariable("HEARTBEAT_TIMEOUT"),
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

func durationConfig(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration %q: %v", value, err)
	}
	return parsed
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&jobrepo.JobDTO{},
		&dronerepo.DroneDTO{},
		&enduserrepo.EndUserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	tokens := app.CreateTokenService(configs.JWTSecret,
		durationConfig(configs.TokenTTL, defaultTokenTTL))
	server := deliveryhttp.NewServer(app.CreateHTTPHandlers(), tokens)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
