package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"laundry/cmd"
	laundryhttp "laundry/internal/adapters/in/http"
	"laundry/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateSyncPaymentsCommandHandler(),
		configs.PaymentSyncSchedule,
		app.Logger(),
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:               goDotEnvVariable("JWT_SECRET"),
		DokuBaseURL:             goDotEnvVariable("DOKU_BASE_URL"),
		DokuClientID:            goDotEnvVariable("DOKU_CLIENT_ID"),
		DokuSecretKey:           goDotEnvVariable("DOKU_SECRET_KEY"),
		DokuLinkExpiryMinutes:   goDotEnvIntVariable("DOKU_LINK_EXPIRY_MINUTES"),
		WhatsAppBaseURL:         goDotEnvVariable("WHATSAPP_BASE_URL"),
		WhatsAppToken:           goDotEnvVariable("WHATSAPP_TOKEN"),
		ReferralRewardThreshold: goDotEnvIntVariable("REFERRAL_REWARD_THRESHOLD"),
		PaymentSyncSchedule:     goDotEnvVariable("PAYMENT_SYNC_SCHEDULE"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("%s must be an integer: %v", key, err)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := laundryhttp.NewServer(
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateUpdateOrderPriceCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetPartnerOrdersQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
