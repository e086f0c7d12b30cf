package cmd

import "fmt"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	DokuBaseURL           string
	DokuClientID          string
	DokuSecretKey         string
	DokuLinkExpiryMinutes int

	WhatsAppBaseURL string
	WhatsAppToken   string

	ReferralRewardThreshold int
	PaymentSyncSchedule     string
}

// DSN builds the postgres connection string from the database settings.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
