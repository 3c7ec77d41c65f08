package cmd

import "fmt"

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	RedisAddr            string
	RabbitMQURL          string
	NotificationExchange string
	OutboxBatchSize      int
}

// PostgresDSN is the key/value connection string understood by both pgx (GORM) and lib/pq (migrations).
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
