// Package pgtest starts a migrated PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"time"

	pgadapter "fooddelivery/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TruncateAll empties every table of the schema.
const TruncateAll = "TRUNCATE TABLE order_items, orders, coupons, restaurant_earnings, driver_stats, outbox"

// Start runs postgres:15-alpine, applies the embedded migrations and opens a GORM
// connection. The caller terminates the container.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, string, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, "", err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, "", err
	}

	if err = pgadapter.RunMigrations(dsn); err != nil {
		return container, nil, dsn, err
	}

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return container, nil, dsn, err
	}

	return container, db, dsn, nil
}
