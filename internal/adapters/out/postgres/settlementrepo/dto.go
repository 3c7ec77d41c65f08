// Package settlementrepo books restaurant earnings and driver statistics for delivered orders.
package settlementrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantEarningsDTO accumulates what a restaurant earned from delivered orders.
type RestaurantEarningsDTO struct {
	RestaurantID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Earnings     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

func (RestaurantEarningsDTO) TableName() string {
	return "restaurant_earnings"
}

// DriverStatsDTO counts a driver's deliveries and the delivery fees earned with them.
type DriverStatsDTO struct {
	DriverID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TotalDeliveries int             `gorm:"not null"`
	TotalEarnings   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

func (DriverStatsDTO) TableName() string {
	return "driver_stats"
}
