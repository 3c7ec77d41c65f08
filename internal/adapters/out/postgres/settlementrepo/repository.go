package settlementrepo

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettlementRepository implements SettlementRepository with upserts, so the first
// delivery of a restaurant or driver creates its row.
type GormSettlementRepository struct {
	db *gorm.DB
}

func NewGormSettlementRepository(db *gorm.DB) *GormSettlementRepository {
	return &GormSettlementRepository{db: db}
}

// ApplyDelivery credits the restaurant with the items total, and the driver, if any,
// with one delivery and the delivery fee.
func (r *GormSettlementRepository) ApplyDelivery(ctx context.Context, delivered *order.Order) error {
	if err := delivered.Validate(); err != nil {
		return err
	}
	if delivered.Status() != order.Delivered {
		return errs.NewValueIsInvalidError("status")
	}

	now := time.Now().UTC()
	db := r.db.WithContext(ctx)

	earnings := RestaurantEarningsDTO{
		RestaurantID: delivered.RestaurantID().Raw(),
		Earnings:     delivered.Breakdown().ItemsTotal().Round2().Decimal(),
		UpdatedAt:    now,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "restaurant_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"earnings":   gorm.Expr("restaurant_earnings.earnings + EXCLUDED.earnings"),
			"updated_at": gorm.Expr("EXCLUDED.updated_at"),
		}),
	}).Create(&earnings).Error; err != nil {
		return err
	}

	driverID := delivered.DriverID()
	if driverID == nil {
		return nil
	}

	stats := DriverStatsDTO{
		DriverID:        driverID.Raw(),
		TotalDeliveries: 1,
		TotalEarnings:   delivered.DeliveryFee().Round2().Decimal(),
		UpdatedAt:       now,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "driver_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_deliveries": gorm.Expr("driver_stats.total_deliveries + EXCLUDED.total_deliveries"),
			"total_earnings":   gorm.Expr("driver_stats.total_earnings + EXCLUDED.total_earnings"),
			"updated_at":       gorm.Expr("EXCLUDED.updated_at"),
		}),
	}).Create(&stats).Error
}
