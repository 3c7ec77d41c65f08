package outboxrepo

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores events in one insert.
func (r *GormOutboxRepository) Add(ctx context.Context, events ...order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxDTO, 0, len(events))
	for _, event := range events {
		dto, err := fromDomain(event)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished locks up to limit undelivered events, oldest first. Rows locked by
// another relay are skipped rather than waited for.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]order.StatusChanged, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []OutboxDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]order.StatusChanged, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, eventID kernel.UUID, at time.Time) error {
	if err := eventID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OutboxDTO{}).
		Where("id = ? AND published_at IS NULL", eventID.Raw()).
		Update("published_at", at.UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox event", eventID.String())
	}
	return nil
}
