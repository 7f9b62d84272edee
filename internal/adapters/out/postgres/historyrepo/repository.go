package historyrepo

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormTransitionLogRepository implements TransitionLogRepository using GORM.
type GormTransitionLogRepository struct {
	db *gorm.DB
}

// NewGormTransitionLogRepository creates a new GORM transition log repository.
func NewGormTransitionLogRepository(db *gorm.DB) *GormTransitionLogRepository {
	return &GormTransitionLogRepository{db: db}
}

// Append durably stores one transition record. Records are insert-only.
func (r *GormTransitionLogRepository) Append(ctx context.Context, record order.Transition) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListForOrder retrieves all transition records for an order in the order the
// transitions happened.
func (r *GormTransitionLogRepository) ListForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]order.Transition, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransitionDTO
	err := r.db.WithContext(ctx).
		Order("timestamp, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]order.Transition, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
