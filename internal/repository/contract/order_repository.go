package contract

import (
	"context"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)

	// UpdateStatus overwrites the order status regardless of its prior value.
	// Re-processing a terminal-status order is accepted behavior, not an error.
	UpdateStatus(ctx context.Context, orderId uuid.UUID, status string) error
}
