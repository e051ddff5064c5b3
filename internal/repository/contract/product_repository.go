package contract

import (
	"context"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)

	// AdjustStock applies a relative stock change; delta may be negative
	// (pickup) or positive (delivery).
	AdjustStock(ctx context.Context, productId uuid.UUID, delta int) error
}
