package contract

import (
	"context"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/specification"
)

type DepotRepository interface {
	Create(ctx context.Context, depot *entity.Depot) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Depot, error)
}
