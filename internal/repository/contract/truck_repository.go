package contract

import (
	"context"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/specification"
)

type TruckRepository interface {
	Create(ctx context.Context, truck *entity.Truck) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Truck, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Truck, error)
}
