package contract

import (
	"context"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/specification"
)

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Client, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Client, error)
}
