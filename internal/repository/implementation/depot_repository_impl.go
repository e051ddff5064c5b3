package implementation

import (
	"context"
	"errors"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/mapper"
	"smart-warehouse-be/internal/model"
	"smart-warehouse-be/internal/repository/contract"
	"smart-warehouse-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DepotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DepotMapper
}

func NewDepotRepository(db *gorm.DB) contract.DepotRepository {
	return &DepotRepositoryImpl{
		db:     db,
		mapper: mapper.NewDepotMapper(),
	}
}

func (r *DepotRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DepotRepositoryImpl) Create(ctx context.Context, depot *entity.Depot) error {
	m := r.mapper.ToModel(depot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*depot = *r.mapper.ToEntity(m)
	return nil
}

func (r *DepotRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Depot, error) {
	var m model.Depot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
