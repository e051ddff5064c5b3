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

type TruckRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TruckMapper
}

func NewTruckRepository(db *gorm.DB) contract.TruckRepository {
	return &TruckRepositoryImpl{
		db:     db,
		mapper: mapper.NewTruckMapper(),
	}
}

func (r *TruckRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TruckRepositoryImpl) Create(ctx context.Context, truck *entity.Truck) error {
	m := r.mapper.ToModel(truck)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*truck = *r.mapper.ToEntity(m)
	return nil
}

func (r *TruckRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Truck, error) {
	var m model.Truck
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TruckRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Truck, error) {
	var models []*model.Truck
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
