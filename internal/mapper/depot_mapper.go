package mapper

import (
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/model"
)

type DepotMapper struct{}

func NewDepotMapper() *DepotMapper {
	return &DepotMapper{}
}

func (m *DepotMapper) ToEntity(d *model.Depot) *entity.Depot {
	if d == nil {
		return nil
	}
	return &entity.Depot{
		Id:        d.Id,
		Name:      d.Name,
		Address:   d.Address,
		ManagerId: d.ManagerId,
	}
}

func (m *DepotMapper) ToModel(d *entity.Depot) *model.Depot {
	if d == nil {
		return nil
	}
	return &model.Depot{
		Id:        d.Id,
		Name:      d.Name,
		Address:   d.Address,
		ManagerId: d.ManagerId,
	}
}
