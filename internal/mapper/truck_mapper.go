package mapper

import (
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/model"
)

type TruckMapper struct{}

func NewTruckMapper() *TruckMapper {
	return &TruckMapper{}
}

func (m *TruckMapper) ToEntity(t *model.Truck) *entity.Truck {
	if t == nil {
		return nil
	}
	return &entity.Truck{
		Id:       t.Id,
		Type:     t.Type,
		Plate:    t.Plate,
		ClientId: t.ClientId,
	}
}

func (m *TruckMapper) ToModel(t *entity.Truck) *model.Truck {
	if t == nil {
		return nil
	}
	return &model.Truck{
		Id:       t.Id,
		Type:     t.Type,
		Plate:    t.Plate,
		ClientId: t.ClientId,
	}
}

func (m *TruckMapper) ToEntities(trucks []*model.Truck) []*entity.Truck {
	entities := make([]*entity.Truck, len(trucks))
	for i, t := range trucks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
