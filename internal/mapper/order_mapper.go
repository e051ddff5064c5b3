package mapper

import (
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}
	return &entity.Order{
		Id:        o.Id,
		ClientId:  o.ClientId,
		ProductId: o.ProductId,
		DepotId:   o.DepotId,
		OrderDate: o.OrderDate,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}
	return &model.Order{
		Id:        o.Id,
		ClientId:  o.ClientId,
		ProductId: o.ProductId,
		DepotId:   o.DepotId,
		OrderDate: o.OrderDate,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func (m *OrderMapper) ToEntities(orders []*model.Order) []*entity.Order {
	entities := make([]*entity.Order, len(orders))
	for i, o := range orders {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
