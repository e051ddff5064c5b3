package mapper

import (
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/model"
)

type ClientMapper struct{}

func NewClientMapper() *ClientMapper {
	return &ClientMapper{}
}

func (m *ClientMapper) ToEntity(c *model.Client) *entity.Client {
	if c == nil {
		return nil
	}
	return &entity.Client{
		Id:        c.Id,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ClientMapper) ToModel(c *entity.Client) *model.Client {
	if c == nil {
		return nil
	}
	return &model.Client{
		Id:        c.Id,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ClientMapper) ToEntities(clients []*model.Client) []*entity.Client {
	entities := make([]*entity.Client, len(clients))
	for i, c := range clients {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
