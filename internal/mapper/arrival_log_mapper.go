package mapper

import (
	"encoding/json"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/model"

	"gorm.io/datatypes"
)

type ArrivalLogMapper struct{}

func NewArrivalLogMapper() *ArrivalLogMapper {
	return &ArrivalLogMapper{}
}

func (m *ArrivalLogMapper) ToModel(l *entity.ArrivalLog) *model.ArrivalLog {
	if l == nil {
		return nil
	}

	var facts datatypes.JSON
	if l.Facts != nil {
		if raw, err := json.Marshal(l.Facts); err == nil {
			facts = datatypes.JSON(raw)
		}
	}

	return &model.ArrivalLog{
		Id:        l.Id,
		Plate:     l.Plate,
		Status:    l.Status,
		Analysis:  l.Analysis,
		Facts:     facts,
		CreatedAt: l.CreatedAt,
	}
}

func (m *ArrivalLogMapper) ToEntity(l *model.ArrivalLog) *entity.ArrivalLog {
	if l == nil {
		return nil
	}

	var facts *entity.ArrivalFacts
	if len(l.Facts) > 0 {
		var f entity.ArrivalFacts
		if err := json.Unmarshal(l.Facts, &f); err == nil {
			facts = &f
		}
	}

	return &entity.ArrivalLog{
		Id:        l.Id,
		Plate:     l.Plate,
		Status:    l.Status,
		Analysis:  l.Analysis,
		Facts:     facts,
		CreatedAt: l.CreatedAt,
	}
}
