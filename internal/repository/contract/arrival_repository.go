package contract

import (
	"context"

	"smart-warehouse-be/internal/entity"
)

type ArrivalRepository interface {
	// FindFactsByPlate resolves the joined operational record for a plate.
	// Exact plate equality is preferred; when nothing matches exactly the
	// lookup falls back to a substring match, first row wins. A nil result
	// with a nil error means no vehicle matched at all.
	FindFactsByPlate(ctx context.Context, plate string) (*entity.ArrivalFacts, error)

	CreateLog(ctx context.Context, log *entity.ArrivalLog) error
	FindLogs(ctx context.Context, limit int) ([]*entity.ArrivalLog, error)
}
