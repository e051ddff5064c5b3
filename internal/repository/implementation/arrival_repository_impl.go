package implementation

import (
	"context"
	"time"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/mapper"
	"smart-warehouse-be/internal/model"
	"smart-warehouse-be/internal/repository/contract"
	"smart-warehouse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArrivalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ArrivalLogMapper
}

func NewArrivalRepository(db *gorm.DB) contract.ArrivalRepository {
	return &ArrivalRepositoryImpl{
		db:     db,
		mapper: mapper.NewArrivalLogMapper(),
	}
}

// arrivalFactRow is the scan target for the joined facts query. Order-side
// columns are nullable because clients may have no order on file.
type arrivalFactRow struct {
	OrderId        *uuid.UUID
	TruckType      string
	ClientName     string
	Phone          string
	OrderStatus    *string
	OrderDate      *time.Time
	ProductName    *string
	StockAvailable *int
	DepotName      *string
}

const arrivalFactColumns = `orders.id AS order_id,
	trucks.type AS truck_type,
	clients.name AS client_name,
	clients.phone AS phone,
	orders.status AS order_status,
	orders.order_date AS order_date,
	products.name AS product_name,
	products.stock AS stock_available,
	depots.name AS depot_name`

func (r *ArrivalRepositoryImpl) factsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("trucks").
		Select(arrivalFactColumns).
		Joins("JOIN clients ON clients.id = trucks.client_id").
		Joins("LEFT JOIN orders ON orders.client_id = clients.id").
		Joins("LEFT JOIN products ON products.id = orders.product_id").
		Joins("LEFT JOIN depots ON depots.id = orders.depot_id").
		Order("orders.order_date DESC NULLS LAST").
		Limit(1)
}

func (r *ArrivalRepositoryImpl) FindFactsByPlate(ctx context.Context, plate string) (*entity.ArrivalFacts, error) {
	var rows []arrivalFactRow

	// Exact equality wins over any substring match.
	exact := specification.ByPlate{Plate: plate}
	if err := exact.Apply(r.factsQuery(ctx)).Scan(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		// Substring fallback, first row in storage order.
		fallback := specification.PlateContains{Fragment: plate}
		if err := fallback.Apply(r.factsQuery(ctx)).Scan(&rows).Error; err != nil {
			return nil, err
		}
	}

	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	facts := &entity.ArrivalFacts{
		OrderId:        row.OrderId,
		TruckType:      row.TruckType,
		ClientName:     row.ClientName,
		Phone:          row.Phone,
		OrderDate:      row.OrderDate,
		StockAvailable: row.StockAvailable,
	}
	if row.OrderStatus != nil {
		facts.OrderStatus = *row.OrderStatus
	}
	if row.ProductName != nil {
		facts.ProductName = *row.ProductName
	}
	if row.DepotName != nil {
		facts.DepotName = *row.DepotName
	}
	return facts, nil
}

func (r *ArrivalRepositoryImpl) CreateLog(ctx context.Context, log *entity.ArrivalLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *ArrivalRepositoryImpl) FindLogs(ctx context.Context, limit int) ([]*entity.ArrivalLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var models []*model.ArrivalLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	logs := make([]*entity.ArrivalLog, len(models))
	for i, m := range models {
		logs[i] = r.mapper.ToEntity(m)
	}
	return logs, nil
}
