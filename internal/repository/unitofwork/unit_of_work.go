package unitofwork

import (
	"context"

	"smart-warehouse-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ClientRepository() contract.ClientRepository
	TruckRepository() contract.TruckRepository
	OrderRepository() contract.OrderRepository
	ProductRepository() contract.ProductRepository
	DepotRepository() contract.DepotRepository
	KnowledgeChunkRepository() contract.KnowledgeChunkRepository
	ArrivalRepository() contract.ArrivalRepository
}
