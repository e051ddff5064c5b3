package service

import (
	"context"
	"errors"

	"smart-warehouse-be/internal/dto"
	"smart-warehouse-be/internal/repository/specification"
	"smart-warehouse-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

type IWarehouseService interface {
	ListClients(ctx context.Context) ([]*dto.ClientResponse, error)
	ListProducts(ctx context.Context) ([]*dto.ProductResponse, error)
	ListTrucks(ctx context.Context) ([]*dto.TruckResponse, error)
	AdjustStock(ctx context.Context, productId uuid.UUID, delta int) (*dto.ProductResponse, error)
}

type warehouseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWarehouseService(uowFactory unitofwork.RepositoryFactory) IWarehouseService {
	return &warehouseService{
		uowFactory: uowFactory,
	}
}

func (s *warehouseService) ListClients(ctx context.Context) ([]*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	clients, err := uow.ClientRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		res = append(res, &dto.ClientResponse{Id: c.Id, Name: c.Name, Phone: c.Phone})
	}
	return res, nil
}

func (s *warehouseService) ListProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, &dto.ProductResponse{Id: p.Id, Name: p.Name, Stock: p.Stock, Price: p.Price})
	}
	return res, nil
}

func (s *warehouseService) ListTrucks(ctx context.Context) ([]*dto.TruckResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	trucks, err := uow.TruckRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TruckResponse, 0, len(trucks))
	for _, t := range trucks {
		res = append(res, &dto.TruckResponse{Id: t.Id, Type: t.Type, Plate: t.Plate, ClientId: t.ClientId})
	}
	return res, nil
}

func (s *warehouseService) AdjustStock(ctx context.Context, productId uuid.UUID, delta int) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: productId})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := uow.ProductRepository().AdjustStock(ctx, productId, delta); err != nil {
		return nil, err
	}

	updated, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: productId})
	if err != nil {
		return nil, err
	}

	return &dto.ProductResponse{Id: updated.Id, Name: updated.Name, Stock: updated.Stock, Price: updated.Price}, nil
}
