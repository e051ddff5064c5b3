package service

import (
	"context"
	"errors"
	"strings"

	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/contract"
	"smart-warehouse-be/internal/repository/specification"
	"smart-warehouse-be/internal/repository/unitofwork"
	"smart-warehouse-be/pkg/embedding"
	"smart-warehouse-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory doubles for the repository layer. Specifications are interpreted
// by type switch; only the ones the services actually use are supported.

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type scriptedLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

type fakeDetector struct {
	plate   string
	err     error
	healthy bool
}

func (d *fakeDetector) Detect(ctx context.Context, image []byte, filename string) (string, error) {
	return d.plate, d.err
}

func (d *fakeDetector) Healthy(ctx context.Context) bool { return d.healthy }

type fakeEmbedder struct {
	err      error
	lastText string
}

func (e *fakeEmbedder) Generate(ctx context.Context, text string) (*embedding.EmbeddingResponse, error) {
	e.lastText = text
	if e.err != nil {
		return nil, e.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

// matchName applies the name-based specifications the chatbot executor uses.
func matchName(name string, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.NameContains:
			if !strings.Contains(name, sp.Fragment) {
				return false
			}
		case specification.ByName:
			if name != sp.Name {
				return false
			}
		}
	}
	return true
}

type fakeClientRepo struct {
	clients []*entity.Client
	err     error
}

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if r.err != nil {
		return r.err
	}
	r.clients = append(r.clients, client)
	return nil
}

func (r *fakeClientRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.clients {
		if matchName(c.Name, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.clients, nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	for _, p := range r.products {
		matched := true
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.NameContains:
				if !strings.Contains(p.Name, sp.Fragment) {
					matched = false
				}
			case specification.ByName:
				if p.Name != sp.Name {
					matched = false
				}
			case specification.ByID:
				if p.Id != sp.ID {
					matched = false
				}
			}
		}
		if matched {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) AdjustStock(ctx context.Context, productId uuid.UUID, delta int) error {
	for _, p := range r.products {
		if p.Id == productId {
			p.Stock += delta
			return nil
		}
	}
	return errors.New("product not found")
}

type fakeDepotRepo struct {
	depots []*entity.Depot
}

func (r *fakeDepotRepo) Create(ctx context.Context, depot *entity.Depot) error {
	r.depots = append(r.depots, depot)
	return nil
}

func (r *fakeDepotRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Depot, error) {
	for _, d := range r.depots {
		if matchName(d.Name, specs) {
			return d, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	users []*entity.User
	err   error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		matched := true
		for _, spec := range specs {
			if sp, ok := spec.(specification.ByEmail); ok && u.Email != sp.Email {
				matched = false
			}
		}
		if matched {
			return u, nil
		}
	}
	return nil, nil
}

type fakeTruckRepo struct {
	trucks []*entity.Truck
}

func (r *fakeTruckRepo) Create(ctx context.Context, truck *entity.Truck) error {
	r.trucks = append(r.trucks, truck)
	return nil
}

func (r *fakeTruckRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Truck, error) {
	if len(r.trucks) == 0 {
		return nil, nil
	}
	return r.trucks[0], nil
}

func (r *fakeTruckRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Truck, error) {
	return r.trucks, nil
}

type statusUpdate struct {
	orderId uuid.UUID
	status  string
}

type fakeOrderRepo struct {
	orders        []*entity.Order
	statusUpdates []statusUpdate
	createErr     error
	updateErr     error
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	if len(r.orders) == 0 {
		return nil, nil
	}
	return r.orders[0], nil
}

func (r *fakeOrderRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	return r.orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, orderId uuid.UUID, status string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.statusUpdates = append(r.statusUpdates, statusUpdate{orderId: orderId, status: status})
	for _, o := range r.orders {
		if o.Id == orderId {
			o.Status = status
		}
	}
	return nil
}

type fakeKnowledgeRepo struct {
	chunks         []*entity.KnowledgeChunk
	deletedSources []string
	searchErr      error
}

func (r *fakeKnowledgeRepo) Create(ctx context.Context, chunk *entity.KnowledgeChunk) error {
	r.chunks = append(r.chunks, chunk)
	return nil
}

func (r *fakeKnowledgeRepo) CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error {
	r.chunks = append(r.chunks, chunks...)
	return nil
}

func (r *fakeKnowledgeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error) {
	return r.chunks, nil
}

func (r *fakeKnowledgeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, c := range r.chunks {
		matched := true
		for _, spec := range specs {
			if sp, ok := spec.(specification.ByCategory); ok && c.Category != sp.Category {
				matched = false
			}
		}
		if matched {
			n++
		}
	}
	return n, nil
}

func (r *fakeKnowledgeRepo) DeleteBySource(ctx context.Context, source string) error {
	r.deletedSources = append(r.deletedSources, source)
	kept := r.chunks[:0]
	for _, c := range r.chunks {
		if c.Source != source {
			kept = append(kept, c)
		}
	}
	r.chunks = kept
	return nil
}

func (r *fakeKnowledgeRepo) SearchSimilar(ctx context.Context, emb []float32, limit int) ([]*entity.KnowledgeChunk, error) {
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	if limit > len(r.chunks) {
		limit = len(r.chunks)
	}
	return r.chunks[:limit], nil
}

type fakeArrivalRepo struct {
	facts     *entity.ArrivalFacts
	findErr   error
	logs      []*entity.ArrivalLog
	logErr    error
	lastPlate string
}

func (r *fakeArrivalRepo) FindFactsByPlate(ctx context.Context, plate string) (*entity.ArrivalFacts, error) {
	r.lastPlate = plate
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.facts, nil
}

func (r *fakeArrivalRepo) CreateLog(ctx context.Context, log *entity.ArrivalLog) error {
	if r.logErr != nil {
		return r.logErr
	}
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeArrivalRepo) FindLogs(ctx context.Context, limit int) ([]*entity.ArrivalLog, error) {
	if limit > len(r.logs) {
		limit = len(r.logs)
	}
	return r.logs[:limit], nil
}

type fakeUnitOfWork struct {
	users     *fakeUserRepo
	clients   *fakeClientRepo
	trucks    *fakeTruckRepo
	orders    *fakeOrderRepo
	products  *fakeProductRepo
	depots    *fakeDepotRepo
	knowledge *fakeKnowledgeRepo
	arrivals  *fakeArrivalRepo

	inTx      bool
	commits   int
	rollbacks int
	beginErr  error
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:     &fakeUserRepo{},
		clients:   &fakeClientRepo{},
		trucks:    &fakeTruckRepo{},
		orders:    &fakeOrderRepo{},
		products:  &fakeProductRepo{},
		depots:    &fakeDepotRepo{},
		knowledge: &fakeKnowledgeRepo{},
		arrivals:  &fakeArrivalRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	u.inTx = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	if !u.inTx {
		return errors.New("no transaction to commit")
	}
	u.inTx = false
	u.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if !u.inTx {
		return errors.New("no transaction to rollback")
	}
	u.inTx = false
	u.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository          { return u.users }
func (u *fakeUnitOfWork) ClientRepository() contract.ClientRepository      { return u.clients }
func (u *fakeUnitOfWork) TruckRepository() contract.TruckRepository        { return u.trucks }
func (u *fakeUnitOfWork) OrderRepository() contract.OrderRepository        { return u.orders }
func (u *fakeUnitOfWork) ProductRepository() contract.ProductRepository    { return u.products }
func (u *fakeUnitOfWork) DepotRepository() contract.DepotRepository        { return u.depots }
func (u *fakeUnitOfWork) KnowledgeChunkRepository() contract.KnowledgeChunkRepository {
	return u.knowledge
}
func (u *fakeUnitOfWork) ArrivalRepository() contract.ArrivalRepository { return u.arrivals }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }
