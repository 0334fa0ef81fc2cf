package memory

import (
	"context"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderRepository implements ports.OrderRepository over a Store. When bound to a
// UnitOfWork with an open transaction, writes are staged and reads see them first.
type OrderRepository struct {
	store *Store
	uow   *UnitOfWork
}

// NewOrderRepository returns a repository that writes straight to the store.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Create(ctx context.Context, aggregate *order.Order) error {
	return r.write(ctx, aggregate, true)
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	return r.write(ctx, aggregate, false)
}

func (r *OrderRepository) GetByIDWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if r.uow != nil && r.uow.active {
		if err := r.uow.acquire(ctx, id.Bytes()); err != nil {
			return nil, err
		}
	}

	rec, ok := r.lookup(id.Bytes())
	if !ok {
		return nil, notFound(id.Bytes())
	}
	return toDomain(rec)
}

func (r *OrderRepository) ListPaged(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	matched := make([]orderRecord, 0)
	for _, rec := range r.view() {
		if filter.CustomerID != nil && (rec.CustomerID == nil || *rec.CustomerID != filter.CustomerID.Bytes()) {
			continue
		}
		if filter.Status != nil && rec.Status != filter.Status.String() {
			continue
		}
		matched = append(matched, rec)
	}

	slices.SortFunc(matched, func(a, b orderRecord) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})

	total := int64(len(matched))
	start := min(filter.Offset(), len(matched))
	end := min(start+filter.PageSize, len(matched))

	orders := make([]*order.Order, 0, end-start)
	for _, rec := range matched[start:end] {
		o, err := toDomain(rec)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func (r *OrderRepository) ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	target := customerID.Bytes()
	for _, rec := range r.view() {
		if rec.CustomerID != nil && *rec.CustomerID == target {
			return true, nil
		}
	}
	return false, nil
}

func (r *OrderRepository) write(ctx context.Context, aggregate *order.Order, create bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	c := change{rec: fromDomain(aggregate), create: create}
	if r.uow != nil && r.uow.active {
		return r.uow.stage(ctx, c, r.store)
	}
	return r.store.apply([]change{c})
}

func (r *OrderRepository) lookup(id uuid.UUID) (orderRecord, bool) {
	if r.uow != nil && r.uow.active {
		if rec, ok := r.uow.staged(id); ok {
			return rec, true
		}
	}
	return r.store.get(id)
}

// view merges committed records with this unit of work's staged writes.
func (r *OrderRepository) view() []orderRecord {
	recs := r.store.all()
	if r.uow == nil || !r.uow.active || len(r.uow.changes) == 0 {
		return recs
	}

	byID := make(map[uuid.UUID]int, len(recs))
	for i, rec := range recs {
		byID[rec.ID] = i
	}
	for _, c := range r.uow.changes {
		if i, ok := byID[c.rec.ID]; ok {
			recs[i] = c.rec
			continue
		}
		byID[c.rec.ID] = len(recs)
		recs = append(recs, c.rec)
	}
	return recs
}

func notFound(id uuid.UUID) error {
	return errs.NewObjectNotFoundError("order", id.String())
}
