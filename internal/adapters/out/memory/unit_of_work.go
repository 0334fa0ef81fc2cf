package memory

import (
	"context"
	"errors"

	"ordering/internal/core/ports"

	"github.com/google/uuid"
)

// ErrNoTransaction is returned by Commit and Rollback without a preceding Begin.
var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes between Begin and Commit and applies them to the store in
// one atomic step. Orders it loads or writes stay locked until Commit or Rollback.
// A unit of work must not be shared between goroutines.
type UnitOfWork struct {
	store   *Store
	active  bool
	changes []change
	held    map[uuid.UUID]struct{}
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.active {
		return nil
	}
	u.active = true
	u.changes = nil
	u.held = make(map[uuid.UUID]struct{})
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := u.store.apply(u.changes)
	u.end()
	return err
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.end()
	return nil
}

func (u *UnitOfWork) end() {
	for id := range u.held {
		u.store.unlock(id)
	}
	u.held = nil
	u.active = false
	u.changes = nil
}

// acquire locks id for the rest of the transaction. Locks already held are reentrant.
func (u *UnitOfWork) acquire(ctx context.Context, id uuid.UUID) error {
	if _, ok := u.held[id]; ok {
		return nil
	}
	if err := u.store.lock(ctx, id); err != nil {
		return err
	}
	u.held[id] = struct{}{}
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: u.store, uow: u}
}

func (u *UnitOfWork) stage(ctx context.Context, c change, store *Store) error {
	if err := u.acquire(ctx, c.rec.ID); err != nil {
		return err
	}

	_, committed := store.get(c.rec.ID)
	_, staged := u.staged(c.rec.ID)
	exists := committed || staged
	if c.create && exists {
		return ErrOrderExists
	}
	if !c.create && !exists {
		return notFound(c.rec.ID)
	}

	u.changes = append(u.changes, c)
	return nil
}

// staged returns the latest staged record for id.
func (u *UnitOfWork) staged(id uuid.UUID) (orderRecord, bool) {
	for i := len(u.changes) - 1; i >= 0; i-- {
		if u.changes[i].rec.ID == id {
			return u.changes[i].rec, true
		}
	}
	return orderRecord{}, false
}
