package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrOrderExists is returned when creating an order whose id is already stored.
var ErrOrderExists = errors.New("order already exists")

// Store holds committed order snapshots. It is safe for concurrent use. Units of work
// take a per-order lock when they load or write an order and hold it until Commit or
// Rollback, so writers to the same order run one after another.
type Store struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]orderRecord

	locksMu sync.Mutex
	locks   map[uuid.UUID]chan struct{}
}

func NewStore() *Store {
	return &Store{
		orders: make(map[uuid.UUID]orderRecord),
		locks:  make(map[uuid.UUID]chan struct{}),
	}
}

// lock blocks until the caller holds the lock of id or ctx is done.
func (s *Store) lock(ctx context.Context, id uuid.UUID) error {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[id] = l
	}
	s.locksMu.Unlock()

	select {
	case l <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) unlock(id uuid.UUID) {
	s.locksMu.Lock()
	l := s.locks[id]
	s.locksMu.Unlock()

	<-l
}

func (s *Store) get(id uuid.UUID) (orderRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.orders[id]
	return rec, ok
}

func (s *Store) all() []orderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]orderRecord, 0, len(s.orders))
	for _, rec := range s.orders {
		recs = append(recs, rec)
	}
	return recs
}

// apply writes a batch atomically: either every change is stored or none is.
func (s *Store) apply(changes []change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[uuid.UUID]bool, len(changes))
	for _, c := range changes {
		_, exists := s.orders[c.rec.ID]
		exists = exists || staged[c.rec.ID]
		if c.create && exists {
			return ErrOrderExists
		}
		if !c.create && !exists {
			return notFound(c.rec.ID)
		}
		staged[c.rec.ID] = true
	}
	for _, c := range changes {
		s.orders[c.rec.ID] = c.rec
	}
	return nil
}

type change struct {
	rec    orderRecord
	create bool
}
