package uploads

import (
	"sync"

	"github.com/hirestack/go-interview-server/internal/errors"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is a map-backed batch store. Batches are copied on the way in
// and out so the pipeline and the handlers never share mutable state.
type InMemoryRepo struct {
	batches map[string]*Batch
	lock    sync.RWMutex
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		batches: make(map[string]*Batch),
	}
}

func (r *InMemoryRepo) Create(batch *Batch) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.batches[batch.UploadID]; exists {
		return errors.ErrUploadExists
	}
	r.batches[batch.UploadID] = clone(batch)
	return nil
}

func (r *InMemoryRepo) Get(uploadID string) (*Batch, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	batch, ok := r.batches[uploadID]
	if !ok {
		return nil, errors.ErrUploadNotFound
	}
	return clone(batch), nil
}

func (r *InMemoryRepo) Update(batch *Batch) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.batches[batch.UploadID]; !ok {
		return errors.ErrUploadNotFound
	}
	r.batches[batch.UploadID] = clone(batch)
	return nil
}

func clone(batch *Batch) *Batch {
	copied := *batch
	copied.Items = make([]Item, len(batch.Items))
	copy(copied.Items, batch.Items)
	return &copied
}
