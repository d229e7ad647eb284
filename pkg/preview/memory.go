package preview

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore holds preview objects in process memory. When it reaches its
// capacity the least recently used object is evicted.
// It is safe for concurrent use.
type MemoryStore struct {
	options
	capacity int

	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
}

var (
	_ Store   = (*MemoryStore)(nil)
	_ Counter = (*MemoryStore)(nil)
)

// NewMemoryStore creates a store holding at most capacity objects.
// The capacity must be positive, otherwise it panics.
func NewMemoryStore(capacity int, opts ...Option) *MemoryStore {
	if capacity <= 0 {
		panic("preview store capacity must be positive")
	}
	return &MemoryStore{
		options:  newOptions(opts),
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (s *MemoryStore) Create(_ context.Context, name, contentType string, data []byte) (Ref, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	obj := Object{
		ID:          id.String(),
		Name:        name,
		ContentType: contentType,
		Data:        data,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[obj.ID] = s.order.PushFront(obj)
	for s.order.Len() > s.capacity {
		s.remove(s.order.Back(), Evicted)
	}

	return Ref{ID: obj.ID, URL: s.url(obj.ID)}, nil
}

func (s *MemoryStore) Replace(ctx context.Context, previous, name, contentType string, data []byte) (Ref, error) {
	ref, err := s.Create(ctx, name, contentType, data)
	if err != nil {
		return Ref{}, err
	}
	if previous != "" {
		s.mu.Lock()
		if elem, ok := s.items[previous]; ok {
			s.remove(elem, Replaced)
		}
		s.mu.Unlock()
	}
	return ref, nil
}

// Get returns the object behind id and marks it as recently used.
func (s *MemoryStore) Get(_ context.Context, id string) (Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[id]
	if !ok {
		return Object{}, ErrNotFound
	}
	s.order.MoveToFront(elem)
	return elem.Value.(Object), nil
}

func (s *MemoryStore) Revoke(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[id]
	if !ok {
		return ErrNotFound
	}
	s.remove(elem, Revoked)
	return nil
}

// Len returns the number of live references.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

func (s *MemoryStore) URL(id string) string {
	return s.url(id)
}

// Must be called with lock held.
func (s *MemoryStore) remove(elem *list.Element, reason RevokeReason) {
	s.order.Remove(elem)
	obj := elem.Value.(Object)
	delete(s.items, obj.ID)
	s.revoked(obj, reason)
}
