package presence

import (
	"context"
	"sync"

	"github.com/lernora/conversation-service/internal/model"
)

// MemoryRegistry is the single-instance registry: a mutex-guarded set.
// In a multi-instance deployment it only sees this process's
// connections; use the redis registry there.
type MemoryRegistry struct {
	mu     sync.Mutex
	online map[model.Participant]struct{}
}

var _ Registry = (*MemoryRegistry)(nil)

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		online: make(map[model.Participant]struct{}),
	}
}

func (r *MemoryRegistry) MarkOnline(_ context.Context, p model.Participant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.online[p]; ok {
		return false, nil
	}
	r.online[p] = struct{}{}
	return true, nil
}

func (r *MemoryRegistry) MarkOffline(_ context.Context, p model.Participant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.online[p]; !ok {
		return false, nil
	}
	delete(r.online, p)
	return true, nil
}

func (r *MemoryRegistry) IsOnline(_ context.Context, p model.Participant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.online[p]
	return ok, nil
}
