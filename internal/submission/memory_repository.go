package submission

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu   sync.RWMutex
	subs map[string]Submission
}

// NewMemoryRepository builds an in-memory submission store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{subs: make(map[string]Submission)}
}

func (r *memoryRepository) Create(_ context.Context, sub Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ID] = sub
	return nil
}

func (r *memoryRepository) ListByPhone(_ context.Context, phone string) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Submission
	for _, sub := range r.subs {
		if sub.Phone == phone {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}
