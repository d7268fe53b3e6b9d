package payment

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	byRef map[string]Claim
}

// NewMemoryRepository builds an in-memory claim store for testing and
// no-database dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{byRef: make(map[string]Claim)}
}

func (r *memoryRepository) Create(_ context.Context, claim Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byRef[claim.Reference]; exists {
		return ErrDuplicateReference
	}
	r.byRef[claim.Reference] = claim
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byRef, reference)
	return nil
}

func (r *memoryRepository) ListByPhone(_ context.Context, phone string) ([]Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var claims []Claim
	for _, claim := range r.byRef {
		if claim.Phone == phone {
			claims = append(claims, claim)
		}
	}
	sort.Slice(claims, func(i, j int) bool {
		return claims[i].CreatedAt.After(claims[j].CreatedAt)
	})
	return claims, nil
}
