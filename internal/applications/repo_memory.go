package applications

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Application // userEmail -> applications
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Application)}
}

// Create appends one application row.
func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if app.Status == "" {
		app.Status = StatusCreated
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[app.UserEmail] = append(r.data[app.UserEmail], app)
	return nil
}

// ListByUser returns a user's applications newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userEmail string) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	rows := r.data[userEmail]
	r.mu.RUnlock()

	out := make([]Application, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
