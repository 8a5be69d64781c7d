package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userEmail -> resumes, upload order
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Resume)}
}

// SaveActive deactivates prior resumes for the owner and appends the new active row.
func (r *MemoryRepo) SaveActive(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.data[resume.UserEmail]
	for i := range rows {
		rows[i].IsActive = false
	}
	resume.IsActive = true
	r.data[resume.UserEmail] = append(rows, resume)
	return nil
}

// GetActive returns the single active resume for a user, if any.
func (r *MemoryRepo) GetActive(ctx context.Context, userEmail string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.data[userEmail] {
		if row.IsActive {
			return row, nil
		}
	}
	return Resume{}, ErrNotFound
}

// All returns every resume row for a user in upload order. Test helper.
func (r *MemoryRepo) All(userEmail string) []Resume {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Resume, len(r.data[userEmail]))
	copy(out, r.data[userEmail])
	return out
}

var _ Repo = (*MemoryRepo)(nil)
