package applications

import "context"

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	// ListByUser returns a user's applications newest first.
	ListByUser(ctx context.Context, userEmail string) ([]Application, error)
}
