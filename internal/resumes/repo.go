package resumes

import "context"

// Repo defines persistence operations for resumes.
type Repo interface {
	// SaveActive deactivates all prior resumes for the owner and inserts the
	// new row as active. Both steps happen atomically or not at all.
	SaveActive(ctx context.Context, resume Resume) error
	GetActive(ctx context.Context, userEmail string) (Resume, error)
}
