package resumes

import "time"

// Resume is one uploaded resume owned by a user. History is append-only:
// replacing a resume deactivates prior rows and inserts a new active one.
type Resume struct {
	ID         string
	UserEmail  string
	FileName   string
	Content    []byte
	UploadedAt time.Time
	IsActive   bool
}
