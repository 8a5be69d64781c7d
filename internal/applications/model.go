package applications

import "time"

// StatusCreated is the only status rows carry today; the column exists so the
// tracker can grow statuses without a migration.
const StatusCreated = "Created"

// Application records one generation action against a job posting. Exactly
// one of the three generated fields is set per row; rows are never updated.
type Application struct {
	ID              string
	UserEmail       string
	CompanyName     string
	Role            string
	JobDescription  string
	Status          string
	ResumeReview    *string
	CoverLetter     *string
	NetworkingEmail *string
	CreatedAt       time.Time
}
