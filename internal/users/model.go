package users

import "time"

// User is identified by email everywhere in the system. Rows are created on
// first sign-in and only LastLogin changes afterwards.
type User struct {
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
