package domain

import "time"

// Project groups tasks and accumulates logged time.
// Fields are ordered to minimize memory padding.
type Project struct {
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ID          int       `json:"-"`                   // Stored as map key, not in value
	TimeSpent   int       `json:"timeSpent,omitempty"` // Minutes logged across the project
}

// Profile is the local demo user profile. There is no authentication;
// a single profile exists per store.
type Profile struct {
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
}
