package models

import "time"

// MentorProfile marks a user as offering mentorship in a field.
// At most one row exists per user.
type MentorProfile struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Field     string    `json:"field" db:"field"`
	Expertise string    `json:"expertise" db:"expertise"`
	Bio       string    `json:"bio" db:"bio"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"user,omitempty"`
}
