package dto

import "time"

// CreateMentorProfileRequest registers the caller in the mentor directory
type CreateMentorProfileRequest struct {
	Field     string `json:"field" binding:"required"`
	Expertise string `json:"expertise" binding:"required"`
	Bio       string `json:"bio"`
}

// MentorResponse represents a mentor directory entry
type MentorResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Field     string    `json:"field"`
	Expertise string    `json:"expertise"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
