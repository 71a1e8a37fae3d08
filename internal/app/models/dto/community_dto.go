package dto

import "time"

// CreateCommunityRequest represents community creation data
type CreateCommunityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CommunityResponse represents a community in list and detail views
type CommunityResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatorID   int64     `json:"creatorId"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	MemberCount int       `json:"memberCount"`
	IsMember    bool      `json:"isMember"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommunityDetailResponse adds the member list to a community
type CommunityDetailResponse struct {
	CommunityResponse
	Members []MemberResponse `json:"members"`
}

// MemberResponse represents a community member
type MemberResponse struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	JoinedAt  time.Time `json:"joinedAt"`
}
