package models

import "time"

// CommunityCategory classifies a community
type CommunityCategory string

const (
	CategoryTech     CommunityCategory = "tech"
	CategoryBusiness CommunityCategory = "business"
	CategoryArts     CommunityCategory = "arts"
	CategoryScience  CommunityCategory = "science"
	CategoryHealth   CommunityCategory = "health"
	CategoryOther    CommunityCategory = "other"
)

// IsValidCategory reports whether the value is a known community category
func IsValidCategory(c CommunityCategory) bool {
	switch c {
	case CategoryTech, CategoryBusiness, CategoryArts, CategoryScience, CategoryHealth, CategoryOther:
		return true
	}
	return false
}

// Community represents a named group with a member set and owned posts
type Community struct {
	ID          int64             `json:"id" db:"id"`
	Name        string            `json:"name" db:"name"`
	Description string            `json:"description" db:"description"`
	Category    CommunityCategory `json:"category" db:"category"`
	CreatorID   int64             `json:"creatorId" db:"creator_id"`
	ImageFileID *int64            `json:"imageFileId,omitempty" db:"image_file_id"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`

	Creator *User   `json:"creator,omitempty"`
	Image   *File   `json:"image,omitempty"`
	Members []*User `json:"members,omitempty"`
}

// CommunityMember represents a membership row granting posting rights
type CommunityMember struct {
	ID          int64     `json:"id" db:"id"`
	CommunityID int64     `json:"communityId" db:"community_id"`
	UserID      int64     `json:"userId" db:"user_id"`
	JoinedAt    time.Time `json:"joinedAt" db:"joined_at"`

	User *User `json:"user,omitempty"`
}
