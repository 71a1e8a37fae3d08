package services

import (
	"context"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/repositories"
)

// The store interfaces describe the repository surface each service consumes.
// The pgx-backed repositories satisfy them; tests substitute in-memory fakes.

// UserStore is the user repository surface used by profile and lookup flows
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateUserAndProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	UpdateProfilePhotoFileID(ctx context.Context, userID int64, fileID *int64) error
	ListAllExcept(ctx context.Context, userID int64) ([]*models.User, error)
}

// FileStore persists metadata rows for uploaded media
type FileStore interface {
	Create(ctx context.Context, file *models.File) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.File, error)
}

// CommunityStore is the community repository surface
type CommunityStore interface {
	Create(ctx context.Context, community *models.Community) error
	GetAll(ctx context.Context, filter repositories.CommunityFilter) ([]*models.Community, map[int64]int, error)
	GetByID(ctx context.Context, id int64) (*models.Community, error)
	UpdateImageFileID(ctx context.Context, communityID int64, fileID *int64) error
}

// MemberStore is the community membership surface
type MemberStore interface {
	Add(ctx context.Context, communityID, userID int64) error
	Remove(ctx context.Context, communityID, userID int64) error
	IsMember(ctx context.Context, communityID, userID int64) (bool, error)
	GetMembers(ctx context.Context, communityID int64) ([]*models.CommunityMember, error)
}

// PostStore is the post and comment repository surface
type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetByCommunity(ctx context.Context, communityID int64) ([]*models.Post, error)
	GetCommentsByPost(ctx context.Context, postID int64) ([]*models.PostComment, error)
	IncrementUpvotes(ctx context.Context, postID int64) (upvotes, downvotes int, err error)
	IncrementDownvotes(ctx context.Context, postID int64) (upvotes, downvotes int, err error)
	CreateComment(ctx context.Context, comment *models.PostComment) error
	IncrementCommentUpvotes(ctx context.Context, commentID int64) (int, error)
}

// MessageStore is the direct message repository surface
type MessageStore interface {
	Create(ctx context.Context, message *models.DirectMessage) error
	GetAllForUser(ctx context.Context, userID int64) ([]*models.DirectMessage, error)
	GetThread(ctx context.Context, userID, otherID int64) ([]*models.DirectMessage, error)
	GetConversationPartners(ctx context.Context, userID int64) ([]*models.User, error)
}
