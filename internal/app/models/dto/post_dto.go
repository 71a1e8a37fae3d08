package dto

import "time"

// CreatePostRequest represents post creation data
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PostResponse represents a post in list and detail views
type PostResponse struct {
	ID             int64     `json:"id"`
	CommunityID    int64     `json:"communityId"`
	AuthorID       int64     `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	Upvotes        int       `json:"upvotes"`
	Downvotes      int       `json:"downvotes"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PostDetailResponse adds comments to a post
type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
}

// CreateCommentRequest represents comment creation data
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse represents a comment on a post
type CommentResponse struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"postId"`
	AuthorID       int64     `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	Upvotes        int       `json:"upvotes"`
	CreatedAt      time.Time `json:"createdAt"`
}

// VoteResponse returns the updated counters after a vote
type VoteResponse struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}
