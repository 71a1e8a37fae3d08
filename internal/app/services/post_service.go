package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

// PostService defines the interface for post and comment operations
type PostService interface {
	CreatePost(ctx context.Context, communityID, authorID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	GetCommunityPosts(ctx context.Context, communityID int64) ([]dto.PostResponse, error)
	GetPostDetail(ctx context.Context, postID int64) (*dto.PostDetailResponse, error)
	UpvotePost(ctx context.Context, postID int64) (*dto.VoteResponse, error)
	DownvotePost(ctx context.Context, postID int64) (*dto.VoteResponse, error)
	AddComment(ctx context.Context, postID, authorID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpvoteComment(ctx context.Context, commentID int64) (*dto.VoteResponse, error)
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	postRepo      PostStore
	communityRepo CommunityStore
	memberRepo    MemberStore
	userRepo      UserStore
	fileRepo      FileStore
	logger        zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo PostStore,
	communityRepo CommunityStore,
	memberRepo MemberStore,
	userRepo UserStore,
	fileRepo FileStore,
	logger zerolog.Logger,
) PostService {
	return &postServiceImpl{
		postRepo:      postRepo,
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
		userRepo:      userRepo,
		fileRepo:      fileRepo,
		logger:        logger,
	}
}

// CreatePost creates a post in a community. Only members may post.
func (s *postServiceImpl) CreatePost(ctx context.Context, communityID, authorID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if _, err := s.communityRepo.GetByID(ctx, communityID); err != nil {
		return nil, err
	}

	isMember, err := s.memberRepo.IsMember(ctx, communityID, authorID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.ErrNotCommunityMember
	}

	post := &models.Post{
		CommunityID: communityID,
		AuthorID:    authorID,
		Title:       req.Title,
		Content:     req.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("postID", post.ID).Int64("communityID", communityID).Msg("Post created")

	// the fresh post has no author join loaded; fetch it back with one
	return s.buildPostResponseByID(ctx, post.ID)
}

func (s *postServiceImpl) GetCommunityPosts(ctx context.Context, communityID int64) ([]dto.PostResponse, error) {
	if _, err := s.communityRepo.GetByID(ctx, communityID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetByCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, s.buildPostResponse(ctx, p))
	}
	return responses, nil
}

func (s *postServiceImpl) GetPostDetail(ctx context.Context, postID int64) (*dto.PostDetailResponse, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.postRepo.GetCommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	commentResponses := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		commentResponses = append(commentResponses, buildCommentResponse(c))
	}

	return &dto.PostDetailResponse{
		PostResponse: s.buildPostResponse(ctx, post),
		Comments:     commentResponses,
	}, nil
}

func (s *postServiceImpl) UpvotePost(ctx context.Context, postID int64) (*dto.VoteResponse, error) {
	up, down, err := s.postRepo.IncrementUpvotes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.VoteResponse{Upvotes: up, Downvotes: down}, nil
}

func (s *postServiceImpl) DownvotePost(ctx context.Context, postID int64) (*dto.VoteResponse, error) {
	up, down, err := s.postRepo.IncrementDownvotes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.VoteResponse{Upvotes: up, Downvotes: down}, nil
}

// AddComment adds a comment to a post. Any authenticated user may comment,
// membership is not required.
func (s *postServiceImpl) AddComment(ctx context.Context, postID, authorID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.PostComment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.postRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if author, err := s.userRepo.GetByID(ctx, authorID); err == nil {
		comment.Author = author
	}
	resp := buildCommentResponse(comment)
	return &resp, nil
}

func (s *postServiceImpl) UpvoteComment(ctx context.Context, commentID int64) (*dto.VoteResponse, error) {
	upvotes, err := s.postRepo.IncrementCommentUpvotes(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return &dto.VoteResponse{Upvotes: upvotes}, nil
}

func (s *postServiceImpl) buildPostResponseByID(ctx context.Context, postID int64) (*dto.PostResponse, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	resp := s.buildPostResponse(ctx, post)
	return &resp, nil
}

func (s *postServiceImpl) buildPostResponse(ctx context.Context, p *models.Post) dto.PostResponse {
	resp := dto.PostResponse{
		ID:          p.ID,
		CommunityID: p.CommunityID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Content:     p.Content,
		Upvotes:     p.Upvotes,
		Downvotes:   p.Downvotes,
		CreatedAt:   p.CreatedAt,
	}
	if p.Author != nil {
		resp.AuthorUsername = p.Author.Username
	}
	if p.ImageFileID != nil {
		if file, err := s.fileRepo.GetByID(ctx, *p.ImageFileID); err == nil {
			resp.ImageURL = file.FileURL
		}
	}
	return resp
}

func buildCommentResponse(c *models.PostComment) dto.CommentResponse {
	resp := dto.CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		Upvotes:   c.Upvotes,
		CreatedAt: c.CreatedAt,
	}
	if c.Author != nil {
		resp.AuthorUsername = c.Author.Username
	}
	return resp
}
