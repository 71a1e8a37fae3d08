package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

// PostRepository handles post and comment database operations
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

const postSelect = `
	SELECT p.id, p.community_id, p.author_id, p.title, p.content, p.image_file_id,
	       p.upvotes, p.downvotes, p.created_at, p.updated_at, u.username
	FROM posts p
	JOIN users u ON u.id = p.author_id`

func scanPost(row pgx.Row) (*models.Post, error) {
	p := &models.Post{Author: &models.User{}}
	err := row.Scan(
		&p.ID, &p.CommunityID, &p.AuthorID, &p.Title, &p.Content, &p.ImageFileID,
		&p.Upvotes, &p.Downvotes, &p.CreatedAt, &p.UpdatedAt, &p.Author.Username,
	)
	if err != nil {
		return nil, err
	}
	p.Author.ID = p.AuthorID
	return p, nil
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO posts (community_id, author_id, title, content, image_file_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, upvotes, downvotes, created_at, updated_at`,
		post.CommunityID, post.AuthorID, post.Title, post.Content, post.ImageFileID,
	).Scan(&post.ID, &post.Upvotes, &post.Downvotes, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}
	return nil
}

// GetByID retrieves a single post with its author username
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	post, err := scanPost(r.db.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return post, nil
}

// GetByCommunity lists a community's posts newest first
func (r *PostRepository) GetByCommunity(ctx context.Context, communityID int64) ([]*models.Post, error) {
	rows, err := r.db.Query(ctx, postSelect+` WHERE p.community_id = $1 ORDER BY p.created_at DESC`, communityID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetRecentForUser lists the newest posts across the user's communities
func (r *PostRepository) GetRecentForUser(ctx context.Context, userID int64, limit int) ([]*models.Post, error) {
	rows, err := r.db.Query(ctx, postSelect+`
		WHERE p.community_id IN (SELECT community_id FROM community_members WHERE user_id = $1)
		ORDER BY p.created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// IncrementUpvotes bumps the post upvote counter and returns the new totals
func (r *PostRepository) IncrementUpvotes(ctx context.Context, postID int64) (upvotes, downvotes int, err error) {
	err = r.db.QueryRow(ctx, `
		UPDATE posts SET upvotes = upvotes + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING upvotes, downvotes`, postID,
	).Scan(&upvotes, &downvotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, apperrors.ErrPostNotFound
		}
		return 0, 0, fmt.Errorf("error incrementing upvotes: %w", err)
	}
	return upvotes, downvotes, nil
}

// IncrementDownvotes bumps the post downvote counter and returns the new totals
func (r *PostRepository) IncrementDownvotes(ctx context.Context, postID int64) (upvotes, downvotes int, err error) {
	err = r.db.QueryRow(ctx, `
		UPDATE posts SET downvotes = downvotes + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING upvotes, downvotes`, postID,
	).Scan(&upvotes, &downvotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, apperrors.ErrPostNotFound
		}
		return 0, 0, fmt.Errorf("error incrementing downvotes: %w", err)
	}
	return upvotes, downvotes, nil
}

// CreateComment inserts a comment on a post
func (r *PostRepository) CreateComment(ctx context.Context, comment *models.PostComment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO post_comments (post_id, author_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, upvotes, created_at, updated_at`,
		comment.PostID, comment.AuthorID, comment.Content,
	).Scan(&comment.ID, &comment.Upvotes, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// GetCommentsByPost lists a post's comments oldest first
func (r *PostRepository) GetCommentsByPost(ctx context.Context, postID int64) ([]*models.PostComment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.post_id, c.author_id, c.content, c.upvotes, c.created_at, c.updated_at, u.username
		FROM post_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at`, postID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var comments []*models.PostComment
	for rows.Next() {
		c := &models.PostComment{Author: &models.User{}}
		err := rows.Scan(
			&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.Upvotes,
			&c.CreatedAt, &c.UpdatedAt, &c.Author.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		c.Author.ID = c.AuthorID
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// IncrementCommentUpvotes bumps a comment's upvote counter and returns the new count
func (r *PostRepository) IncrementCommentUpvotes(ctx context.Context, commentID int64) (int, error) {
	var upvotes int
	err := r.db.QueryRow(ctx, `
		UPDATE post_comments SET upvotes = upvotes + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING upvotes`, commentID,
	).Scan(&upvotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrCommentNotFound
		}
		return 0, fmt.Errorf("error incrementing comment upvotes: %w", err)
	}
	return upvotes, nil
}
