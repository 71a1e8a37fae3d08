package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

// CommunityFilter narrows the community listing
type CommunityFilter struct {
	Search   string
	Category string
	MemberID *int64
}

// CommunityRepository handles community database operations
type CommunityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a community and its creator membership in one transaction
func (r *CommunityRepository) Create(ctx context.Context, community *models.Community) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO communities (name, description, category, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		community.Name, community.Description, community.Category, community.CreatorID,
	).Scan(&community.ID, &community.CreatedAt, &community.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating community: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO community_members (community_id, user_id, joined_at)
		VALUES ($1, $2, NOW())`,
		community.ID, community.CreatorID,
	)
	if err != nil {
		return fmt.Errorf("error adding creator as member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// GetAll retrieves communities newest first, with optional search, category
// and membership filters. Member counts come from a correlated subquery.
func (r *CommunityRepository) GetAll(ctx context.Context, filter CommunityFilter) ([]*models.Community, map[int64]int, error) {
	builder := r.sb.Select(
		"c.id", "c.name", "c.description", "c.category", "c.creator_id",
		"c.image_file_id", "c.created_at", "c.updated_at",
		"(SELECT COUNT(*) FROM community_members m WHERE m.community_id = c.id) AS member_count",
	).From("communities c").OrderBy("c.created_at DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"c.name": pattern},
			squirrel.ILike{"c.description": pattern},
		})
	}
	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"c.category": filter.Category})
	}
	if filter.MemberID != nil {
		builder = builder.Join("community_members cm ON cm.community_id = c.id").
			Where(squirrel.Eq{"cm.user_id": *filter.MemberID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build community query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var communities []*models.Community
	counts := make(map[int64]int)
	for rows.Next() {
		c := &models.Community{}
		var memberCount int
		err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Category, &c.CreatorID,
			&c.ImageFileID, &c.CreatedAt, &c.UpdatedAt, &memberCount,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("error scanning row: %w", err)
		}
		communities = append(communities, c)
		counts[c.ID] = memberCount
	}
	return communities, counts, rows.Err()
}

// GetByID retrieves a single community
func (r *CommunityRepository) GetByID(ctx context.Context, id int64) (*models.Community, error) {
	c := &models.Community{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, category, creator_id, image_file_id, created_at, updated_at
		FROM communities WHERE id = $1`, id,
	).Scan(
		&c.ID, &c.Name, &c.Description, &c.Category, &c.CreatorID,
		&c.ImageFileID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return c, nil
}

// UpdateImageFileID sets the community image reference
func (r *CommunityRepository) UpdateImageFileID(ctx context.Context, communityID int64, fileID *int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE communities SET image_file_id = $1, updated_at = NOW() WHERE id = $2`,
		fileID, communityID,
	)
	if err != nil {
		return fmt.Errorf("error updating community image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}
	return nil
}
