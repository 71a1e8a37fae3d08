package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unitycircles/backend/internal/app/models"
)

// MemberRepository handles community membership database operations
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

// Add joins a user to a community. Joining twice is a no-op.
func (r *MemberRepository) Add(ctx context.Context, communityID, userID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO community_members (community_id, user_id, joined_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (community_id, user_id) DO NOTHING`,
		communityID, userID,
	)
	if err != nil {
		return fmt.Errorf("error adding member: %w", err)
	}
	return nil
}

// Remove leaves a community. Removing a non-member is a no-op.
func (r *MemberRepository) Remove(ctx context.Context, communityID, userID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM community_members WHERE community_id = $1 AND user_id = $2`,
		communityID, userID,
	)
	if err != nil {
		return fmt.Errorf("error removing member: %w", err)
	}
	return nil
}

// IsMember reports whether the user belongs to the community
func (r *MemberRepository) IsMember(ctx context.Context, communityID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM community_members WHERE community_id = $1 AND user_id = $2)`,
		communityID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// GetMembers lists the members of a community with their user info
func (r *MemberRepository) GetMembers(ctx context.Context, communityID int64) ([]*models.CommunityMember, error) {
	rows, err := r.db.Query(ctx, `
		SELECT cm.id, cm.community_id, cm.user_id, cm.joined_at,
		       u.id, u.username, u.email, u.first_name, u.last_name
		FROM community_members cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.community_id = $1
		ORDER BY cm.joined_at`, communityID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var members []*models.CommunityMember
	for rows.Next() {
		m := &models.CommunityMember{User: &models.User{}}
		err := rows.Scan(
			&m.ID, &m.CommunityID, &m.UserID, &m.JoinedAt,
			&m.User.ID, &m.User.Username, &m.User.Email, &m.User.FirstName, &m.User.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// CountByUser returns how many communities the user belongs to
func (r *MemberRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM community_members WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
