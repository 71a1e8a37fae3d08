package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
	"github.com/unitycircles/backend/internal/pkg/dberrors"
)

// MentorRepository handles mentor directory database operations
type MentorRepository struct {
	db *pgxpool.Pool
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{db: db}
}

// Create registers a mentor profile. A second row for the same user fails
// with ErrMentorProfileExists.
func (r *MentorRepository) Create(ctx context.Context, mentor *models.MentorProfile) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentor_profiles (user_id, field, expertise, bio, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`,
		mentor.UserID, mentor.Field, mentor.Expertise, mentor.Bio,
	).Scan(&mentor.ID, &mentor.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentor_profiles_user_id_key") {
			return apperrors.ErrMentorProfileExists
		}
		return fmt.Errorf("error creating mentor profile: %w", err)
	}
	return nil
}

const mentorSelect = `
	SELECT mp.id, mp.user_id, mp.field, mp.expertise, mp.bio, mp.created_at,
	       u.username, u.first_name, u.last_name
	FROM mentor_profiles mp
	JOIN users u ON u.id = mp.user_id`

func collectMentors(rows pgx.Rows) ([]*models.MentorProfile, error) {
	var mentors []*models.MentorProfile
	for rows.Next() {
		m := &models.MentorProfile{User: &models.User{}}
		err := rows.Scan(
			&m.ID, &m.UserID, &m.Field, &m.Expertise, &m.Bio, &m.CreatedAt,
			&m.User.Username, &m.User.FirstName, &m.User.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		m.User.ID = m.UserID
		mentors = append(mentors, m)
	}
	return mentors, rows.Err()
}

// GetAll lists every mentor profile with user info
func (r *MentorRepository) GetAll(ctx context.Context) ([]*models.MentorProfile, error) {
	rows, err := r.db.Query(ctx, mentorSelect+` ORDER BY mp.id`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()
	return collectMentors(rows)
}

// GetRecommended lists up to limit mentors for the dashboard
func (r *MentorRepository) GetRecommended(ctx context.Context, limit int) ([]*models.MentorProfile, error) {
	rows, err := r.db.Query(ctx, mentorSelect+` ORDER BY mp.id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()
	return collectMentors(rows)
}

// ExistsForUser reports whether the user already has a mentor profile
func (r *MentorRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM mentor_profiles WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// Count returns the total number of mentors
func (r *MentorRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM mentor_profiles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
