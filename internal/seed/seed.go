// Package seed creates default data on first startup.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models"
)

// defaultCommunities are created once so a fresh install is not empty
var defaultCommunities = []struct {
	Name        string
	Description string
	Category    models.CommunityCategory
}{
	{"General", "A place for everyone to introduce themselves and chat", models.CategoryOther},
	{"Tech Talk", "Programming, tooling and engineering careers", models.CategoryTech},
	{"Career Growth", "Job hunting, interviews and professional development", models.CategoryBusiness},
}

// CreateDefaultData seeds the default communities if none exist. The seed
// communities are owned by the system user created here.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM communities`).Scan(&count); err != nil {
		return fmt.Errorf("error counting communities: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int("count", count).Msg("Communities already present, skipping seed")
		return nil
	}

	// system user owns the seed communities; login is impossible because the
	// password column holds a marker, not a bcrypt hash
	var systemUserID int64
	err := dbPool.QueryRow(ctx, `
		INSERT INTO users (username, email, password, first_name, last_name, created_at, updated_at)
		VALUES ('system', 'system@unitycircles.local', '!system', 'System', '', NOW(), NOW())
		ON CONFLICT (username) DO UPDATE SET updated_at = NOW()
		RETURNING id`).Scan(&systemUserID)
	if err != nil {
		return fmt.Errorf("error creating system user: %w", err)
	}

	_, err = dbPool.Exec(ctx, `
		INSERT INTO profiles (user_id, role, created_at, updated_at)
		VALUES ($1, 'student', NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING`, systemUserID)
	if err != nil {
		return fmt.Errorf("error creating system profile: %w", err)
	}
	_, err = dbPool.Exec(ctx, `
		INSERT INTO onboarding_steps (user_id, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING`, systemUserID)
	if err != nil {
		return fmt.Errorf("error creating system onboarding row: %w", err)
	}

	for _, c := range defaultCommunities {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO communities (name, description, category, creator_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())`,
			c.Name, c.Description, c.Category, systemUserID)
		if err != nil {
			return fmt.Errorf("error seeding community %q: %w", c.Name, err)
		}
		lgr.Info().Str("name", c.Name).Msg("Seeded default community")
	}

	return nil
}
