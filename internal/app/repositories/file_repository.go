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

// FileRepository handles database operations for uploaded files
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create records an uploaded file and returns its ID
func (r *FileRepository) Create(ctx context.Context, file *models.File) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO files (file_name, file_path, file_url, file_size, file_type, resource_type, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id`,
		file.FileName, file.FilePath, file.FileURL, file.FileSize,
		file.FileType, file.ResourceType, file.UploadedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating file: %w", err)
	}
	file.ID = id
	return id, nil
}

// GetByID retrieves a file by ID
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	file := &models.File{}
	err := r.db.QueryRow(ctx, `
		SELECT id, file_name, file_path, file_url, file_size, file_type, resource_type, uploaded_by, created_at
		FROM files WHERE id = $1`, id,
	).Scan(
		&file.ID, &file.FileName, &file.FilePath, &file.FileURL,
		&file.FileSize, &file.FileType, &file.ResourceType, &file.UploadedBy, &file.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting file: %w", err)
	}
	return file, nil
}

// Delete removes a file record
func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting file: %w", err)
	}
	return nil
}
