package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"filmbot/internal/domain"
)

// Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// VideoRepo implements repository.VideoRepository
type VideoRepo struct {
	db *sql.DB
}

// NewVideoRepo creates a new video repository
func NewVideoRepo(db *sql.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

// AddVideo inserts a code/file mapping.
// A duplicate code is reported as false, not an error; the UNIQUE
// constraint on code keeps concurrent inserts from both succeeding.
func (r *VideoRepo) AddVideo(code, filePath string) (bool, error) {
	query := `
		INSERT INTO videos (code, file_path)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(query, code, filePath)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetVideo looks up a catalog entry by its exact code.
// Returns nil when no video is registered under the code.
func (r *VideoRepo) GetVideo(code string) (*domain.Video, error) {
	var v domain.Video
	query := `
		SELECT id, code, file_path, created_at
		FROM videos
		WHERE code = $1
	`
	err := r.db.QueryRow(query, code).Scan(&v.ID, &v.Code, &v.FilePath, &v.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}
