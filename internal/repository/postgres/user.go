package postgres

import (
	"database/sql"

	"filmbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// AddUser inserts the user if not already known.
// Creation time and the active flag default at the database.
func (r *UserRepo) AddUser(userID int64, fullName, username string) (bool, error) {
	query := `
		INSERT INTO users (user_id, full_name, username)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`
	res, err := r.db.Exec(query, userID, fullName, username)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// ListUsers returns all users in insertion order
func (r *UserRepo) ListUsers() ([]domain.User, error) {
	query := `
		SELECT user_id, full_name, username, created_at, is_active
		FROM users
		ORDER BY created_at, user_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.UserID, &u.FullName, &u.Username, &u.CreatedAt, &u.Active); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// DeactivateUser clears the active flag; idempotent
func (r *UserRepo) DeactivateUser(userID int64) error {
	query := `
		UPDATE users
		SET is_active = FALSE
		WHERE user_id = $1
	`
	_, err := r.db.Exec(query, userID)
	return err
}
