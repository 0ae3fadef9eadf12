package repository

import (
	"filmbot/internal/domain"
)

// UserRepository defines user directory operations
type UserRepository interface {
	// AddUser inserts the user if absent; returns false without mutation
	// when the user is already known
	AddUser(userID int64, fullName, username string) (bool, error)
	ListUsers() ([]domain.User, error)
	DeactivateUser(userID int64) error
}

// VideoRepository defines video catalog operations
type VideoRepository interface {
	// AddVideo inserts a code/file mapping; returns false when the code
	// is already taken
	AddVideo(code, filePath string) (bool, error)
	GetVideo(code string) (*domain.Video, error)
}
