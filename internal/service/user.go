package service

import (
	"filmbot/internal/domain"
	"filmbot/internal/repository"
)

// UserService handles the user directory
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register records the user on first contact.
// Returns true when the user was newly created; repeat calls are no-ops.
func (s *UserService) Register(userID int64, fullName, username string) (bool, error) {
	return s.userRepo.AddUser(userID, fullName, username)
}

// List returns every user that ever started the bot
func (s *UserService) List() ([]domain.User, error) {
	return s.userRepo.ListUsers()
}

// Deactivate marks a user inactive. Users are never deleted.
// No bot command invokes this yet; the capability is kept for
// administrative use.
func (s *UserService) Deactivate(userID int64) error {
	return s.userRepo.DeactivateUser(userID)
}
