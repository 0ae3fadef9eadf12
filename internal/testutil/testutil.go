package testutil

import (
	"time"

	"filmbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, fullName, username string) domain.User {
	return domain.User{
		UserID:    userID,
		FullName:  fullName,
		Username:  username,
		CreatedAt: time.Now(),
		Active:    true,
	}
}

// NewTestVideo creates a test catalog entry
func NewTestVideo(id int, code, filePath string) *domain.Video {
	return &domain.Video{
		ID:        id,
		Code:      code,
		FilePath:  filePath,
		CreatedAt: time.Now(),
	}
}
