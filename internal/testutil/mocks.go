package testutil

import (
	"filmbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) AddUser(userID int64, fullName, username string) (bool, error) {
	args := m.Called(userID, fullName, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListUsers() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) DeactivateUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockVideoRepository is a mock for VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) AddVideo(code, filePath string) (bool, error) {
	args := m.Called(code, filePath)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) GetVideo(code string) (*domain.Video, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

// MockMembershipChecker is a mock for service.MembershipChecker
type MockMembershipChecker struct {
	mock.Mock
}

func (m *MockMembershipChecker) MemberOf(channel string, userID int64) (string, error) {
	args := m.Called(channel, userID)
	return args.String(0), args.Error(1)
}
