package service

import (
	"testing"

	"filmbot/internal/domain"
	"filmbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name        string
		mockCreated bool
	}{
		{
			name:        "first contact creates the user",
			mockCreated: true,
		},
		{
			name:        "repeat contact is a no-op",
			mockCreated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("AddUser", int64(123), "Full Name", "username").Return(tt.mockCreated, nil)

			service := NewUserService(mockRepo)

			created, err := service.Register(123, "Full Name", "username")

			assert.NoError(t, err)
			assert.Equal(t, tt.mockCreated, created)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_List(t *testing.T) {
	users := []domain.User{
		testutil.NewTestUser(1, "First User", "first"),
		testutil.NewTestUser(2, "Second User", ""),
	}

	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("ListUsers").Return(users, nil)

	service := NewUserService(mockRepo)

	got, err := service.List()

	assert.NoError(t, err)
	assert.Equal(t, users, got)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Deactivate(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("DeactivateUser", int64(123)).Return(nil)

	service := NewUserService(mockRepo)

	assert.NoError(t, service.Deactivate(123))
	mockRepo.AssertExpectations(t)
}
