package service

import (
	"errors"
	"testing"

	"filmbot/internal/domain"
	"filmbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestBroadcastService_SendToAll(t *testing.T) {
	users := []domain.User{
		testutil.NewTestUser(1, "First User", "first"),
		testutil.NewTestUser(2, "Second User", "second"),
		testutil.NewTestUser(3, "Third User", "third"),
	}

	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("ListUsers").Return(users, nil)

	service := NewBroadcastService(mockRepo, testutil.NewTestLogger())

	sendErr := errors.New("blocked by user")
	var attempted []int64
	summary, err := service.SendToAll(func(u domain.User) error {
		attempted = append(attempted, u.UserID)
		if u.UserID == 2 {
			return sendErr
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Delivered)
	assert.Equal(t, 1, summary.Failed())
	assert.Equal(t, int64(2), summary.Failures[0].User.UserID)
	assert.Equal(t, sendErr, summary.Failures[0].Err)
	// One attempt per user, failure does not abort the loop
	assert.Equal(t, []int64{1, 2, 3}, attempted)
	mockRepo.AssertExpectations(t)
}

func TestBroadcastService_SendToAll_NoUsers(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("ListUsers").Return([]domain.User{}, nil)

	service := NewBroadcastService(mockRepo, testutil.NewTestLogger())

	summary, err := service.SendToAll(func(domain.User) error {
		t.Fatal("send must not be called")
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Delivered)
	assert.Equal(t, 0, summary.Failed())
}

func TestBroadcastService_SendToAll_ListError(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("ListUsers").Return(nil, errors.New("database down"))

	service := NewBroadcastService(mockRepo, testutil.NewTestLogger())

	_, err := service.SendToAll(func(domain.User) error { return nil })

	assert.Error(t, err)
}
