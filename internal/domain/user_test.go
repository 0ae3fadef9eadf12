package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_DisplayString(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{
			name:     "active with username",
			user:     User{UserID: 1, FullName: "First User", Username: "first", Active: true},
			expected: "Active First User (@first) - ID: 1",
		},
		{
			name:     "no username",
			user:     User{UserID: 2, FullName: "Second User", Active: true},
			expected: "Active Second User (no username) - ID: 2",
		},
		{
			name:     "deactivated",
			user:     User{UserID: 3, FullName: "Third User", Username: "third", Active: false},
			expected: "not active Third User (@third) - ID: 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.DisplayString())
		})
	}
}
