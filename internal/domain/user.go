package domain

import (
	"fmt"
	"time"
)

// User represents a bot user
type User struct {
	UserID    int64
	FullName  string
	Username  string
	CreatedAt time.Time
	Active    bool
}

// DisplayString returns the listing line for the admin user overview
func (u User) DisplayString() string {
	username := "no username"
	if u.Username != "" {
		username = "@" + u.Username
	}

	status := "not active"
	if u.Active {
		status = "Active"
	}

	return fmt.Sprintf("%s %s (%s) - ID: %d", status, u.FullName, username, u.UserID)
}
