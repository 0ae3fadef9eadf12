package handler

import (
	"strings"

	"filmbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAddVideo starts the two-step add-video dialog.
// Overwrites any dialog already in progress.
func (h *Handler) handleAddVideo(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingCode})
	return c.Send("Please send the film code:")
}

// handleMessageForAll starts the broadcast dialog
func (h *Handler) handleMessageForAll(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingBroadcast})
	return c.Send("Please send the message to broadcast:")
}

// handleUsers lists every known user to the admin
func (h *Handler) handleUsers(c tele.Context) error {
	users, err := h.users.List()
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		return c.Send("An error occurred. Please try again later.")
	}

	if len(users) == 0 {
		return c.Send("No users yet.")
	}

	listing := formatUserListing(users)
	if len(listing) > maxListingSize {
		return c.Send("Too much data for one message!")
	}

	return c.Send(listing)
}

// formatUserListing renders one line per user
func formatUserListing(users []domain.User) string {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, u.DisplayString())
	}
	return strings.Join(lines, "\n")
}
