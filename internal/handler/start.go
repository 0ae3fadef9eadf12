package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: records the user, then runs the gate
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()
	userID := sender.ID
	fullName := senderFullName(sender)

	created, err := h.users.Register(userID, fullName, sender.Username)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Int64("user_id", userID), zap.Error(err))
	} else if created {
		h.logger.Info("User registered",
			zap.Int64("user_id", userID),
			zap.String("username", sender.Username),
		)
	}

	if !h.subscriptions.IsSubscribed(userID) {
		return h.sendSubscriptionPrompt(c)
	}

	return c.Send(fmt.Sprintf("Hi %s! Welcome, type film code:", fullName))
}

// handleDone handles the confirm button under the subscription prompt:
// re-checks the gate and either welcomes the user or re-prompts
func (h *Handler) handleDone(c tele.Context) error {
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	if !h.subscriptions.IsSubscribed(c.Sender().ID) {
		return h.sendSubscriptionPrompt(c)
	}

	return c.Send("Welcome! Type film code:")
}

// senderFullName rebuilds the display name Telegram splits into
// first/last parts
func senderFullName(sender *tele.User) string {
	if sender.LastName == "" {
		return sender.FirstName
	}
	return sender.FirstName + " " + sender.LastName
}
