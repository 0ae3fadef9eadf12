package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"filmbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes plain text. An active admin dialog always consumes
// the message first; only then is text treated as a lookup code.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands are routed by their own handlers
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)
	switch state.State {
	case domain.StateWaitingCode:
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingVideo,
			PendingCode: text,
		})
		return c.Send("Please send the video file:")

	case domain.StateWaitingVideo:
		// Only a video attachment completes this step
		return c.Send("Please send a video file.")

	case domain.StateWaitingBroadcast:
		return h.runBroadcast(c, text)
	}

	return h.handleLookup(c, userID, text)
}

// handleLookup resolves text as a catalog code for a subscribed user
func (h *Handler) handleLookup(c tele.Context, userID int64, code string) error {
	if !h.subscriptions.IsSubscribed(userID) {
		return h.sendSubscriptionPrompt(c)
	}

	res, err := h.videos.Resolve(code)
	if err != nil {
		h.logger.Error("Failed to resolve code",
			zap.Int64("user_id", userID),
			zap.String("code", code),
			zap.Error(err),
		)
		return c.Send("An error occurred. Please try again later.")
	}

	switch res.Status {
	case domain.ResolveNotFound:
		return c.Send("No video found with this code.")

	case domain.ResolveFileMissing:
		h.logger.Warn("Video file missing on disk",
			zap.String("code", code),
			zap.String("path", res.FilePath),
		)
		return c.Send("The video file could not be found. Please contact the administrator.")
	}

	doc := &tele.Document{
		File:     tele.FromDisk(res.FilePath),
		FileName: filepath.Base(res.FilePath),
	}
	if err := c.Send(doc); err != nil {
		h.logger.Error("Failed to send video file",
			zap.Int64("user_id", userID),
			zap.String("code", code),
			zap.Error(err),
		)
		return c.Send("An error occurred while sending the video. Please try again later.")
	}

	return nil
}

// runBroadcast relays the admin's message to every known user and
// reports the outcome. The dialog ends regardless of the result.
func (h *Handler) runBroadcast(c tele.Context, text string) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	// The dialog is admin-gated at entry, but re-check before fan-out
	if userID != h.adminID {
		return c.Send("You are not authorized to use this command.")
	}

	summary, err := h.broadcasts.SendToAll(func(u domain.User) error {
		_, sendErr := h.transport.Send(&tele.User{ID: u.UserID}, text)
		return sendErr
	})
	if err != nil {
		h.logger.Error("Broadcast aborted", zap.Error(err))
		return c.Send("An error occurred. Please try again later.")
	}

	for _, failure := range summary.Failures {
		report := fmt.Sprintf("Could not deliver to %s (ID: %d): %v",
			failure.User.FullName, failure.User.UserID, failure.Err)
		if err := c.Send(report); err != nil {
			h.logger.Warn("Failed to report delivery failure", zap.Error(err))
		}
	}

	return c.Send(fmt.Sprintf("Broadcast finished: %d delivered, %d failed.",
		summary.Delivered, summary.Failed()))
}
