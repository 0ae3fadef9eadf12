package handler

import (
	"filmbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleVideo completes the add-video dialog: the file is downloaded to
// its storage path first, then the catalog entry is inserted
func (h *Handler) handleVideo(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	if state.State != domain.StateWaitingVideo {
		// Stray video outside the dialog, nothing to do
		return nil
	}

	video := c.Message().Video
	code := state.PendingCode
	path := h.videos.StoragePath(code, video.FileName)

	if err := h.transport.Download(&video.File, path); err != nil {
		h.logger.Error("Failed to download video",
			zap.String("code", code),
			zap.Error(err),
		)
		// Keep the dialog open so the admin can resend the file
		return c.Send("Failed to save the video. Please send the file again.")
	}

	added, err := h.videos.Register(code, path)
	if err != nil {
		h.logger.Error("Failed to register video",
			zap.String("code", code),
			zap.Error(err),
		)
		h.ResetState(userID)
		return c.Send("An error occurred. Please try again later.")
	}

	h.ResetState(userID)

	if !added {
		return c.Send("Video with this code already exists.")
	}

	h.logger.Info("Video added",
		zap.String("code", code),
		zap.String("path", path),
	)
	return c.Send("Video added successfully.")
}

// handleNonVideoUpload reminds the admin mid-dialog that only a video
// attachment is accepted; any other upload is ignored
func (h *Handler) handleNonVideoUpload(c tele.Context) error {
	state := h.GetState(c.Sender().ID)
	if state.State != domain.StateWaitingVideo {
		return nil
	}
	return c.Send("Please send a video file.")
}
