package handler

import (
	"fmt"
	"strings"
	"sync"

	"filmbot/internal/domain"
	"filmbot/internal/middleware"
	"filmbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Telegram rejects messages longer than 4096 characters; the user
// listing refuses anything above this instead of splitting it
const maxListingSize = 4000

// transport is the slice of the bot API the handler needs outside of a
// message context: broadcast sends and file downloads
type transport interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Download(file *tele.File, dst string) error
}

// Handler manages all bot interactions
type Handler struct {
	bot           *tele.Bot
	transport     transport
	subscriptions *service.SubscriptionService
	videos        *service.VideoService
	users         *service.UserService
	broadcasts    *service.BroadcastService
	adminID       int64
	logger        *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	subscriptions *service.SubscriptionService,
	videos *service.VideoService,
	users *service.UserService,
	broadcasts *service.BroadcastService,
	adminID int64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		transport:     bot,
		subscriptions: subscriptions,
		videos:        videos,
		users:         users,
		broadcasts:    broadcasts,
		adminID:       adminID,
		logger:        logger,
		states:        make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	adminOnly := middleware.AdminOnly(h.adminID, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/addvideo", h.handleAddVideo, adminOnly)
	h.bot.Handle("/users", h.handleUsers, adminOnly)
	h.bot.Handle("/messageforall", h.handleMessageForAll, adminOnly)

	// Plain messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnVideo, h.handleVideo)
	h.bot.Handle(tele.OnDocument, h.handleNonVideoUpload)
	h.bot.Handle(tele.OnPhoto, h.handleNonVideoUpload)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnDone, h.handleDone)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state. Starting a new dialog while another is
// pending overwrites it; last write wins.
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState returns the user to the idle state
func (h *Handler) ResetState(userID int64) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	delete(h.states, userID)
}

// Confirm button under the subscription prompt
var btnDone = tele.Btn{
	Unique: "done",
	Text:   "Done ✅",
}

// subscriptionMarkup builds the keyboard with one link button per
// required channel and a trailing confirm button
func (h *Handler) subscriptionMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}

	channels := h.subscriptions.Channels()
	rows := make([]tele.Row, 0, len(channels)+1)
	for i, channel := range channels {
		label := fmt.Sprintf("%d. Channel", i+1)
		rows = append(rows, menu.Row(menu.URL(label, channelURL(channel))))
	}
	rows = append(rows, menu.Row(menu.Data(btnDone.Text, btnDone.Unique)))

	menu.Inline(rows...)
	return menu
}

// sendSubscriptionPrompt answers with the subscribe-first message and
// the channel keyboard; used uniformly wherever the gate fails
func (h *Handler) sendSubscriptionPrompt(c tele.Context) error {
	return c.Send(
		"You are not subscribed to the required channels. Please subscribe to continue.",
		h.subscriptionMarkup(),
	)
}

// channelURL converts a channel username into an invite link
func channelURL(channel string) string {
	return "https://t.me/" + strings.TrimPrefix(channel, "@")
}
