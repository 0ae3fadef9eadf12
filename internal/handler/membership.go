package handler

import (
	"fmt"

	"filmbot/internal/service"

	tele "gopkg.in/telebot.v3"
)

// botMembershipChecker implements service.MembershipChecker on top of
// the live bot API
type botMembershipChecker struct {
	bot *tele.Bot
}

// NewMembershipChecker wraps the bot API for the subscription gate
func NewMembershipChecker(bot *tele.Bot) service.MembershipChecker {
	return &botMembershipChecker{bot: bot}
}

// MemberOf queries the user's role in a channel by username
func (m *botMembershipChecker) MemberOf(channel string, userID int64) (string, error) {
	chat, err := m.bot.ChatByUsername(channel)
	if err != nil {
		return "", fmt.Errorf("failed to resolve channel %s: %w", channel, err)
	}

	member, err := m.bot.ChatMemberOf(chat, &tele.User{ID: userID})
	if err != nil {
		return "", fmt.Errorf("failed to query membership in %s: %w", channel, err)
	}

	return string(member.Role), nil
}
