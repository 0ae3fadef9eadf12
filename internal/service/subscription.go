package service

import (
	"go.uber.org/zap"
)

// Chat member roles that count as subscribed
const (
	RoleMember        = "member"
	RoleAdministrator = "administrator"
	RoleCreator       = "creator"
)

// MembershipChecker queries a user's role in a channel.
// An error means the status could not be determined (network failure,
// bot not admin in the channel, user never seen by the channel).
type MembershipChecker interface {
	MemberOf(channel string, userID int64) (string, error)
}

// SubscriptionService decides whether a user satisfies all required
// channel subscriptions
type SubscriptionService struct {
	checker  MembershipChecker
	channels []string
	logger   *zap.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(checker MembershipChecker, channels []string, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		checker:  checker,
		channels: channels,
		logger:   logger,
	}
}

// Channels returns the configured required channels
func (s *SubscriptionService) Channels() []string {
	return s.channels
}

// IsSubscribed reports whether the user is a member of every required
// channel. Each call re-queries the transport. A failed query counts as
// not subscribed for that channel, and the first unsatisfied channel
// stops the scan.
func (s *SubscriptionService) IsSubscribed(userID int64) bool {
	for _, channel := range s.channels {
		role, err := s.checker.MemberOf(channel, userID)
		if err != nil {
			s.logger.Debug("Membership query failed, treating as not subscribed",
				zap.String("channel", channel),
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return false
		}

		switch role {
		case RoleMember, RoleAdministrator, RoleCreator:
		default:
			return false
		}
	}

	return true
}
