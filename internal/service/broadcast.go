package service

import (
	"filmbot/internal/domain"
	"filmbot/internal/repository"

	"go.uber.org/zap"
)

// SendFunc delivers one broadcast message to one user
type SendFunc func(user domain.User) error

// BroadcastService relays one admin message to every known user
type BroadcastService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(userRepo repository.UserRepository, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// SendToAll delivers sequentially to every user in the directory.
// A failed recipient is recorded and the loop continues; each user gets
// exactly one attempt.
func (s *BroadcastService) SendToAll(send SendFunc) (domain.BroadcastSummary, error) {
	users, err := s.userRepo.ListUsers()
	if err != nil {
		return domain.BroadcastSummary{}, err
	}

	var summary domain.BroadcastSummary
	for _, user := range users {
		if err := send(user); err != nil {
			s.logger.Warn("Broadcast delivery failed",
				zap.Int64("user_id", user.UserID),
				zap.Error(err),
			)
			summary.Failures = append(summary.Failures, domain.DeliveryFailure{User: user, Err: err})
			continue
		}
		summary.Delivered++
	}

	s.logger.Info("Broadcast finished",
		zap.Int("delivered", summary.Delivered),
		zap.Int("failed", summary.Failed()),
	)

	return summary, nil
}
