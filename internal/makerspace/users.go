package makerspace

import (
	"context"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/store"
)

// GetQuizzes returns the quiz table
func (s *service) GetQuizzes(ctx context.Context, apiKey string) ([]domain.Quiz, error) {
	var quizzes []domain.Quiz
	err := s.store.View(ctx, func(tx *store.Tables) error {
		if err := s.authorize(ctx, tx, apiKey, adminOnly...); err != nil {
			return err
		}
		quizzes = tx.Quizzes.All()
		return nil
	})
	return quizzes, err
}

// GetAllUsers returns every user ordered by college id
func (s *service) GetAllUsers(ctx context.Context, apiKey string) ([]domain.User, error) {
	var users []domain.User
	err := s.store.View(ctx, func(tx *store.Tables) error {
		if err := s.authorize(ctx, tx, apiKey, adminOnly...); err != nil {
			return err
		}
		users = tx.Users.All()
		return nil
	})
	return users, err
}

// GetUserInfo composes a user with their pending and full checkout history
func (s *service) GetUserInfo(ctx context.Context, userID uint64) (domain.UserInfo, error) {
	var info domain.UserInfo
	err := s.store.View(ctx, func(tx *store.Tables) error {
		user, err := tx.Users.Get(userID)
		if err != nil {
			return err
		}
		info = domain.NewUserInfo(user, tx.CheckoutLog.PendingForUser(userID), tx.CheckoutLog.ForUser(userID))
		return nil
	})
	return info, err
}

// SetAuthLevel changes the user's auth level
func (s *service) SetAuthLevel(ctx context.Context, userID uint64, level domain.AuthLevel, apiKey string) (domain.User, error) {
	log := logger.FromContext(ctx)
	if !level.IsValid() {
		return domain.User{}, domain.ErrInvalidInput
	}

	var (
		updated  domain.User
		previous domain.AuthLevel
	)
	err := s.store.Update(ctx, func(tx *store.Tables) error {
		if err := s.authorize(ctx, tx, apiKey, adminOnly...); err != nil {
			return err
		}
		if err := tx.Users.Update(userID, func(u *domain.User) {
			previous = u.AuthLevel
			u.AuthLevel = level
		}); err != nil {
			return err
		}
		var err error
		updated, err = tx.Users.Get(userID)
		return err
	})
	if err != nil {
		log.Info(LogMsgSetAuthLevelFailed, "user_id", userID, "level", level, "error", err)
		return domain.User{}, err
	}

	log.Info(LogMsgAuthLevelChanged, "user_id", userID, "from", previous, "to", level)
	return updated, nil
}

// SetQuizPassed records or clears a quiz pass for the user. The quiz name is
// not checked against the quiz table.
func (s *service) SetQuizPassed(ctx context.Context, userID uint64, quiz string, passed bool, apiKey string) (domain.User, error) {
	log := logger.FromContext(ctx)
	if quiz == "" {
		return domain.User{}, domain.ErrInvalidInput
	}

	var updated domain.User
	err := s.store.Update(ctx, func(tx *store.Tables) error {
		if err := s.authorize(ctx, tx, apiKey, adminOnly...); err != nil {
			return err
		}
		if err := tx.Users.Update(userID, func(u *domain.User) { u.SetQuizPassed(quiz, passed) }); err != nil {
			return err
		}
		var err error
		updated, err = tx.Users.Get(userID)
		return err
	})
	if err != nil {
		log.Info(LogMsgSetQuizFailed, "user_id", userID, "quiz", quiz, "error", err)
		return domain.User{}, err
	}

	log.Info(LogMsgQuizUpdated, "user_id", userID, "quiz", quiz, "passed", passed)
	return updated, nil
}
