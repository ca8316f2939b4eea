package service

import (
	"errors"
	"time"

	"task-manager-bot/internal/cache"
	"task-manager-bot/internal/errs"
	"task-manager-bot/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// userCacheTTL bounds how stale a directory lookup may be. Profile fields
// are only written on first creation, so a short TTL is plenty.
const userCacheTTL = 5 * time.Minute

// ProfileHints carries optional profile fields from the messaging platform,
// used only when a user is first created.
type ProfileHints struct {
	Name        string
	Email       string
	DisplayName string
	RealName    string
	Timezone    string
}

// UserService is the user directory: it resolves Slack IDs to durable user
// records, creating them lazily on first sight.
type UserService struct {
	db        *gorm.DB
	log       *zap.Logger
	bySlackID *cache.TTLCache[string, models.User]
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{
		db:        db,
		log:       log,
		bySlackID: cache.New[string, models.User](),
	}
}

// FindOrCreate returns the user with the given Slack ID, creating one when
// none exists. Idempotent: the unique slack_id index is the authority, so a
// concurrent creation race resolves to the row that won.
func (s *UserService) FindOrCreate(slackID string, hints ProfileHints) (*models.User, error) {
	if slackID == "" {
		return nil, &errs.ValidationError{Field: "slackId", Reason: "must not be empty"}
	}

	if u, ok := s.bySlackID.Get(slackID); ok {
		return &u, nil
	}

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("slack_id = ?", slackID).First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user = models.User{
			SlackID:     slackID,
			Username:    hints.Name,
			Email:       hints.Email,
			DisplayName: hints.DisplayName,
			Timezone:    hints.Timezone,
			Role:        models.RoleEmployee,
			IsActive:    true,
		}
		if user.Username == "" {
			user.Username = "user_" + slackID
		}
		if user.DisplayName == "" {
			user.DisplayName = hints.RealName
		}
		if user.Timezone == "" {
			user.Timezone = "UTC"
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		s.log.Info("created new user",
			zap.String("username", user.Username),
			zap.String("slack_id", slackID))
		return nil
	})
	if err != nil {
		// A duplicate slack_id means a concurrent request created the
		// user between our read and write; return the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if readErr := s.db.Where("slack_id = ?", slackID).First(&user).Error; readErr == nil {
				s.bySlackID.Set(slackID, user, userCacheTTL)
				return &user, nil
			}
		}
		return nil, errs.FromStore("find or create user", err)
	}

	s.bySlackID.Set(slackID, user, userCacheTTL)
	return &user, nil
}

// GetBySlackID looks up a user without creating one. An absent user is a
// valid result (found=false), distinct from a store failure.
func (s *UserService) GetBySlackID(slackID string) (*models.User, bool, error) {
	if u, ok := s.bySlackID.Get(slackID); ok {
		return &u, true, nil
	}

	var user models.User
	err := s.db.Where("slack_id = ?", slackID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.FromStore("get user by slack id", err)
	}
	s.bySlackID.Set(slackID, user, userCacheTTL)
	return &user, true, nil
}

// GetByID fetches a user by internal id.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.NotFoundError{Entity: "user", ID: id}
	}
	if err != nil {
		return nil, errs.FromStore("get user", err)
	}
	return &user, nil
}

// GetAllActive returns the active users ordered by username.
func (s *UserService) GetAllActive() ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("is_active = ?", true).Order("username ASC").Find(&users).Error; err != nil {
		return nil, errs.FromStore("list users", err)
	}
	return users, nil
}
