package postgres

import (
	"context"
	"time"

	"herald/internal/domain/entity"
	domainerrors "herald/internal/domain/errors"
	"herald/internal/domain/repository"
	"herald/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inboxRepository implements the repository.InboxRepository interface.
type inboxRepository struct {
	db *gorm.DB
}

// NewInboxRepository is the constructor for inboxRepository.
func NewInboxRepository(db *gorm.DB) repository.InboxRepository {
	return &inboxRepository{
		db: db,
	}
}

// SaveMessageForUser places a message in the user's inbox with the given
// retention policy.
func (repo *inboxRepository) SaveMessageForUser(ctx context.Context, user *entity.User, msg *entity.Message, retention entity.Retention) error {
	if user == nil {
		return errors.New("user must not be nil")
	}
	if msg == nil {
		return errors.New("message must not be nil")
	}

	now := time.Now()
	inboxM := &model.InboxMessageModel{
		UserID:    user.ID,
		MessageID: msg.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(retention.Duration()),
	}

	if err := repo.db.WithContext(ctx).Create(inboxM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidArgument.WrapMessage("invalid user or message reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidArgument.WrapMessage("missing required inbox information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save inbox message")
	}

	return nil
}
