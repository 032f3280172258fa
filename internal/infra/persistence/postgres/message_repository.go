package postgres

import (
	"context"

	"herald/internal/domain/entity"
	domainerrors "herald/internal/domain/errors"
	"herald/internal/domain/repository"
	"herald/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// SaveMessage persists a submitted message with the given retention policy.
func (repo *messageRepository) SaveMessage(ctx context.Context, msg *entity.Message, retention entity.Retention) error {
	messageM := fromMessageDomain(msg, retention)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidArgument.WrapMessage("invalid application reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidArgument.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save message")
	}

	return nil
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
// The expiry column is derived from the retention policy at write time.
func fromMessageDomain(data *entity.Message, retention entity.Retention) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:              data.ID,
		ApplicationID:   data.ApplicationID,
		ApplicationName: data.ApplicationName,
		Title:           data.Title,
		Body:            data.Body,
		Urgency:         string(data.Urgency),
		Hostname:        data.Hostname,
		MACAddress:      data.MACAddress,
		CreatedAt:       data.CreatedAt,
		ExpiresAt:       data.CreatedAt.Add(retention.Duration()),
	}
}
