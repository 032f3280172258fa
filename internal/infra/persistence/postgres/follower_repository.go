package postgres

import (
	"context"

	"herald/internal/domain/entity"
	"herald/internal/domain/repository"
	"herald/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// followerRepository implements the repository.FollowerRepository interface.
type followerRepository struct {
	db *gorm.DB
}

// NewFollowerRepository is the constructor for followerRepository.
func NewFollowerRepository(db *gorm.DB) repository.FollowerRepository {
	return &followerRepository{
		db: db,
	}
}

// GetApplicationFollowers returns every user following the application.
func (repo *followerRepository) GetApplicationFollowers(ctx context.Context, appID uuid.UUID) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN application_followers ON application_followers.user_id = users.id").
		Where("application_followers.application_id = ?", appID).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find application followers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}
