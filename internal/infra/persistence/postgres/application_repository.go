// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// applicationRepository implements the repository.ApplicationRepository interface.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{
		db: db,
	}
}

// GetByID retrieves an application by its unique ID.
func (repo *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var appM model.ApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application by ID")
	}

	return toApplicationDomain(&appM), nil
}

// toApplicationDomain converts a GORM ApplicationModel to a domain Application entity.
func toApplicationDomain(data *model.ApplicationModel) *entity.Application {
	if data == nil {
		return nil
	}

	return &entity.Application{
		ID:        data.ID,
		Name:      data.Name,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
	}
}
