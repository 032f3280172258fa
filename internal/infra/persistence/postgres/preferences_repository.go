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

// preferencesRepository implements the repository.UserPreferencesRepository interface.
type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository is the constructor for preferencesRepository.
func NewPreferencesRepository(db *gorm.DB) repository.UserPreferencesRepository {
	return &preferencesRepository{
		db: db,
	}
}

// GetMobileDevices returns the user's registered devices, active or not.
// The dispatcher filters on push capability.
func (repo *preferencesRepository) GetMobileDevices(ctx context.Context, userID uuid.UUID) ([]*entity.MobileDevice, error) {
	var deviceModels []*model.MobileDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find mobile devices")
	}

	devices := make([]*entity.MobileDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// GetReactionRules returns the rules the user configured for an application.
func (repo *preferencesRepository) GetReactionRules(ctx context.Context, userID, appID uuid.UUID) ([]entity.ReactionRule, error) {
	var ruleModels []*model.ReactionRuleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND application_id = ?", userID, appID).
		Order("created_at ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reaction rules")
	}

	rules := make([]entity.ReactionRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toRuleDomain(ruleM))
	}

	return rules, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM MobileDeviceModel to a domain MobileDevice entity.
func toDeviceDomain(data *model.MobileDeviceModel) *entity.MobileDevice {
	if data == nil {
		return nil
	}

	return &entity.MobileDevice{
		ID:          data.ID,
		UserID:      data.UserID,
		Platform:    entity.Platform(data.Platform),
		DeviceToken: data.DeviceToken,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toRuleDomain converts a GORM ReactionRuleModel to a domain ReactionRule entity.
func toRuleDomain(data *model.ReactionRuleModel) entity.ReactionRule {
	return entity.ReactionRule{
		ID:            data.ID,
		UserID:        data.UserID,
		ApplicationID: data.ApplicationID,
		Kind:          entity.RuleKind(data.Kind),
		Value:         data.Value,
		CreatedAt:     data.CreatedAt,
	}
}
