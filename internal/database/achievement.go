package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zaazu/internal/types"
)

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Save(ctx context.Context, achievement *types.Achievement) error {
	return r.db.WithContext(ctx).Save(achievement).Error
}

func (r *achievementRepository) FindByID(ctx context.Context, id uuid.UUID) (*types.Achievement, error) {
	value := &types.Achievement{}
	err := r.db.
		WithContext(ctx).
		Where("id = ?", id).First(value).Error
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *achievementRepository) FindAll(ctx context.Context) ([]*types.Achievement, error) {
	resp := make([]*types.Achievement, 0)
	err := r.db.WithContext(ctx).Order("points asc").Find(&resp).Error
	return resp, err
}

func (r *achievementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&types.Achievement{}, "id = ?", id).Error
}
