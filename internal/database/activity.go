package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zaazu/internal/types"
)

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Save(ctx context.Context, activity *types.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*types.Activity, error) {
	value := &types.Activity{}
	err := r.db.
		WithContext(ctx).
		Where("id = ?", id).First(value).Error
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *activityRepository) FindAll(ctx context.Context) ([]*types.Activity, error) {
	resp := make([]*types.Activity, 0)
	err := r.db.WithContext(ctx).Order("position asc").Find(&resp).Error
	return resp, err
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&types.Activity{}, "id = ?", id).Error
}
