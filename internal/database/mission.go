package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zaazu/internal/types"
)

type dailyMissionRepository struct {
	db *gorm.DB
}

func NewDailyMissionRepository(db *gorm.DB) DailyMissionRepository {
	return &dailyMissionRepository{db: db}
}

func (r *dailyMissionRepository) Save(ctx context.Context, mission *types.DailyMission) error {
	return r.db.WithContext(ctx).Save(mission).Error
}

func (r *dailyMissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*types.DailyMission, error) {
	value := &types.DailyMission{}
	err := r.db.
		WithContext(ctx).
		Where("id = ?", id).First(value).Error
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *dailyMissionRepository) FindAll(ctx context.Context) ([]*types.DailyMission, error) {
	resp := make([]*types.DailyMission, 0)
	err := r.db.WithContext(ctx).Order("weekday asc").Find(&resp).Error
	return resp, err
}

func (r *dailyMissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&types.DailyMission{}, "id = ?", id).Error
}
