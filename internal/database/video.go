package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zaazu/internal/types"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Save(ctx context.Context, video *types.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*types.Video, error) {
	value := &types.Video{}
	err := r.db.
		WithContext(ctx).
		Where("id = ?", id).First(value).Error
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *videoRepository) FindAll(ctx context.Context) ([]*types.Video, error) {
	resp := make([]*types.Video, 0)
	err := r.db.WithContext(ctx).Order("position asc").Find(&resp).Error
	return resp, err
}

func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&types.Video{}, "id = ?", id).Error
}
