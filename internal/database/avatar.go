package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zaazu/internal/types"
)

type avatarRepository struct {
	db *gorm.DB
}

func NewAvatarRepository(db *gorm.DB) AvatarRepository {
	return &avatarRepository{db: db}
}

func (r *avatarRepository) Save(ctx context.Context, avatar *types.Avatar) error {
	return r.db.WithContext(ctx).Save(avatar).Error
}

func (r *avatarRepository) FindByID(ctx context.Context, id uuid.UUID) (*types.Avatar, error) {
	value := &types.Avatar{}
	err := r.db.
		WithContext(ctx).
		Where("id = ?", id).First(value).Error
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *avatarRepository) FindAll(ctx context.Context) ([]*types.Avatar, error) {
	resp := make([]*types.Avatar, 0)
	err := r.db.WithContext(ctx).Order("price asc").Find(&resp).Error
	return resp, err
}

func (r *avatarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&types.Avatar{}, "id = ?", id).Error
}
