package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zaazu/internal/types"
)

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Save(ctx context.Context, game *types.Game) error {
	return r.db.WithContext(ctx).Save(game).Error
}

func (r *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*types.Game, error) {
	value := &types.Game{}
	err := r.db.
		WithContext(ctx).
		Where("id = ?", id).First(value).Error
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *gameRepository) FindAll(ctx context.Context) ([]*types.Game, error) {
	resp := make([]*types.Game, 0)
	err := r.db.WithContext(ctx).Order("position asc").Find(&resp).Error
	return resp, err
}

func (r *gameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&types.Game{}, "id = ?", id).Error
}
