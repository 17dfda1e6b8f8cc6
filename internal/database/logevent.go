package database

import (
	"context"

	"gorm.io/gorm"

	"zaazu/internal/types"
)

type logEventRepository struct {
	db *gorm.DB
}

func NewLogEventRepository(db *gorm.DB) LogEventRepository {
	return &logEventRepository{db: db}
}

func (r *logEventRepository) Save(ctx context.Context, event *types.LogEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *logEventRepository) FindRecent(ctx context.Context, limit int) ([]*types.LogEvent, error) {
	resp := make([]*types.LogEvent, 0)
	err := r.db.
		WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&resp).Error
	return resp, err
}
