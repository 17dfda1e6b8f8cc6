package database

import (
	"context"

	"github.com/google/uuid"

	"zaazu/internal/types"
)

type VideoRepository interface {
	Save(ctx context.Context, video *types.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*types.Video, error)
	FindAll(ctx context.Context) ([]*types.Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type GameRepository interface {
	Save(ctx context.Context, game *types.Game) error
	FindByID(ctx context.Context, id uuid.UUID) (*types.Game, error)
	FindAll(ctx context.Context) ([]*types.Game, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ActivityRepository interface {
	Save(ctx context.Context, activity *types.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*types.Activity, error)
	FindAll(ctx context.Context) ([]*types.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AchievementRepository interface {
	Save(ctx context.Context, achievement *types.Achievement) error
	FindByID(ctx context.Context, id uuid.UUID) (*types.Achievement, error)
	FindAll(ctx context.Context) ([]*types.Achievement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AvatarRepository interface {
	Save(ctx context.Context, avatar *types.Avatar) error
	FindByID(ctx context.Context, id uuid.UUID) (*types.Avatar, error)
	FindAll(ctx context.Context) ([]*types.Avatar, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DailyMissionRepository interface {
	Save(ctx context.Context, mission *types.DailyMission) error
	FindByID(ctx context.Context, id uuid.UUID) (*types.DailyMission, error)
	FindAll(ctx context.Context) ([]*types.DailyMission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Save(ctx context.Context, user *types.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*types.User, error)
	FindByEmail(ctx context.Context, email string) (*types.User, error)
	FindAll(ctx context.Context) ([]*types.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LogEventRepository interface {
	Save(ctx context.Context, event *types.LogEvent) error
	FindRecent(ctx context.Context, limit int) ([]*types.LogEvent, error)
}
