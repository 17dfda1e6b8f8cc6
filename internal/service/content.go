package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"zaazu/internal/database"
	"zaazu/internal/types"
)

type (
	// ContentService is the CRUD surface for every catalog entity the admin
	// panel manages. Save handles both create (zero id) and update.
	ContentService interface {
		SaveVideo(ctx context.Context, video *types.Video) (*types.Video, error)
		GetVideo(ctx context.Context, id uuid.UUID) (*types.Video, error)
		ListVideos(ctx context.Context) ([]*types.Video, error)
		DeleteVideo(ctx context.Context, id uuid.UUID) error

		SaveGame(ctx context.Context, game *types.Game) (*types.Game, error)
		GetGame(ctx context.Context, id uuid.UUID) (*types.Game, error)
		ListGames(ctx context.Context) ([]*types.Game, error)
		DeleteGame(ctx context.Context, id uuid.UUID) error

		SaveActivity(ctx context.Context, activity *types.Activity) (*types.Activity, error)
		GetActivity(ctx context.Context, id uuid.UUID) (*types.Activity, error)
		ListActivities(ctx context.Context) ([]*types.Activity, error)
		DeleteActivity(ctx context.Context, id uuid.UUID) error

		SaveAchievement(ctx context.Context, achievement *types.Achievement) (*types.Achievement, error)
		GetAchievement(ctx context.Context, id uuid.UUID) (*types.Achievement, error)
		ListAchievements(ctx context.Context) ([]*types.Achievement, error)
		DeleteAchievement(ctx context.Context, id uuid.UUID) error

		SaveAvatar(ctx context.Context, avatar *types.Avatar) (*types.Avatar, error)
		GetAvatar(ctx context.Context, id uuid.UUID) (*types.Avatar, error)
		ListAvatars(ctx context.Context) ([]*types.Avatar, error)
		DeleteAvatar(ctx context.Context, id uuid.UUID) error

		SaveMission(ctx context.Context, mission *types.DailyMission) (*types.DailyMission, error)
		GetMission(ctx context.Context, id uuid.UUID) (*types.DailyMission, error)
		ListMissions(ctx context.Context) ([]*types.DailyMission, error)
		DeleteMission(ctx context.Context, id uuid.UUID) error

		SaveUser(ctx context.Context, user *types.User) (*types.User, error)
		GetUser(ctx context.Context, id uuid.UUID) (*types.User, error)
		ListUsers(ctx context.Context) ([]*types.User, error)
		DeleteUser(ctx context.Context, id uuid.UUID) error
	}

	contentService struct {
		videos       database.VideoRepository
		games        database.GameRepository
		activities   database.ActivityRepository
		achievements database.AchievementRepository
		avatars      database.AvatarRepository
		missions     database.DailyMissionRepository
		users        database.UserRepository
	}
)

func NewContentService(
	videos database.VideoRepository,
	games database.GameRepository,
	activities database.ActivityRepository,
	achievements database.AchievementRepository,
	avatars database.AvatarRepository,
	missions database.DailyMissionRepository,
	users database.UserRepository) ContentService {
	return &contentService{
		videos:       videos,
		games:        games,
		activities:   activities,
		achievements: achievements,
		avatars:      avatars,
		missions:     missions,
		users:        users,
	}
}

func (c *contentService) SaveVideo(ctx context.Context, video *types.Video) (*types.Video, error) {
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
		video.CreatedAt = time.Now()
	}
	if err := c.videos.Save(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to save video")
	}
	return video, nil
}

func (c *contentService) GetVideo(ctx context.Context, id uuid.UUID) (*types.Video, error) {
	return c.videos.FindByID(ctx, id)
}

func (c *contentService) ListVideos(ctx context.Context) ([]*types.Video, error) {
	return c.videos.FindAll(ctx)
}

func (c *contentService) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	return c.videos.Delete(ctx, id)
}

func (c *contentService) SaveGame(ctx context.Context, game *types.Game) (*types.Game, error) {
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
		game.CreatedAt = time.Now()
	}
	if err := c.games.Save(ctx, game); err != nil {
		return nil, errors.Wrap(err, "failed to save game")
	}
	return game, nil
}

func (c *contentService) GetGame(ctx context.Context, id uuid.UUID) (*types.Game, error) {
	return c.games.FindByID(ctx, id)
}

func (c *contentService) ListGames(ctx context.Context) ([]*types.Game, error) {
	return c.games.FindAll(ctx)
}

func (c *contentService) DeleteGame(ctx context.Context, id uuid.UUID) error {
	return c.games.Delete(ctx, id)
}

func (c *contentService) SaveActivity(ctx context.Context, activity *types.Activity) (*types.Activity, error) {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
		activity.CreatedAt = time.Now()
	}
	if err := c.activities.Save(ctx, activity); err != nil {
		return nil, errors.Wrap(err, "failed to save activity")
	}
	return activity, nil
}

func (c *contentService) GetActivity(ctx context.Context, id uuid.UUID) (*types.Activity, error) {
	return c.activities.FindByID(ctx, id)
}

func (c *contentService) ListActivities(ctx context.Context) ([]*types.Activity, error) {
	return c.activities.FindAll(ctx)
}

func (c *contentService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	return c.activities.Delete(ctx, id)
}

func (c *contentService) SaveAchievement(ctx context.Context, achievement *types.Achievement) (*types.Achievement, error) {
	if achievement.ID == uuid.Nil {
		achievement.ID = uuid.New()
		achievement.CreatedAt = time.Now()
	}
	if err := c.achievements.Save(ctx, achievement); err != nil {
		return nil, errors.Wrap(err, "failed to save achievement")
	}
	return achievement, nil
}

func (c *contentService) GetAchievement(ctx context.Context, id uuid.UUID) (*types.Achievement, error) {
	return c.achievements.FindByID(ctx, id)
}

func (c *contentService) ListAchievements(ctx context.Context) ([]*types.Achievement, error) {
	return c.achievements.FindAll(ctx)
}

func (c *contentService) DeleteAchievement(ctx context.Context, id uuid.UUID) error {
	return c.achievements.Delete(ctx, id)
}

func (c *contentService) SaveAvatar(ctx context.Context, avatar *types.Avatar) (*types.Avatar, error) {
	if avatar.ID == uuid.Nil {
		avatar.ID = uuid.New()
		avatar.CreatedAt = time.Now()
	}
	if err := c.avatars.Save(ctx, avatar); err != nil {
		return nil, errors.Wrap(err, "failed to save avatar")
	}
	return avatar, nil
}

func (c *contentService) GetAvatar(ctx context.Context, id uuid.UUID) (*types.Avatar, error) {
	return c.avatars.FindByID(ctx, id)
}

func (c *contentService) ListAvatars(ctx context.Context) ([]*types.Avatar, error) {
	return c.avatars.FindAll(ctx)
}

func (c *contentService) DeleteAvatar(ctx context.Context, id uuid.UUID) error {
	return c.avatars.Delete(ctx, id)
}

func (c *contentService) SaveMission(ctx context.Context, mission *types.DailyMission) (*types.DailyMission, error) {
	if mission.ID == uuid.Nil {
		mission.ID = uuid.New()
		mission.CreatedAt = time.Now()
	}
	if err := c.missions.Save(ctx, mission); err != nil {
		return nil, errors.Wrap(err, "failed to save mission")
	}
	return mission, nil
}

func (c *contentService) GetMission(ctx context.Context, id uuid.UUID) (*types.DailyMission, error) {
	return c.missions.FindByID(ctx, id)
}

func (c *contentService) ListMissions(ctx context.Context) ([]*types.DailyMission, error) {
	return c.missions.FindAll(ctx)
}

func (c *contentService) DeleteMission(ctx context.Context, id uuid.UUID) error {
	return c.missions.Delete(ctx, id)
}

func (c *contentService) SaveUser(ctx context.Context, user *types.User) (*types.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
		user.CreatedAt = time.Now()
	}
	if err := c.users.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user")
	}
	return user, nil
}

func (c *contentService) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	return c.users.FindByID(ctx, id)
}

func (c *contentService) ListUsers(ctx context.Context) ([]*types.User, error) {
	return c.users.FindAll(ctx)
}

func (c *contentService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return c.users.Delete(ctx, id)
}
