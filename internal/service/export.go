package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"zaazu/internal/types"
)

// SnapshotVersion stamps every exported payload so older archives remain
// recognizable after the schema moves on.
const SnapshotVersion = "1.0.0"

type (
	// ExportService assembles the full application dataset into a backup
	// payload. The engine injects exportedAt at upload time.
	ExportService interface {
		Snapshot(ctx context.Context, exportedBy string) (map[string]interface{}, error)
	}

	exportService struct {
		content ContentService
	}
)

func NewExportService(content ContentService) ExportService {
	return &exportService{content: content}
}

func (e *exportService) Snapshot(ctx context.Context, exportedBy string) (map[string]interface{}, error) {
	var (
		videos       []*types.Video
		games        []*types.Game
		activities   []*types.Activity
		achievements []*types.Achievement
		avatars      []*types.Avatar
		missions     []*types.DailyMission
		users        []*types.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		videos, err = e.content.ListVideos(gctx)
		return
	})
	g.Go(func() (err error) {
		games, err = e.content.ListGames(gctx)
		return
	})
	g.Go(func() (err error) {
		activities, err = e.content.ListActivities(gctx)
		return
	})
	g.Go(func() (err error) {
		achievements, err = e.content.ListAchievements(gctx)
		return
	})
	g.Go(func() (err error) {
		avatars, err = e.content.ListAvatars(gctx)
		return
	})
	g.Go(func() (err error) {
		missions, err = e.content.ListMissions(gctx)
		return
	})
	g.Go(func() (err error) {
		users, err = e.content.ListUsers(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"videos":        videos,
		"games":         games,
		"activities":    activities,
		"achievements":  achievements,
		"avatars":       avatars,
		"dailyMissions": missions,
		"users":         users,
		"exportedBy":    exportedBy,
		"version":       SnapshotVersion,
	}, nil
}
