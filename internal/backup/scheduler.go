package backup

import (
	"context"

	"github.com/go-co-op/gocron/v2"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"zaazu/internal/config"
	"zaazu/internal/integrations/drive"
	"zaazu/logger"
)

// CleanupScheduler runs retention pruning on a cron schedule using the
// server-side Drive credentials. Interactive requests are unaffected; they
// always carry their own credentials.
type CleanupScheduler struct {
	cfg       config.Config
	scheduler gocron.Scheduler
}

func NewCleanupScheduler(cfg config.Config) (*CleanupScheduler, error) {
	if _, err := cron.ParseStandard(cfg.CleanupCron); err != nil {
		return nil, errors.Wrap(err, "invalid cleanup cron expression")
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &CleanupScheduler{cfg: cfg, scheduler: scheduler}, nil
}

func (c *CleanupScheduler) Start(ctx context.Context) error {
	if !c.cfg.HasScheduledCleanup() {
		logger.Info("scheduled backup cleanup disabled, no drive credentials configured")
		return nil
	}

	job, err := c.scheduler.NewJob(
		gocron.CronJob(c.cfg.CleanupCron, false),
		gocron.NewTask(c.run, ctx),
		gocron.WithSingletonMode(gocron.LimitModeWait))
	if err != nil {
		return err
	}

	logger.Info("backup cleanup job queued",
		zap.String("name", job.Name()),
		zap.String("cron", c.cfg.CleanupCron),
		zap.Int("keepCount", c.cfg.CleanupKeepCount))
	c.scheduler.Start()
	return nil
}

func (c *CleanupScheduler) Stop() error {
	return c.scheduler.Shutdown()
}

func (c *CleanupScheduler) run(ctx context.Context) {
	client, err := drive.NewClient(ctx, c.cfg.Drive)
	if err != nil {
		logger.Error("scheduled cleanup could not authorize", zap.Error(err))
		return
	}

	result, err := NewEngine(client).Cleanup(ctx, c.cfg.CleanupKeepCount)
	if err != nil {
		logger.Error("scheduled cleanup returned error", zap.Error(err))
		return
	}
	logger.Info("scheduled cleanup completed",
		zap.Int("deleted", result.Deleted),
		zap.Int("failed", len(result.Failures)))
}
