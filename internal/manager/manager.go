package manager

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/oauth2"

	"zaazu/internal/backup"
	"zaazu/internal/config"
	"zaazu/internal/integrations/drive"
	"zaazu/internal/service"
	"zaazu/internal/types"
)

type (
	// Manager is the orchestration surface the HTTP layer talks to. Backup
	// operations build a fresh engine from the caller-supplied credentials
	// on every call; no authorization state is shared between requests.
	Manager interface {
		ValidateToken(token string) error
		ExchangeAuthCode(ctx context.Context, cfg types.DriveConfig, code string) (*oauth2.Token, error)
		UploadBackup(ctx context.Context, cfg types.DriveConfig, payload map[string]interface{}) (*types.UploadResult, error)
		ListBackups(ctx context.Context, cfg types.DriveConfig, limit int) ([]*types.BackupFile, error)
		DownloadBackup(ctx context.Context, cfg types.DriveConfig, fileID string) (map[string]interface{}, error)
		DeleteBackup(ctx context.Context, cfg types.DriveConfig, fileID string) error
		CleanupBackups(ctx context.Context, cfg types.DriveConfig, keepCount int) (*types.CleanupResult, error)
		ExportBackup(ctx context.Context, cfg types.DriveConfig, exportedBy string) (*types.UploadResult, error)
		Status(ctx context.Context) (*types.StatusResponse, error)
	}

	// EngineFactory builds a backup engine for one request. Swapped for a
	// fake in handler tests.
	EngineFactory func(ctx context.Context, cfg types.DriveConfig) (*backup.Engine, error)

	manager struct {
		cfg       config.Config
		export    service.ExportService
		newEngine EngineFactory
	}
)

func New(cfg config.Config, export service.ExportService) Manager {
	return NewWithEngineFactory(cfg, export, func(ctx context.Context, dc types.DriveConfig) (*backup.Engine, error) {
		client, err := drive.NewClient(ctx, dc)
		if err != nil {
			return nil, err
		}
		return backup.NewEngine(client), nil
	})
}

func NewWithEngineFactory(cfg config.Config, export service.ExportService, factory EngineFactory) Manager {
	return &manager{cfg: cfg, export: export, newEngine: factory}
}

func (m *manager) ValidateToken(token string) error {
	if m.cfg.AccessKey == "" {
		return nil
	}
	if token != m.cfg.AccessKey {
		return errors.New("access denied")
	}
	return nil
}

func (m *manager) ExchangeAuthCode(ctx context.Context, cfg types.DriveConfig, code string) (*oauth2.Token, error) {
	return drive.ExchangeAuthCode(ctx, cfg, code)
}

func (m *manager) UploadBackup(ctx context.Context, cfg types.DriveConfig, payload map[string]interface{}) (*types.UploadResult, error) {
	engine, err := m.newEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return engine.Upload(ctx, payload)
}

func (m *manager) ListBackups(ctx context.Context, cfg types.DriveConfig, limit int) ([]*types.BackupFile, error) {
	engine, err := m.newEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return engine.List(ctx, limit)
}

func (m *manager) DownloadBackup(ctx context.Context, cfg types.DriveConfig, fileID string) (map[string]interface{}, error) {
	engine, err := m.newEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return engine.Download(ctx, fileID)
}

func (m *manager) DeleteBackup(ctx context.Context, cfg types.DriveConfig, fileID string) error {
	engine, err := m.newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	return engine.Delete(ctx, fileID)
}

func (m *manager) CleanupBackups(ctx context.Context, cfg types.DriveConfig, keepCount int) (*types.CleanupResult, error) {
	engine, err := m.newEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return engine.Cleanup(ctx, keepCount)
}

func (m *manager) ExportBackup(ctx context.Context, cfg types.DriveConfig, exportedBy string) (*types.UploadResult, error) {
	engine, err := m.newEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}

	payload, err := m.export.Snapshot(ctx, exportedBy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to assemble snapshot")
	}
	return engine.Upload(ctx, payload)
}

func (m *manager) Status(ctx context.Context) (*types.StatusResponse, error) {
	resp := &types.StatusResponse{}

	if percents, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(percents) > 0 {
		resp.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		resp.MemoryUsed = vm.Used
		resp.MemoryTotal = vm.Total
	}
	if du, err := disk.UsageWithContext(ctx, "/"); err == nil {
		resp.DiskUsed = du.Used
		resp.DiskTotal = du.Total
	}
	if uptime, err := host.UptimeWithContext(ctx); err == nil {
		resp.UptimeSeconds = uptime
	}
	return resp, nil
}
