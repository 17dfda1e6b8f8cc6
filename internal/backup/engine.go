package backup

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"zaazu/internal/misc"
	"zaazu/internal/types"
	"zaazu/logger"
)

const (
	// ContainerName is the single well-known folder all archives live in.
	ContainerName = "Zaazu_Backups"

	DefaultKeepCount = 10

	listPageSize    = 20
	cleanupScanSize = 100
)

// Store is the remote-storage surface the engine drives. The Drive client
// implements it; tests substitute an in-memory fake.
type Store interface {
	FindFolder(ctx context.Context, name string) (string, error)
	CreateFolder(ctx context.Context, name, parent string) (string, error)
	CreateFile(ctx context.Context, folderID, name, description string, content []byte) (*types.BackupFile, error)
	ListFiles(ctx context.Context, folderID, nameContains string, pageSize int64) ([]*types.BackupFile, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
	DeleteFile(ctx context.Context, fileID string) error
}

// Engine runs the backup workflow against a Store. It holds no state
// between operations; construct one per request.
type Engine struct {
	store Store
	now   func() time.Time
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// EnsureContainer finds the archive folder, creating it under root when it
// does not exist yet. The lookup-then-create pair is not atomic: two
// concurrent callers can both create a folder. When duplicates exist the
// first match is treated as canonical.
func (e *Engine) EnsureContainer(ctx context.Context) (string, error) {
	id, err := e.store.FindFolder(ctx, ContainerName)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id, err = e.store.CreateFolder(ctx, ContainerName, "root")
	if err != nil {
		return "", err
	}
	logger.Info("created backup container", zap.String("id", id))
	return id, nil
}

// Upload serializes the payload with an injected exportedAt stamp and
// writes it as a new archive in the container.
func (e *Engine) Upload(ctx context.Context, payload map[string]interface{}) (*types.UploadResult, error) {
	folderID, err := e.EnsureContainer(ctx)
	if err != nil {
		return nil, err
	}

	now := e.now().UTC()
	body := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["exportedAt"] = now.Format("2006-01-02T15:04:05.000Z")

	content, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize backup payload")
	}

	name := misc.BackupFileName(now)
	description := "Zaazu backup de " + now.Format("02/01/2006 15:04:05")
	file, err := e.store.CreateFile(ctx, folderID, name, description, content)
	if err != nil {
		return nil, err
	}

	logger.Info("backup uploaded",
		zap.String("fileId", file.ID),
		zap.String("fileName", name),
		zap.Int("bytes", len(content)))
	return &types.UploadResult{
		FileID:    file.ID,
		FileName:  name,
		SizeLabel: misc.SizeLabel(len(content)),
	}, nil
}

// List returns archives newest-first. A missing container means there has
// never been a backup: that is an empty result, not an error, and listing
// never creates the container as a side effect.
func (e *Engine) List(ctx context.Context, limit int) ([]*types.BackupFile, error) {
	if limit <= 0 {
		limit = listPageSize
	}

	folderID, err := e.store.FindFolder(ctx, ContainerName)
	if err != nil {
		return nil, err
	}
	if folderID == "" {
		return []*types.BackupFile{}, nil
	}
	return e.store.ListFiles(ctx, folderID, misc.BackupFilePrefix(), int64(limit))
}

// Download fetches an archive and parses it back into a JSON object.
func (e *Engine) Download(ctx context.Context, fileID string) (map[string]interface{}, error) {
	content, err := e.store.DownloadFile(ctx, fileID)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{}
	if err := json.Unmarshal(content, &payload); err != nil {
		return nil, errors.Wrap(err, "backup content is not a valid JSON object")
	}
	return payload, nil
}

func (e *Engine) Delete(ctx context.Context, fileID string) error {
	return e.store.DeleteFile(ctx, fileID)
}

// Cleanup keeps the keepCount most recent archives and deletes the rest.
// Deletes are best-effort: a failure on one file is recorded and the loop
// moves on, so an overlapping cleanup or an already-deleted id never
// blocks the remaining deletions. Deleted counts successes only.
func (e *Engine) Cleanup(ctx context.Context, keepCount int) (*types.CleanupResult, error) {
	if keepCount <= 0 {
		keepCount = DefaultKeepCount
	}

	files, err := e.List(ctx, cleanupScanSize)
	if err != nil {
		return nil, err
	}

	result := &types.CleanupResult{}
	if len(files) <= keepCount {
		return result, nil
	}

	for _, stale := range files[keepCount:] {
		if err := e.store.DeleteFile(ctx, stale.ID); err != nil {
			logger.Warn("failed to delete stale backup",
				zap.String("fileId", stale.ID),
				zap.String("name", stale.Name),
				zap.Error(err))
			result.Failures = append(result.Failures, types.CleanupFailure{
				FileID: stale.ID,
				Name:   stale.Name,
				Reason: err.Error(),
			})
			continue
		}
		result.Deleted++
	}

	logger.Info("backup cleanup finished",
		zap.Int("deleted", result.Deleted),
		zap.Int("failed", len(result.Failures)),
		zap.Int("kept", keepCount))
	return result, nil
}
