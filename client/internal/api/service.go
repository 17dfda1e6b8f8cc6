package api

import (
	"context"
	"net/http"

	"zaazu/client/internal/config"
)

type (
	// Service wraps the admin API operations the CLI exposes. The Drive
	// credentials from the local config file travel with every backup
	// request; the server keeps nothing between calls.
	Service interface {
		ListBackups(ctx context.Context) ([]BackupFile, error)
		ExportBackup(ctx context.Context, user string) (*UploadResponse, error)
		CleanupBackups(ctx context.Context, keepCount int) (*CleanupResult, error)
		DownloadBackup(ctx context.Context, fileID string) (map[string]interface{}, error)
		DeleteBackup(ctx context.Context, fileID string) error
		Status(ctx context.Context) (*Status, error)
	}

	service struct {
		client Client
		drive  DriveConfig
	}
)

func NewService(client Client, cfg config.Config) Service {
	return &service{
		client: client,
		drive: DriveConfig{
			ClientID:     cfg.Drive.ClientID,
			ClientSecret: cfg.Drive.ClientSecret,
			RedirectURI:  cfg.Drive.RedirectURI,
			RefreshToken: cfg.Drive.RefreshToken,
		},
	}
}

func (s *service) ListBackups(ctx context.Context) ([]BackupFile, error) {
	files := make([]BackupFile, 0)
	err := s.client.Do(ctx, Params{
		Method: http.MethodPost,
		Path:   "backup",
		Body: map[string]interface{}{
			"action": "list",
			"config": s.drive,
		},
		Response: &files,
	})
	return files, err
}

func (s *service) ExportBackup(ctx context.Context, user string) (*UploadResponse, error) {
	resp := &UploadResponse{}
	err := s.client.Do(ctx, Params{
		Method: http.MethodPost,
		Path:   "backup/export",
		Body: map[string]interface{}{
			"config": s.drive,
			"user":   user,
		},
		Response: resp,
	})
	return resp, err
}

func (s *service) CleanupBackups(ctx context.Context, keepCount int) (*CleanupResult, error) {
	resp := &CleanupResult{}
	err := s.client.Do(ctx, Params{
		Method: http.MethodPost,
		Path:   "backup",
		Body: map[string]interface{}{
			"action":    "cleanup",
			"config":    s.drive,
			"keepCount": keepCount,
		},
		Response: resp,
	})
	return resp, err
}

func (s *service) DownloadBackup(ctx context.Context, fileID string) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	err := s.client.Do(ctx, Params{
		Method: http.MethodPost,
		Path:   "backup",
		Body: map[string]interface{}{
			"action": "download",
			"config": s.drive,
			"fileId": fileID,
		},
		Response: &payload,
	})
	return payload, err
}

func (s *service) DeleteBackup(ctx context.Context, fileID string) error {
	return s.client.Do(ctx, Params{
		Method: http.MethodPost,
		Path:   "backup",
		Body: map[string]interface{}{
			"action": "delete",
			"config": s.drive,
			"fileId": fileID,
		},
	})
}

func (s *service) Status(ctx context.Context) (*Status, error) {
	var resp struct {
		Data Status `json:"data"`
	}
	err := s.client.Do(ctx, Params{
		Method:   http.MethodGet,
		Path:     "status",
		Response: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
