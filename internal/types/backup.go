package types

import "time"

type (
	// DriveConfig is supplied by the caller on every backup request. It is
	// never cached between requests; each request rebuilds its own
	// authorized client from these values.
	DriveConfig struct {
		ClientID     string `json:"clientId" validate:"required"`
		ClientSecret string `json:"clientSecret" validate:"required"`
		RedirectURI  string `json:"redirectUri" validate:"required"`
		RefreshToken string `json:"refreshToken"`
	}

	// BackupFile is the remote-storage identity of one backup archive.
	BackupFile struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Size        int64     `json:"size"`
		CreatedTime time.Time `json:"createdTime"`
		Description string    `json:"description"`
	}

	UploadResult struct {
		FileID    string `json:"fileId"`
		FileName  string `json:"fileName"`
		SizeLabel string `json:"size"`
	}

	CleanupFailure struct {
		FileID string `json:"fileId"`
		Name   string `json:"name"`
		Reason string `json:"reason"`
	}

	// CleanupResult reports a best-effort batch delete: Deleted counts only
	// the files actually removed, Failures carries the ones skipped.
	CleanupResult struct {
		Deleted  int              `json:"deletedCount"`
		Failures []CleanupFailure `json:"failures,omitempty"`
	}
)
