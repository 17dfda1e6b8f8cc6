package api

import "time"

type (
	DriveConfig struct {
		ClientID     string `json:"clientId"`
		ClientSecret string `json:"clientSecret"`
		RedirectURI  string `json:"redirectUri"`
		RefreshToken string `json:"refreshToken"`
	}

	BackupFile struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Size        int64     `json:"size"`
		CreatedTime time.Time `json:"createdTime"`
		Description string    `json:"description"`
	}

	UploadResponse struct {
		Success  bool   `json:"success"`
		FileID   string `json:"fileId"`
		FileName string `json:"fileName"`
		Size     string `json:"size"`
		Message  string `json:"message"`
	}

	CleanupFailure struct {
		FileID string `json:"fileId"`
		Name   string `json:"name"`
		Reason string `json:"reason"`
	}

	CleanupResult struct {
		Deleted  int              `json:"deletedCount"`
		Failures []CleanupFailure `json:"failures,omitempty"`
	}

	Status struct {
		CPUPercent    float64 `json:"cpuPercent"`
		MemoryUsed    uint64  `json:"memoryUsed"`
		MemoryTotal   uint64  `json:"memoryTotal"`
		DiskUsed      uint64  `json:"diskUsed"`
		DiskTotal     uint64  `json:"diskTotal"`
		UptimeSeconds uint64  `json:"uptimeSeconds"`
	}
)
