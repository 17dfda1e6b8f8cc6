package types

import "encoding/json"

type (
	BackupAction string

	// BackupRequest is the body of the backup action dispatcher endpoint.
	// Config is required for every action; the other fields are per-action.
	BackupRequest struct {
		Action    BackupAction    `json:"action"`
		Data      json.RawMessage `json:"data,omitempty"`
		Config    *DriveConfig    `json:"config"`
		FileID    string          `json:"fileId,omitempty"`
		AuthCode  string          `json:"authCode,omitempty"`
		KeepCount *int            `json:"keepCount,omitempty"`
		User      string          `json:"user,omitempty"`
	}

	UploadResponse struct {
		Success  bool   `json:"success"`
		FileID   string `json:"fileId"`
		FileName string `json:"fileName"`
		Size     string `json:"size"`
		Message  string `json:"message"`
	}

	ThumbnailResponse struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}

	StatusResponse struct {
		CPUPercent    float64 `json:"cpuPercent"`
		MemoryUsed    uint64  `json:"memoryUsed"`
		MemoryTotal   uint64  `json:"memoryTotal"`
		DiskUsed      uint64  `json:"diskUsed"`
		DiskTotal     uint64  `json:"diskTotal"`
		UptimeSeconds uint64  `json:"uptimeSeconds"`
	}
)

const (
	BackupActionAuth     BackupAction = "auth"
	BackupActionUpload   BackupAction = "upload"
	BackupActionList     BackupAction = "list"
	BackupActionDownload BackupAction = "download"
	BackupActionDelete   BackupAction = "delete"
	BackupActionCleanup  BackupAction = "cleanup"
)

func (a BackupAction) Valid() bool {
	switch a {
	case BackupActionAuth, BackupActionUpload, BackupActionList,
		BackupActionDownload, BackupActionDelete, BackupActionCleanup:
		return true
	}
	return false
}
