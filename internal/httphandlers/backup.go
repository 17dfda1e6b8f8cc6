package httphandlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"zaazu/internal/types"
	"zaazu/logger"
)

// BackupDispatch is the single backup endpoint: a JSON body with an
// "action" field selects the operation. Validation runs before any remote
// call, so a malformed request never touches Drive.
func (h *ApiHandler) BackupDispatch(w http.ResponseWriter, r *http.Request) {
	var req types.BackupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dispatchBadRequest(w, "invalid request body")
		return
	}

	if !req.Action.Valid() {
		dispatchBadRequest(w, fmt.Sprintf("unknown action: %q", req.Action))
		return
	}
	if req.Config == nil {
		dispatchBadRequest(w, "config is required")
		return
	}
	if err := h.validate.Struct(req.Config); err != nil {
		dispatchBadRequest(w, "config is missing required fields")
		return
	}

	ctx := r.Context()
	switch req.Action {
	case types.BackupActionAuth:
		if req.AuthCode == "" {
			dispatchBadRequest(w, "authCode is required for auth")
			return
		}
		token, err := h.mn.ExchangeAuthCode(ctx, *req.Config, req.AuthCode)
		if err != nil {
			dispatchServerError(w, "authorization failed", err)
			return
		}
		writeJSON(w, http.StatusOK, token)

	case types.BackupActionUpload:
		if len(req.Data) == 0 {
			dispatchBadRequest(w, "data is required for upload")
			return
		}
		payload := map[string]interface{}{}
		if err := json.Unmarshal(req.Data, &payload); err != nil {
			dispatchBadRequest(w, "data must be a JSON object")
			return
		}
		result, err := h.mn.UploadBackup(ctx, *req.Config, payload)
		if err != nil {
			dispatchServerError(w, "backup upload failed", err)
			return
		}
		writeJSON(w, http.StatusOK, uploadResponse(result))

	case types.BackupActionList:
		files, err := h.mn.ListBackups(ctx, *req.Config, 0)
		if err != nil {
			dispatchServerError(w, "backup listing failed", err)
			return
		}
		writeJSON(w, http.StatusOK, files)

	case types.BackupActionDownload:
		if req.FileID == "" {
			dispatchBadRequest(w, "fileId is required for download")
			return
		}
		payload, err := h.mn.DownloadBackup(ctx, *req.Config, req.FileID)
		if err != nil {
			dispatchServerError(w, "backup download failed", err)
			return
		}
		writeJSON(w, http.StatusOK, payload)

	case types.BackupActionDelete:
		if req.FileID == "" {
			dispatchBadRequest(w, "fileId is required for delete")
			return
		}
		if err := h.mn.DeleteBackup(ctx, *req.Config, req.FileID); err != nil {
			dispatchServerError(w, "backup delete failed", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	case types.BackupActionCleanup:
		keepCount := 0
		if req.KeepCount != nil {
			keepCount = *req.KeepCount
		}
		result, err := h.mn.CleanupBackups(ctx, *req.Config, keepCount)
		if err != nil {
			dispatchServerError(w, "backup cleanup failed", err)
			return
		}
		logger.Info("backup cleanup requested",
			zap.Int("deleted", result.Deleted),
			zap.Int("failed", len(result.Failures)))
		writeJSON(w, http.StatusOK, result)
	}
}

// ExportBackup assembles the full dataset snapshot server-side and uploads
// it as a new archive.
func (h *ApiHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Config *types.DriveConfig `json:"config"`
		User   string             `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dispatchBadRequest(w, "invalid request body")
		return
	}
	if req.Config == nil {
		dispatchBadRequest(w, "config is required")
		return
	}
	if err := h.validate.Struct(req.Config); err != nil {
		dispatchBadRequest(w, "config is missing required fields")
		return
	}

	result, err := h.mn.ExportBackup(r.Context(), *req.Config, req.User)
	if err != nil {
		dispatchServerError(w, "export failed", err)
		return
	}
	writeJSON(w, http.StatusOK, uploadResponse(result))
}

func uploadResponse(result *types.UploadResult) types.UploadResponse {
	return types.UploadResponse{
		Success:  true,
		FileID:   result.FileID,
		FileName: result.FileName,
		Size:     result.SizeLabel,
		Message:  fmt.Sprintf("Backup %s criado com sucesso", result.FileName),
	}
}
