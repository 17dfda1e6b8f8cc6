package httphandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"zaazu/internal/types"
	"zaazu/logger"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger("development"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeManager records how often the remote-facing operations run so tests
// can assert that validation failures never reach Drive.
type fakeManager struct {
	remoteCalls   int
	lastKeepCount int
	uploadResult  *types.UploadResult
	listResult    []*types.BackupFile
	cleanupResult *types.CleanupResult
	err           error
}

func (f *fakeManager) ValidateToken(token string) error { return nil }

func (f *fakeManager) ExchangeAuthCode(_ context.Context, _ types.DriveConfig, _ string) (*oauth2.Token, error) {
	f.remoteCalls++
	return &oauth2.Token{AccessToken: "at", RefreshToken: "rt"}, f.err
}

func (f *fakeManager) UploadBackup(_ context.Context, _ types.DriveConfig, _ map[string]interface{}) (*types.UploadResult, error) {
	f.remoteCalls++
	return f.uploadResult, f.err
}

func (f *fakeManager) ListBackups(_ context.Context, _ types.DriveConfig, _ int) ([]*types.BackupFile, error) {
	f.remoteCalls++
	return f.listResult, f.err
}

func (f *fakeManager) DownloadBackup(_ context.Context, _ types.DriveConfig, _ string) (map[string]interface{}, error) {
	f.remoteCalls++
	return map[string]interface{}{"foo": "bar"}, f.err
}

func (f *fakeManager) DeleteBackup(_ context.Context, _ types.DriveConfig, _ string) error {
	f.remoteCalls++
	return f.err
}

func (f *fakeManager) CleanupBackups(_ context.Context, _ types.DriveConfig, keepCount int) (*types.CleanupResult, error) {
	f.remoteCalls++
	f.lastKeepCount = keepCount
	return f.cleanupResult, f.err
}

func (f *fakeManager) ExportBackup(_ context.Context, _ types.DriveConfig, _ string) (*types.UploadResult, error) {
	f.remoteCalls++
	return f.uploadResult, f.err
}

func (f *fakeManager) Status(_ context.Context) (*types.StatusResponse, error) {
	return &types.StatusResponse{}, nil
}

func validConfig() map[string]interface{} {
	return map[string]interface{}{
		"clientId":     "cid",
		"clientSecret": "secret",
		"redirectUri":  "http://localhost/callback",
		"refreshToken": "rt",
	}
}

func dispatch(t *testing.T, mn *fakeManager, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	h := NewApiHandler(mn, nil, nil, nil)
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/backup", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.BackupDispatch(rec, req)
	return rec
}

func TestBackupDispatchValidation(t *testing.T) {
	tests := []struct {
		name          string
		body          map[string]interface{}
		expectedError string
	}{
		{
			name:          "unknown action",
			body:          map[string]interface{}{"action": "restore", "config": validConfig()},
			expectedError: "unknown action",
		},
		{
			name:          "missing config",
			body:          map[string]interface{}{"action": "list"},
			expectedError: "config is required",
		},
		{
			name: "incomplete config",
			body: map[string]interface{}{
				"action": "list",
				"config": map[string]interface{}{"clientId": "cid"},
			},
			expectedError: "config is missing required fields",
		},
		{
			name:          "upload without data",
			body:          map[string]interface{}{"action": "upload", "config": validConfig()},
			expectedError: "data is required for upload",
		},
		{
			name:          "download without fileId",
			body:          map[string]interface{}{"action": "download", "config": validConfig()},
			expectedError: "fileId is required for download",
		},
		{
			name:          "delete without fileId",
			body:          map[string]interface{}{"action": "delete", "config": validConfig()},
			expectedError: "fileId is required for delete",
		},
		{
			name:          "auth without authCode",
			body:          map[string]interface{}{"action": "auth", "config": validConfig()},
			expectedError: "authCode is required for auth",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mn := &fakeManager{}
			rec := dispatch(t, mn, test.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 0, mn.remoteCalls, "validation failures must not reach the remote API")

			var body dispatchErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Error, test.expectedError)
		})
	}
}

func TestBackupDispatchUpload(t *testing.T) {
	mn := &fakeManager{
		uploadResult: &types.UploadResult{
			FileID:    "file-1",
			FileName:  "zaazu-backup-2026-08-28T10-15-30-123Z.json",
			SizeLabel: "0.12 KB",
		},
	}
	rec := dispatch(t, mn, map[string]interface{}{
		"action": "upload",
		"config": validConfig(),
		"data":   map[string]interface{}{"foo": "bar"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, mn.remoteCalls)

	var resp types.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.FileID)
	assert.Regexp(t, `^zaazu-backup-.*\.json$`, resp.FileName)
	assert.Regexp(t, `^\d+\.\d{2} KB$`, resp.Size)
	assert.Contains(t, resp.Message, resp.FileName)
}

func TestBackupDispatchList(t *testing.T) {
	mn := &fakeManager{listResult: []*types.BackupFile{{ID: "a", Name: "zaazu-backup-x.json"}}}
	rec := dispatch(t, mn, map[string]interface{}{"action": "list", "config": validConfig()})

	require.Equal(t, http.StatusOK, rec.Code)

	var files []*types.BackupFile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "a", files[0].ID)
}

func TestBackupDispatchCleanup(t *testing.T) {
	mn := &fakeManager{cleanupResult: &types.CleanupResult{Deleted: 3}}
	rec := dispatch(t, mn, map[string]interface{}{
		"action":    "cleanup",
		"config":    validConfig(),
		"keepCount": 5,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, mn.lastKeepCount)

	var result types.CleanupResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Deleted)
}

func TestBackupDispatchDelete(t *testing.T) {
	mn := &fakeManager{}
	rec := dispatch(t, mn, map[string]interface{}{
		"action": "delete",
		"config": validConfig(),
		"fileId": "file-9",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
}

func TestBackupDispatchUpstreamFailure(t *testing.T) {
	mn := &fakeManager{err: assert.AnError}
	rec := dispatch(t, mn, map[string]interface{}{"action": "list", "config": validConfig()})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body dispatchErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.NotEmpty(t, body.Details)
}
