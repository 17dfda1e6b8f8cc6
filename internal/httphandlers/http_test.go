package httphandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zaazu/internal/service"
	"zaazu/internal/storage"
	"zaazu/internal/types"
)

type fakeEventService struct {
	recorded []types.CreateLogEventParams
}

func (f *fakeEventService) Record(_ context.Context, params types.CreateLogEventParams) (*types.LogEvent, error) {
	f.recorded = append(f.recorded, params)
	return &types.LogEvent{Action: params.Action, Details: params.Details, User: params.User}, nil
}

func (f *fakeEventService) Recent(_ context.Context, _ int) ([]*types.LogEvent, error) {
	return []*types.LogEvent{}, nil
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestUploadThumbnail(t *testing.T) {
	dir := t.TempDir()
	h := NewApiHandler(&fakeManager{}, nil, nil, service.NewThumbnailService(storage.NewFileStorage(dir)))

	body, contentType := multipartBody(t,
		map[string]string{"type": "jogos", "id": "abc123"},
		"file", "capa.PNG", []byte("fake image bytes"))

	req := httptest.NewRequest(http.MethodPost, "/v1/thumbnails", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadThumbnail(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp types.ThumbnailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "/thumbnails/jogos/abc123.png", resp.URL)

	stored, err := os.ReadFile(filepath.Join(dir, "thumbnails", "jogos", "abc123.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), stored)
}

func TestUploadThumbnailDefaultsExtension(t *testing.T) {
	dir := t.TempDir()
	h := NewApiHandler(&fakeManager{}, nil, nil, service.NewThumbnailService(storage.NewFileStorage(dir)))

	body, contentType := multipartBody(t,
		map[string]string{"type": "videos", "id": "v1"},
		"file", "thumbnail", []byte("x"))

	req := httptest.NewRequest(http.MethodPost, "/v1/thumbnails", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadThumbnail(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ThumbnailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/thumbnails/videos/v1.jpg", resp.URL)
}

func TestUploadThumbnailValidation(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]string
		fileField string
	}{
		{name: "invalid type", fields: map[string]string{"type": "filmes", "id": "a"}, fileField: "file"},
		{name: "missing id", fields: map[string]string{"type": "videos"}, fileField: "file"},
		{name: "missing file", fields: map[string]string{"type": "videos", "id": "a"}, fileField: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := NewApiHandler(&fakeManager{}, nil, nil, service.NewThumbnailService(storage.NewFileStorage(t.TempDir())))
			body, contentType := multipartBody(t, test.fields, test.fileField, "a.jpg", []byte("x"))

			req := httptest.NewRequest(http.MethodPost, "/v1/thumbnails", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			h.UploadThumbnail(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateLogEvent(t *testing.T) {
	events := &fakeEventService{}
	h := NewApiHandler(&fakeManager{}, nil, events, nil)

	raw, _ := json.Marshal(map[string]string{
		"action":  "video.update",
		"details": "changed title",
		"user":    "ana@zaazu.app",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/logs", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.CreateLogEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, events.recorded, 1)
	assert.Equal(t, "video.update", events.recorded[0].Action)
}

func TestCreateLogEventValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "missing action", body: map[string]string{"details": "d", "user": "u"}},
		{name: "missing details", body: map[string]string{"action": "a", "user": "u"}},
		{name: "missing user", body: map[string]string{"action": "a", "details": "d"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			events := &fakeEventService{}
			h := NewApiHandler(&fakeManager{}, nil, events, nil)

			raw, _ := json.Marshal(test.body)
			req := httptest.NewRequest(http.MethodPost, "/v1/logs", bytes.NewReader(raw))
			rec := httptest.NewRecorder()
			h.CreateLogEvent(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, events.recorded)
		})
	}
}

func TestDescribeLogsAPI(t *testing.T) {
	h := NewApiHandler(&fakeManager{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/logs", nil)
	rec := httptest.NewRecorder()
	h.DescribeLogsAPI(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "POST", body["method"])
}
