package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zaazu/internal/types"
	"zaazu/logger"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger("development"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeStore struct {
	folders     map[string]string
	files       []*types.BackupFile
	contents    map[string][]byte
	deleteErrs  map[string]error
	clock       time.Time
	nextID      int
	folderFinds int
	folderMakes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		folders:    map[string]string{},
		contents:   map[string][]byte{},
		deleteErrs: map[string]error{},
		clock:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) FindFolder(_ context.Context, name string) (string, error) {
	f.folderFinds++
	return f.folders[name], nil
}

func (f *fakeStore) CreateFolder(_ context.Context, name, _ string) (string, error) {
	f.folderMakes++
	id := f.id("folder")
	f.folders[name] = id
	return id, nil
}

func (f *fakeStore) CreateFile(_ context.Context, _, name, description string, content []byte) (*types.BackupFile, error) {
	f.clock = f.clock.Add(time.Minute)
	file := &types.BackupFile{
		ID:          f.id("file"),
		Name:        name,
		Size:        int64(len(content)),
		CreatedTime: f.clock,
		Description: description,
	}
	f.files = append(f.files, file)
	f.contents[file.ID] = content
	return file, nil
}

func (f *fakeStore) ListFiles(_ context.Context, _, nameContains string, pageSize int64) ([]*types.BackupFile, error) {
	matched := lo.Filter(f.files, func(file *types.BackupFile, _ int) bool {
		return strings.Contains(file.Name, nameContains)
	})
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedTime.After(matched[j].CreatedTime)
	})
	if int64(len(matched)) > pageSize {
		matched = matched[:pageSize]
	}
	return matched, nil
}

func (f *fakeStore) DownloadFile(_ context.Context, fileID string) ([]byte, error) {
	content, found := f.contents[fileID]
	if !found {
		return nil, errors.New("file not found")
	}
	return content, nil
}

func (f *fakeStore) DeleteFile(_ context.Context, fileID string) error {
	if err := f.deleteErrs[fileID]; err != nil {
		return err
	}
	f.files = lo.Filter(f.files, func(file *types.BackupFile, _ int) bool {
		return file.ID != fileID
	})
	delete(f.contents, fileID)
	return nil
}

func (f *fakeStore) id(kind string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", kind, f.nextID)
}

func seedBackups(t *testing.T, engine *Engine, count int) {
	t.Helper()
	base := time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		engine.now = func() time.Time { return ts }
		_, err := engine.Upload(context.Background(), map[string]interface{}{"seq": i})
		require.NoError(t, err)
	}
}

func TestEnsureContainerIdempotent(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	first, err := engine.EnsureContainer(context.Background())
	require.NoError(t, err)
	second, err := engine.EnsureContainer(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.folderMakes)
}

func TestListWithoutContainer(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	files, err := engine.List(context.Background(), 0)
	require.NoError(t, err)

	assert.Empty(t, files)
	assert.Equal(t, 0, store.folderMakes, "listing alone must not create the container")
}

func TestUploadThenList(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)
	engine.now = func() time.Time {
		return time.Date(2026, 8, 28, 10, 15, 30, 123000000, time.UTC)
	}

	result, err := engine.Upload(context.Background(), map[string]interface{}{"foo": "bar"})
	require.NoError(t, err)

	assert.Equal(t, "zaazu-backup-2026-08-28T10-15-30-123Z.json", result.FileName)
	assert.NotEmpty(t, result.FileID)
	assert.Regexp(t, `^\d+\.\d{2} KB$`, result.SizeLabel)

	files, err := engine.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, result.FileName, files[0].Name)

	payload, err := engine.Download(context.Background(), result.FileID)
	require.NoError(t, err)
	assert.Equal(t, "bar", payload["foo"])
	assert.Equal(t, "2026-08-28T10:15:30.123Z", payload["exportedAt"])
}

func TestUploadSerializesIndented(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	result, err := engine.Upload(context.Background(), map[string]interface{}{"foo": "bar"})
	require.NoError(t, err)

	content := store.contents[result.FileID]
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Contains(t, string(content), "\n  \"foo\": \"bar\"")
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name            string
		existing        int
		keepCount       int
		expectedDeleted int
		expectedKept    int
	}{
		{name: "more than keep count", existing: 15, keepCount: 10, expectedDeleted: 5, expectedKept: 10},
		{name: "fewer than keep count", existing: 5, keepCount: 10, expectedDeleted: 0, expectedKept: 5},
		{name: "exactly keep count", existing: 10, keepCount: 10, expectedDeleted: 0, expectedKept: 10},
		{name: "zero falls back to default", existing: 12, keepCount: 0, expectedDeleted: 2, expectedKept: 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := newFakeStore()
			engine := NewEngine(store)
			seedBackups(t, engine, test.existing)

			result, err := engine.Cleanup(context.Background(), test.keepCount)
			require.NoError(t, err)

			assert.Equal(t, test.expectedDeleted, result.Deleted)
			assert.Empty(t, result.Failures)
			assert.Len(t, store.files, test.expectedKept)
		})
	}
}

func TestCleanupRetainsNewest(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)
	seedBackups(t, engine, 6)

	before, err := engine.List(context.Background(), 100)
	require.NoError(t, err)
	newest := lo.Map(before[:3], func(f *types.BackupFile, _ int) string { return f.ID })

	result, err := engine.Cleanup(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Deleted)

	after, err := engine.List(context.Background(), 100)
	require.NoError(t, err)
	remaining := lo.Map(after, func(f *types.BackupFile, _ int) string { return f.ID })
	assert.Equal(t, newest, remaining)
}

func TestCleanupToleratesPartialFailure(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)
	seedBackups(t, engine, 8)

	all, err := engine.List(context.Background(), 100)
	require.NoError(t, err)
	oldest := all[len(all)-1]
	store.deleteErrs[oldest.ID] = errors.New("permission denied")

	result, err := engine.Cleanup(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Deleted)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, oldest.ID, result.Failures[0].FileID)
	assert.Equal(t, "permission denied", result.Failures[0].Reason)
}

func TestDownloadRejectsInvalidJSON(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)
	store.contents["broken"] = []byte("not json")
	store.files = append(store.files, &types.BackupFile{ID: "broken", Name: "zaazu-backup-x.json"})

	_, err := engine.Download(context.Background(), "broken")
	assert.Error(t, err)
}
