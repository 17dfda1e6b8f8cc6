package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"zaazu/internal/types"
)

// fileStorage keeps assets under a local public directory so the web
// server can serve them directly.
type fileStorage struct {
	baseDir string
}

func NewFileStorage(baseDir string) Storage {
	return &fileStorage{baseDir: baseDir}
}

func (f *fileStorage) Save(ctx context.Context, location string, file types.File) error {
	target := filepath.Join(f.baseDir, filepath.FromSlash(location))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	fi, err := os.Create(target)
	if err != nil {
		return err
	}
	defer fi.Close()

	_, err = io.Copy(fi, file.Content)
	return err
}

func (f *fileStorage) Get(ctx context.Context, location string) (*types.File, error) {
	target := filepath.Join(f.baseDir, filepath.FromSlash(location))
	content, err := os.ReadFile(target)
	if err != nil {
		return nil, err
	}

	return &types.File{
		Content: bytes.NewReader(content),
		Stat: types.FileStat{
			Size: int64(len(content)),
			Name: filepath.Base(target),
		},
	}, nil
}

func (f *fileStorage) Ping(ctx context.Context) error {
	return os.MkdirAll(f.baseDir, 0755)
}
