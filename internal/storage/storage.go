package storage

import (
	"context"

	"zaazu/internal/types"
)

type (
	Type string

	// Storage persists public media assets (thumbnails). Locations are
	// slash-separated relative paths, e.g. thumbnails/videos/<id>.jpg.
	Storage interface {
		Save(ctx context.Context, location string, f types.File) error
		Get(ctx context.Context, location string) (*types.File, error)
		Ping(ctx context.Context) error
	}
)

const (
	TypeFS Type = "fs"
	TypeS3 Type = "s3"
)

func (t Type) String() string {
	return string(t)
}
