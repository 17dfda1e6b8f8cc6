package service

import (
	"context"
	"fmt"
	"io"
	"mime"

	"zaazu/internal/misc"
	"zaazu/internal/storage"
	"zaazu/internal/types"
)

type (
	// ThumbnailService stores catalog cover images. The section names are
	// the ones the player app expects ("jogos" and "atividades" are
	// Portuguese for games and activities).
	ThumbnailService interface {
		Save(ctx context.Context, params SaveThumbnailParams) (string, error)
	}

	SaveThumbnailParams struct {
		Section  string
		ID       string
		FileName string
		Size     int64
		Content  io.Reader
	}

	thumbnailService struct {
		st storage.Storage
	}
)

var thumbnailSections = map[string]bool{
	"videos":     true,
	"jogos":      true,
	"atividades": true,
}

func ValidThumbnailSection(section string) bool {
	return thumbnailSections[section]
}

func NewThumbnailService(st storage.Storage) ThumbnailService {
	return &thumbnailService{st: st}
}

// Save writes the image to thumbnails/<section>/<id>.<ext> and returns the
// public URL path. Re-uploading for the same id overwrites the previous
// thumbnail.
func (t *thumbnailService) Save(ctx context.Context, params SaveThumbnailParams) (string, error) {
	if !ValidThumbnailSection(params.Section) {
		return "", fmt.Errorf("invalid thumbnail section: %s", params.Section)
	}

	ext := misc.ExtensionOrDefault(params.FileName, "jpg")
	location := fmt.Sprintf("thumbnails/%s/%s.%s", params.Section, params.ID, ext)

	err := t.st.Save(ctx, location, types.File{
		Content: params.Content,
		Stat: types.FileStat{
			Size:        params.Size,
			Name:        params.FileName,
			ContentType: mime.TypeByExtension("." + ext),
		},
	})
	if err != nil {
		return "", err
	}
	return "/" + location, nil
}
