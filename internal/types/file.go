package types

import "io"

// File is a blob travelling between the HTTP layer and a storage provider.
type File struct {
	Content io.Reader
	Stat    FileStat
}

type FileStat struct {
	Size        int64
	Name        string
	ContentType string
}

func (f File) GetContentType() string {
	if f.Stat.ContentType == "" {
		return "application/octet-stream"
	}
	return f.Stat.ContentType
}
