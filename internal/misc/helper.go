package misc

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const backupFilePrefix = "zaazu-backup"

// BackupFileName derives the archive name from a UTC timestamp. Colons and
// dots are not safe in every consumer of the name, so both are replaced
// with dashes: zaazu-backup-2026-08-28T10-15-30-123Z.json
func BackupFileName(t time.Time) string {
	ts := t.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.ReplaceAll(ts, ":", "-")
	ts = strings.ReplaceAll(ts, ".", "-")
	return fmt.Sprintf("%s-%s.json", backupFilePrefix, ts)
}

// BackupFilePrefix is the substring every archive name carries; listing
// filters on it.
func BackupFilePrefix() string {
	return backupFilePrefix
}

// SizeLabel renders a byte count the way the admin UI expects it, e.g.
// "1.25 KB".
func SizeLabel(n int) string {
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}

// ExtensionOrDefault extracts a lowercase extension (without the dot) from
// a filename, falling back when there is none.
func ExtensionOrDefault(filename, fallback string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return fallback
	}
	return strings.ToLower(ext)
}
