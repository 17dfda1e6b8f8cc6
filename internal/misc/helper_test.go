package misc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackupFileName(t *testing.T) {
	tests := []struct {
		name     string
		args     time.Time
		expected string
	}{
		{
			name:     "utc timestamp",
			args:     time.Date(2026, 8, 28, 10, 15, 30, 123000000, time.UTC),
			expected: "zaazu-backup-2026-08-28T10-15-30-123Z.json",
		},
		{
			name:     "non-utc input is normalized",
			args:     time.Date(2026, 1, 2, 1, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
			expected: "zaazu-backup-2026-01-02T04-00-00-000Z.json",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, BackupFileName(test.args))
		})
	}
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "1.00 KB", SizeLabel(1024))
	assert.Equal(t, "0.50 KB", SizeLabel(512))
	assert.Equal(t, "1.25 KB", SizeLabel(1280))
	assert.Regexp(t, `^\d+\.\d{2} KB$`, SizeLabel(123456))
}

func TestExtensionOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{name: "png", filename: "capa.PNG", expected: "png"},
		{name: "jpeg", filename: "foto.jpeg", expected: "jpeg"},
		{name: "no extension", filename: "thumbnail", expected: "jpg"},
		{name: "trailing dot", filename: "weird.", expected: "jpg"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ExtensionOrDefault(test.filename, "jpg"))
		})
	}
}
