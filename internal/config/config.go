package config

import (
	"os"
	"strconv"

	"zaazu/internal/types"
)

type Config struct {
	// AccessKey guards the admin API. Empty disables the check (local dev).
	AccessKey string

	ListenAddr   string
	DatabasePath string

	ServerSSLCertFile, ServerSSLKeyFile string

	// PublicDir is the root of locally served static assets (thumbnails).
	PublicDir string

	// ThumbnailStorage selects the provider: "fs" or "s3".
	ThumbnailStorage string
	S3Endpoint       string
	S3AccessKeyID    string
	S3SecretKey      string
	S3Region         string

	// Drive credentials for the scheduled retention job. When the refresh
	// token is absent the scheduler stays disabled; interactive requests
	// always carry their own credentials.
	Drive            types.DriveConfig
	CleanupCron      string
	CleanupKeepCount int
}

func New() Config {
	return Config{
		AccessKey:         os.Getenv("ACCESS_KEY"),
		ListenAddr:        envOr("LISTEN_ADDR", ":8480"),
		DatabasePath:      envOr("DATABASE_PATH", "zaazu.db"),
		ServerSSLCertFile: os.Getenv("SERVER_SSL_CERT_FILE"),
		ServerSSLKeyFile:  os.Getenv("SERVER_SSL_KEY_FILE"),
		PublicDir:         envOr("PUBLIC_DIR", "public"),
		ThumbnailStorage:  envOr("THUMBNAIL_STORAGE", "fs"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey:       os.Getenv("S3_SECRET_KEY"),
		S3Region:          os.Getenv("S3_REGION"),
		Drive: types.DriveConfig{
			ClientID:     os.Getenv("DRIVE_CLIENT_ID"),
			ClientSecret: os.Getenv("DRIVE_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("DRIVE_REDIRECT_URI"),
			RefreshToken: os.Getenv("DRIVE_REFRESH_TOKEN"),
		},
		CleanupCron:      envOr("BACKUP_CLEANUP_CRON", "0 3 * * *"),
		CleanupKeepCount: envIntOr("BACKUP_KEEP_COUNT", 10),
	}
}

func (c Config) HasTLSConfig() bool {
	return c.ServerSSLCertFile != "" && c.ServerSSLKeyFile != ""
}

// HasScheduledCleanup reports whether the server carries enough Drive
// credentials to run retention on its own.
func (c Config) HasScheduledCleanup() bool {
	return c.Drive.ClientID != "" && c.Drive.ClientSecret != "" && c.Drive.RefreshToken != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
