package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	driveapi "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"zaazu/internal/types"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Client wraps the Drive v3 API for backup archival. A Client is built
// fresh from caller-supplied credentials on every request; nothing about
// the authorization state outlives the request that created it.
type Client struct {
	svc *driveapi.Service
}

func NewClient(ctx context.Context, cfg types.DriveConfig) (*Client, error) {
	if cfg.RefreshToken == "" {
		return nil, errors.New("refresh token is required for data operations")
	}

	source := oauthConfig(cfg).TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	svc, err := driveapi.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build drive service")
	}
	return &Client{svc: svc}, nil
}

// ExchangeAuthCode redeems an authorization code for tokens. This is the
// only operation available without a refresh token.
func ExchangeAuthCode(ctx context.Context, cfg types.DriveConfig, code string) (*oauth2.Token, error) {
	token, err := oauthConfig(cfg).Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}
	return token, nil
}

func oauthConfig(cfg types.DriveConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Endpoint:     google.Endpoint,
		Scopes:       []string{driveapi.DriveFileScope},
	}
}

// FindFolder returns the id of the first non-trashed folder with the exact
// name, or "" when none exists.
func (c *Client) FindFolder(ctx context.Context, name string) (string, error) {
	q := fmt.Sprintf("mimeType='%s' and name='%s' and trashed=false", folderMimeType, name)
	res, err := c.svc.Files.List().
		Context(ctx).
		Q(q).
		Fields("files(id, name)").
		PageSize(10).
		Do()
	if err != nil {
		return "", errors.Wrap(err, "folder lookup failed")
	}
	if len(res.Files) == 0 {
		return "", nil
	}
	return res.Files[0].Id, nil
}

func (c *Client) CreateFolder(ctx context.Context, name, parent string) (string, error) {
	folder := &driveapi.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parent},
	}
	created, err := c.svc.Files.Create(folder).Context(ctx).Fields("id").Do()
	if err != nil {
		return "", errors.Wrap(err, "failed to create folder")
	}
	return created.Id, nil
}

func (c *Client) CreateFile(ctx context.Context, folderID, name, description string, content []byte) (*types.BackupFile, error) {
	meta := &driveapi.File{
		Name:        name,
		MimeType:    "application/json",
		Parents:     []string{folderID},
		Description: description,
	}
	created, err := c.svc.Files.Create(meta).
		Context(ctx).
		Media(bytes.NewReader(content)).
		Fields("id, name, size, createdTime").
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "upload failed")
	}
	return toBackupFile(created), nil
}

func (c *Client) ListFiles(ctx context.Context, folderID, nameContains string, pageSize int64) ([]*types.BackupFile, error) {
	q := fmt.Sprintf("'%s' in parents and name contains '%s' and trashed=false", folderID, nameContains)
	res, err := c.svc.Files.List().
		Context(ctx).
		Q(q).
		OrderBy("createdTime desc").
		PageSize(pageSize).
		Fields("files(id, name, size, createdTime, description)").
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "listing failed")
	}

	return lo.Map(res.Files, func(f *driveapi.File, _ int) *types.BackupFile {
		return toBackupFile(f)
	}), nil
}

func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, errors.Wrap(err, "download failed")
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file content")
	}
	return content, nil
}

func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if err := c.svc.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return errors.Wrap(err, "delete failed")
	}
	return nil
}

func toBackupFile(f *driveapi.File) *types.BackupFile {
	created, _ := time.Parse(time.RFC3339, f.CreatedTime)
	return &types.BackupFile{
		ID:          f.Id,
		Name:        f.Name,
		Size:        f.Size,
		CreatedTime: created,
		Description: f.Description,
	}
}
