package storage

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"zaazu/internal/types"
)

const mediaBucket = "zaazu-media"

type (
	ObjectStorageCredentials struct {
		Endpoint, AccessKeyID, SecretKey, Region string
	}

	objectStorage struct {
		client *minio.Client
		region string
	}
)

func NewObjectStorage(cred ObjectStorageCredentials) (Storage, error) {
	mn, err := minio.New(cred.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cred.AccessKeyID, cred.SecretKey, ""),
		Secure: false,
		Region: cred.Region,
	})
	if err != nil {
		return nil, err
	}
	return &objectStorage{
		region: cred.Region,
		client: mn,
	}, nil
}

func (s *objectStorage) Save(ctx context.Context, location string, file types.File) error {
	if err := s.makeBucket(ctx); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, mediaBucket, location, file.Content, file.Stat.Size, minio.PutObjectOptions{
		ContentType: file.GetContentType(),
	})
	return err
}

func (s *objectStorage) Get(ctx context.Context, location string) (*types.File, error) {
	r, err := s.client.GetObject(ctx, mediaBucket, location, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	stat, err := r.Stat()
	if err != nil {
		return nil, err
	}

	return &types.File{
		Content: r,
		Stat:    types.FileStat{Size: stat.Size, Name: stat.Key, ContentType: stat.ContentType},
	}, nil
}

func (s *objectStorage) makeBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, mediaBucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.client.MakeBucket(ctx, mediaBucket, minio.MakeBucketOptions{
		Region: s.region,
	})
}

func (s *objectStorage) Ping(ctx context.Context) error {
	_, err := s.client.ListBuckets(ctx)
	return err
}
