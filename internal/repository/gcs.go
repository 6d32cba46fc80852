package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/Connor-Kenway3/AmbassadorHub/internal/domain"
)

const gcsReadTimeout = 50 * time.Second

type GCSProgramRepository struct {
	client *storage.Client
	bucket string
	object string
}

func NewGCSProgramRepository(client *storage.Client, bucket, object string) *GCSProgramRepository {
	return &GCSProgramRepository{
		client: client,
		bucket: bucket,
		object: object,
	}
}

func (r *GCSProgramRepository) Source() string {
	return "gs://" + r.bucket + "/" + r.object
}

func (r *GCSProgramRepository) LoadPrograms(ctx context.Context) (domain.ProgramList, error) {
	data, err := r.DownloadFileToMemory(ctx)
	if err != nil {
		return nil, err
	}

	programs, err := domain.DecodePrograms(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.Source(), err)
	}
	return programs, nil
}

func (r *GCSProgramRepository) DownloadFileToMemory(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, gcsReadTimeout)
	defer cancel()

	rc, err := r.client.Bucket(r.bucket).Object(r.object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, fmt.Errorf("%s: %w", r.Source(), domain.ErrProgramStoreNotFound)
		}
		return nil, fmt.Errorf("Object(%q).NewReader: %w", r.object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}
	return data, nil
}
