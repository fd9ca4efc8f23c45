package repositories

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/option"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
	"github.com/MarcDufresne/tangerine-account-checker/internal/config"
	"github.com/MarcDufresne/tangerine-account-checker/internal/models"

	"cloud.google.com/go/storage"
)

type CloudStorageRepository interface {
	NewWriter(ctx context.Context, payload *models.CloudStoragePayload, contentType string) io.WriteCloser
	GetURL(payload *models.CloudStoragePayload) (url string)
	IsObjectExist(ctx context.Context, payload *models.CloudStoragePayload) (isExist bool, url string)
	Close() error
}

type cloudStorageClient struct {
	config *config.CloudStorageConfig
	client *storage.Client
}

func NewCloudStorageRepository(cfg *config.Config, opts ...option.ClientOption) (CloudStorageRepository, error) {
	if cfg.CloudStorageConfig.BucketName == "" {
		return nil, fmt.Errorf("failed to init cloud storage: %w", common.ErrBucketNameEmpty)
	}

	client, err := storage.NewClient(context.Background(), clientOptions(cfg, opts)...)
	if err != nil {
		return nil, err
	}

	return &cloudStorageClient{client: client, config: &cfg.CloudStorageConfig}, nil
}

// clientOptions bills the configured project only for default clients;
// a quota project cannot be combined with a caller supplied HTTP client.
func clientOptions(cfg *config.Config, opts []option.ClientOption) []option.ClientOption {
	if len(opts) > 0 || cfg.GcloudProjectID == "" {
		return opts
	}
	return []option.ClientOption{option.WithQuotaProject(cfg.GcloudProjectID)}
}

func (cs *cloudStorageClient) GetURL(payload *models.CloudStoragePayload) (url string) {
	return fmt.Sprintf("%s/%s/%s", cs.config.BaseURL, cs.config.BucketName, payload.GetFilePath())
}

func (cs *cloudStorageClient) NewWriter(ctx context.Context, payload *models.CloudStoragePayload, contentType string) io.WriteCloser {
	obj := cs.client.Bucket(cs.config.BucketName).Object(payload.GetFilePath())
	writer := obj.NewWriter(ctx)
	writer.ContentType = contentType
	writer.ContentDisposition = fmt.Sprintf("attachment; filename=%s", payload.Filename)
	return writer
}

func (cs *cloudStorageClient) Close() error {
	return cs.client.Close()
}

func (cs *cloudStorageClient) IsObjectExist(ctx context.Context, payload *models.CloudStoragePayload) (isExist bool, url string) {
	_, err := cs.client.Bucket(cs.config.BucketName).Object(payload.GetFilePath()).Attrs(ctx)
	if err == nil {
		isExist = true
		url = cs.GetURL(payload)
	}

	return
}
