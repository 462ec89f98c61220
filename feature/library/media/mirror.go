package media

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"gamesync/core/storage"
	"gamesync/feature/library/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Mirror copies remote game media into object storage so the library does not
// depend on upstream CDN availability. Mirroring is best effort: a failed
// copy is logged and the remote reference stays usable, it never fails a
// synchronization run.
type Mirror struct {
	client storage.Client
	http   *http.Client
	bucket string
	logger *zap.Logger
}

// NewMirror creates a mirror writing into the given bucket.
func NewMirror(client storage.Client, bucket string, logger *zap.Logger) *Mirror {
	return &Mirror{
		client: client,
		http:   &http.Client{Timeout: 30 * time.Second},
		bucket: bucket,
		logger: logger,
	}
}

// EnsureBucket creates the target bucket if it does not exist yet.
func (m *Mirror) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", m.bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket %s: %w", m.bucket, err)
	}
	m.logger.Info("Created media bucket", zap.String("bucket", m.bucket))
	return nil
}

// MirrorGame copies the header and capsule images of a game into storage.
// Objects are keyed by item id and source filename, so re-mirroring an
// unchanged game is a cheap stat per object.
func (m *Mirror) MirrorGame(ctx context.Context, record *models.GameRecord) {
	for _, url := range []string{record.Media.HeaderImage, record.Media.CapsuleImage} {
		if url == "" {
			continue
		}
		if err := m.mirrorObject(ctx, record.ItemID, url); err != nil {
			m.logger.Warn("Media mirroring failed, keeping remote reference",
				zap.Uint64("item_id", record.ItemID),
				zap.String("url", url),
				zap.Error(err))
		}
	}
}

func (m *Mirror) mirrorObject(ctx context.Context, itemID uint64, url string) error {
	objectName := fmt.Sprintf("%d/%s", itemID, path.Base(url))

	if _, err := m.client.StatObject(ctx, m.bucket, objectName, minio.StatObjectOptions{}); err == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building media request: %w", err)
	}
	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("downloading media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading media: unexpected status %d", resp.StatusCode)
	}

	_, err = m.client.PutObject(ctx, m.bucket, objectName, resp.Body, resp.ContentLength, minio.PutObjectOptions{
		ContentType: resp.Header.Get("Content-Type"),
	})
	if err != nil {
		return fmt.Errorf("storing media object %s: %w", objectName, err)
	}

	m.logger.Debug("Mirrored media object",
		zap.Uint64("item_id", itemID),
		zap.String("object", objectName))
	return nil
}
