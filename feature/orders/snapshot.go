package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"order-reconciler/feature/orders/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const snapshotPrefix = "snapshots/"

// Snapshot serializes the whole store to JSON and uploads it to the
// snapshot bucket, creating the bucket on first use. The export
// deduplicates the store's dual-keyed entries by record id: a backup wants
// logical orders, not index entries. Returns the object name.
func (s *Service) Snapshot(ctx context.Context) (string, error) {
	all, err := s.store.GetAll()
	if err != nil {
		return "", err
	}

	seen := make(map[string]struct{}, len(all))
	unique := make([]models.Order, 0, len(all))
	for _, order := range all {
		if _, ok := seen[order.ID]; ok {
			continue
		}
		seen[order.ID] = struct{}{}
		unique = append(unique, order)
	}

	payload, err := json.MarshalIndent(unique, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	exists, err := s.storage.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("check snapshot bucket: %w", err)
	}
	if !exists {
		if err := s.storage.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("create snapshot bucket: %w", err)
		}
	}

	objectName := fmt.Sprintf("%sorders-%s.json", snapshotPrefix, time.Now().UTC().Format("20060102T150405Z"))
	_, err = s.storage.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}

	s.logger.Info("snapshot exported",
		zap.String("object", objectName),
		zap.Int("orders", len(unique)),
	)
	return objectName, nil
}

// ListSnapshots returns the names of all exported snapshot objects.
func (s *Service) ListSnapshots(ctx context.Context) ([]string, error) {
	names := []string{}
	for info := range s.storage.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: snapshotPrefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list snapshots: %w", info.Err)
		}
		names = append(names, info.Key)
	}
	return names, nil
}
