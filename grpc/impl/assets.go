package impl

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/protein-alphabet/proteintext/grpc/impl/storage"
	"github.com/protein-alphabet/proteintext/pkg/glyph"
)

// SyncGlyphs downloads the glyph assets from gs://bucket/prefix into dir before
// the server starts, so that renders only ever read local files. Letters
// missing from the bucket are skipped. Returns the number of assets written.
func SyncGlyphs(ctx context.Context, client storage.Client, bucket string, prefix string, dir string, backoffDuration time.Duration) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create glyph directory: %w", err)
	}

	names := make([]string, 0, len(glyph.Table))
	for _, name := range glyph.Table {
		names = append(names, name)
	}
	sort.Strings(names)

	written := 0
	for _, name := range names {
		object := path.Join(prefix, name)
		data, err := backoff.RetryWithData(func() ([]byte, error) {
			data, err := client.ReadBytes(ctx, bucket, object)
			if errors.Is(err, storage.ErrNotFound) {
				return nil, backoff.Permanent(err)
			}
			return data, err
		}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(backoffDuration), 4), ctx))
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Glyph %s is not in bucket %s, skipping", object, bucket)
			continue
		}
		if err != nil {
			return written, fmt.Errorf("failed to download glyph %s: %w", object, err)
		}

		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write glyph %s: %w", name, err)
		}
		written++
	}
	return written, nil
}
