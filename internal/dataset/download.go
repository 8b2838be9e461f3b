// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/tomtom215/cinelookup/internal/logging"
)

// EnsureLocal makes sure path exists, downloading it from url when it does not.
// It reports whether a download happened. A missing file with no url is an error.
func EnsureLocal(ctx context.Context, path, url string, timeout time.Duration) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if url == "" {
		return false, fmt.Errorf("dataset file %s does not exist and no download URL is configured", path)
	}

	if err := Fetch(ctx, url, path, timeout); err != nil {
		return false, err
	}
	return true, nil
}

// Fetch downloads url to path. The body is written to a temporary file in the
// destination directory and renamed into place, so a failed download never
// leaves a truncated file behind.
func Fetch(ctx context.Context, url, path string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logging.Info().Str("url", url).Str("path", path).Msg("Downloading dataset file")

	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logging.Debug().Err(cerr).Msg("Failed to close download body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: received status code %d", url, resp.StatusCode)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	written, copyErr := io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		if copyErr != nil {
			return fmt.Errorf("failed to write %s: %w", path, copyErr)
		}
		return fmt.Errorf("failed to close %s: %w", tmpName, closeErr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to move download into %s: %w", path, err)
	}

	logging.Info().Str("path", path).Int64("bytes", written).Msg("Dataset file downloaded")
	return nil
}
