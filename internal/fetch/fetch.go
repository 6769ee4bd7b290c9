// Package fetch loads remote documents over HTTP so they can be fed to
// the converter like any local input.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/auroranest/markbridge/internal/input"
)

// Limits bound a remote fetch. Zero values disable the corresponding
// limit.
type Limits struct {
	Timeout  time.Duration
	MaxBytes int64
}

// DefaultLimits matches the config defaults.
func DefaultLimits() Limits {
	return Limits{Timeout: 15 * time.Second, MaxBytes: 4 << 20}
}

// Text fetches url and returns its body as normalized text. Responses
// other than 200 and bodies over the byte limit are errors; the
// conversion core never sees them.
func Text(ctx context.Context, url string, lim Limits) (string, error) {
	if lim.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, lim.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "markbridge")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body := io.Reader(resp.Body)
	if lim.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, lim.MaxBytes+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", url, err)
	}
	if lim.MaxBytes > 0 && int64(len(raw)) > lim.MaxBytes {
		return "", fmt.Errorf("fetch %s: body exceeds %d bytes", url, lim.MaxBytes)
	}
	return input.Normalize(raw)
}
