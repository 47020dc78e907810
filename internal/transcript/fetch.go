package transcript

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// MaxFetchTime bounds the retries of a single Fetch.
var MaxFetchTime = 12 * time.Second

// maxBody caps a downloaded transcript.
const maxBody = 4 << 20

// Fetch downloads transcript text, retrying network errors and 5xx with
// exponential backoff. 4xx responses fail immediately.
func Fetch(ctx context.Context, client *http.Client, url string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = MaxFetchTime

	var body []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
		if err != nil {
			return err
		}
		switch {
		case resp.StatusCode >= 500:
			return fmt.Errorf("transcript download status %d", resp.StatusCode)
		case resp.StatusCode >= 300:
			return backoff.Permanent(fmt.Errorf("transcript download status %d: %s", resp.StatusCode, b))
		}
		body = b
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return "", fmt.Errorf("fetch transcript: %w", err)
	}
	return string(body), nil
}
