package membership

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Fetcher retrieves the member handles of a named group from the external
// membership service.
type Fetcher interface {
	FetchGroup(ctx context.Context, group string) ([]string, error)
}

type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) FetchGroup(ctx context.Context, group string) ([]string, error) {
	url := fmt.Sprintf("%s/groups/%s", f.baseURL, group)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("membership service returned %d for group %q", resp.StatusCode, group)
	}

	var handles []string
	if err := json.NewDecoder(resp.Body).Decode(&handles); err != nil {
		return nil, fmt.Errorf("decode group %q: %w", group, err)
	}
	return handles, nil
}
