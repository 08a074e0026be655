package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/BloggingApp/post-catalog/internal/config"
)

type client struct {
	base string
	hc   *http.Client
}

func newClient(cfg config.CollaboratorsConfig) *client {
	return &client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		hc:   &http.Client{Timeout: cfg.Timeout},
	}
}

// getJSON decodes the body of a 200 response into out and reports whether the
// resource exists. 404 is an absent resource; any other status is an error.
func (c *client) getJSON(ctx context.Context, resource, key string, out any) (bool, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.base, resource, url.PathEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%s lookup %q: unexpected status %d", resource, key, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s %q: %w", resource, key, err)
	}

	return true, nil
}
