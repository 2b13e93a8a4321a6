// Package registry talks to a container registry over the Docker
// Registry HTTP API v2 and re-pushes tagged manifests to trigger
// downstream replication.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// manifestMediaType is sent on both pull and push so the registry
	// returns the exact manifest bytes the tag points at.
	manifestMediaType = "application/vnd.docker.distribution.manifest.v2+json"

	// pageSize bounds catalog and tag listing requests.
	pageSize = 1000

	defaultTimeout = 60 * time.Second
)

// Client is a minimal Docker Registry HTTP API v2 client.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewClient returns a client for the registry at endpoint, e.g.
// "https://registry.example.com". token, when non-empty, is sent as a
// bearer token on every request.
func NewClient(endpoint, token string) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Newf("invalid registry endpoint %q", endpoint)
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		endpoint:   strings.TrimRight(endpoint, "/"),
		token:      token,
	}, nil
}

// Manifest is an opaque manifest document plus the media type it was
// served with. Re-pushing preserves both.
type Manifest struct {
	MediaType string
	Body      []byte
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "building registry request")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	return resp, nil
}

// Repositories lists repository names from the registry catalog.
func (c *Client) Repositories(ctx context.Context) ([]string, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v2/_catalog?n=%d", pageSize), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("listing repositories: unexpected status %s", resp.Status)
	}

	var payload struct {
		Repositories []string `json:"repositories"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decoding repository catalog")
	}
	return payload.Repositories, nil
}

// Tags lists the tags of one repository.
func (c *Client) Tags(ctx context.Context, repository string) ([]string, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v2/%s/tags/list?n=%d", repository, pageSize), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("listing tags of %s: unexpected status %s", repository, resp.Status)
	}

	var payload struct {
		Tags []string `json:"tags"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrapf(err, "decoding tag list of %s", repository)
	}
	return payload.Tags, nil
}

// GetManifest fetches the manifest a tag points at.
func (c *Client) GetManifest(ctx context.Context, repository, tag string) (*Manifest, error) {
	header := http.Header{"Accept": []string{manifestMediaType}}
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v2/%s/manifests/%s", repository, tag), nil, header)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("getting manifest %s:%s: unexpected status %s", repository, tag, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s:%s", repository, tag)
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = manifestMediaType
	}
	return &Manifest{MediaType: mediaType, Body: body}, nil
}

// PutManifest pushes a manifest under the given tag.
func (c *Client) PutManifest(ctx context.Context, repository, tag string, m *Manifest) error {
	header := http.Header{"Content-Type": []string{m.MediaType}}
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v2/%s/manifests/%s", repository, tag), strings.NewReader(string(m.Body)), header)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return errors.Newf("putting manifest %s:%s: unexpected status %s", repository, tag, resp.Status)
	}
	return nil
}

// DeleteTag removes a tag reference. The underlying manifest and blobs
// stay until garbage collection.
func (c *Client) DeleteTag(ctx context.Context, repository, tag string) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/v2/%s/manifests/%s", repository, tag), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return errors.Newf("deleting tag %s:%s: unexpected status %s", repository, tag, resp.Status)
	}
	return nil
}
