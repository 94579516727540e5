// Package remote implements the HTTP client for an optional remote store
// that mirrors the local collections. The remote is never authoritative:
// every failure here is reported as ErrRemoteUnavailable and callers are
// expected to carry on with local data.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "pocketledger/internal/errors"
)

// Client talks to a remote store at a base URL. Each collection is a
// sub-resource of the base URL; liveness is checked at GET {base}/ping.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a client for the given base URL. The timeout bounds the
// connectivity check so an unreachable server cannot hang the caller.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: timeout,
	}
}

// Ping checks that the remote store is reachable and responding.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.Wrap(apperrors.ErrRemoteUnavailable,
			fmt.Errorf("ping returned status %d", resp.StatusCode))
	}
	return nil
}

// GetAll fetches the full remote collection.
func (c *Client) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/"+collection, nil)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteUnavailable, err)
	}
	return items, nil
}

// GetByID fetches a single remote record. The second return is false when
// the remote reports 404.
func (c *Client) GetByID(ctx context.Context, collection, id string) (json.RawMessage, bool, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/"+collection+"/"+id, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, false, apperrors.Wrap(apperrors.ErrRemoteUnavailable,
			fmt.Errorf("remote returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrRemoteUnavailable, err)
	}
	return body, true, nil
}

// Add posts a new record to the remote collection.
func (c *Client) Add(ctx context.Context, collection string, item any) error {
	_, err := c.do(ctx, http.MethodPost, "/"+collection, item)
	return err
}

// Update patches a remote record with partial fields, restamping updatedAt.
func (c *Client) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	patched := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		patched[k] = v
	}
	patched["updatedAt"] = time.Now().UnixMilli()

	_, err := c.do(ctx, http.MethodPatch, "/"+collection+"/"+id, patched)
	return err
}

// Delete removes a remote record.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/"+collection+"/"+id, nil)
	return err
}

// Sync replaces the remote collection with a full local snapshot.
func (c *Client) Sync(ctx context.Context, collection string, items any) error {
	_, err := c.do(ctx, http.MethodPost, "/"+collection+"/sync", items)
	return err
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrRemoteUnavailable, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.Wrap(apperrors.ErrRemoteUnavailable,
			fmt.Errorf("remote returned status %d for %s %s", resp.StatusCode, method, path))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteUnavailable, err)
	}
	return body, nil
}
