package services

import (
	"context"
	"encoding/json"
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/logger"
	"pocketledger/internal/remote"
	"pocketledger/internal/store"
)

// syncCollections fixes the order collections are pushed in, parents before
// the records that reference them.
var syncCollections = []string{
	"categories",
	"transactions",
	"budgets",
	"debts",
	"repayments",
	"notifications",
}

// SyncResult reports the outcome of pushing one collection.
type SyncResult struct {
	Collection string `json:"collection"`
	Count      int    `json:"count"`
	Synced     bool   `json:"synced"`
	Error      string `json:"error,omitempty"`
}

// remoteStore is the slice of the remote client the sync service needs.
type remoteStore interface {
	Ping(ctx context.Context) error
	Sync(ctx context.Context, collection string, items any) error
}

// syncService pushes full local snapshots to the remote store configured in
// settings.
type syncService struct {
	store     *store.Store
	timeout   time.Duration
	newClient func(baseURL string) remoteStore
}

// NewSyncService creates a new SyncServicer. The timeout bounds each remote
// call.
func NewSyncService(s *store.Store, timeout time.Duration) SyncServicer {
	return &syncService{
		store:   s,
		timeout: timeout,
		newClient: func(baseURL string) remoteStore {
			return remote.NewClient(baseURL, timeout)
		},
	}
}

// client builds a remote client from current settings, or reports that no
// remote is configured.
func (s *syncService) client() (remoteStore, error) {
	settings := s.store.Settings.Get()
	if !settings.UseCloudStorage || settings.RemoteStoreURL == "" {
		return nil, apperrors.ErrRemoteNotConfigured
	}
	return s.newClient(settings.RemoteStoreURL), nil
}

// PingRemote checks that the configured remote store is reachable.
func (s *syncService) PingRemote(ctx context.Context) error {
	client, err := s.client()
	if err != nil {
		return err
	}
	return client.Ping(ctx)
}

// SyncAll pushes every collection as a full snapshot. A collection that
// fails to push is reported in its result and does not stop the others;
// only an unreachable remote aborts the run.
func (s *syncService) SyncAll(ctx context.Context) ([]SyncResult, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx); err != nil {
		return nil, err
	}

	results := make([]SyncResult, 0, len(syncCollections))
	for _, name := range syncCollections {
		items := s.snapshot(name)
		result := SyncResult{Collection: name, Count: len(items)}
		if err := client.Sync(ctx, name, items); err != nil {
			result.Error = err.Error()
			logger.Get().Warnw("failed to sync collection", "collection", name, "error", err)
		} else {
			result.Synced = true
		}
		results = append(results, result)
	}
	return results, nil
}

// snapshot reads one collection as raw records, without caring what kind of
// record it holds. Absent or unparseable data degrades to empty, same as
// collection reads everywhere else.
func (s *syncService) snapshot(name string) []json.RawMessage {
	raw, ok, err := s.store.Backend.Get(store.CollectionKeys[name])
	if err != nil || !ok {
		return []json.RawMessage{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Get().Errorw("failed to parse collection for sync, skipping contents",
			"collection", name, "error", err)
		return []json.RawMessage{}
	}
	return items
}
