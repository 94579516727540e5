package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/logger"
	"pocketledger/internal/store"
)

// StoreHandler serves the raw collection contract that remote.Client speaks:
// whole collections as JSON arrays of untyped records, addressed by public
// collection name. It works directly on the backend so a mirror instance can
// hold records it does not know the shape of.
type StoreHandler struct {
	backend store.Backend
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(backend store.Backend) *StoreHandler {
	return &StoreHandler{backend: backend}
}

func (h *StoreHandler) key(c *gin.Context) (string, bool) {
	key, ok := store.CollectionKeys[c.Param("collection")]
	if !ok {
		respondWithError(c, apperrors.ErrUnknownCollection)
		return "", false
	}
	return key, true
}

// load reads a collection as untyped records. Absent or unparseable data
// degrades to an empty collection, same as typed reads.
func (h *StoreHandler) load(key string) ([]map[string]any, error) {
	raw, ok, err := h.backend.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []map[string]any{}, nil
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Get().Errorw("failed to parse stored collection, treating as empty",
			"key", key, "error", err)
		return []map[string]any{}, nil
	}
	return items, nil
}

func (h *StoreHandler) save(key string, items []map[string]any) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return h.backend.Set(key, string(raw))
}

func recordID(item map[string]any) string {
	id, _ := item["id"].(string)
	return id
}

// Ping confirms the store is up.
func (h *StoreHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// GetCollection returns the full collection as a JSON array.
func (h *StoreHandler) GetCollection(c *gin.Context) {
	key, ok := h.key(c)
	if !ok {
		return
	}

	items, err := h.load(key)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddRecord appends one record to the collection. The record must carry an
// id field.
func (h *StoreHandler) AddRecord(c *gin.Context) {
	key, ok := h.key(c)
	if !ok {
		return
	}

	var item map[string]any
	if err := c.ShouldBindJSON(&item); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if recordID(item) == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "record must have an id"))
		return
	}

	items, err := h.load(key)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := h.save(key, append(items, item)); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetRecord returns one record by ID.
func (h *StoreHandler) GetRecord(c *gin.Context) {
	key, ok := h.key(c)
	if !ok {
		return
	}

	items, err := h.load(key)
	if err != nil {
		respondWithError(c, err)
		return
	}
	for _, item := range items {
		if recordID(item) == c.Param("id") {
			c.JSON(http.StatusOK, item)
			return
		}
	}
	respondWithError(c, apperrors.ErrNotFound)
}

// PatchRecord merges partial fields into one record and restamps updatedAt.
func (h *StoreHandler) PatchRecord(c *gin.Context) {
	key, ok := h.key(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	items, err := h.load(key)
	if err != nil {
		respondWithError(c, err)
		return
	}
	for i, item := range items {
		if recordID(item) != c.Param("id") {
			continue
		}
		for k, v := range fields {
			if k == "id" {
				continue
			}
			item[k] = v
		}
		item["updatedAt"] = time.Now().UnixMilli()
		items[i] = item
		if err := h.save(key, items); err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
		return
	}
	respondWithError(c, apperrors.ErrNotFound)
}

// DeleteRecord filters one record out of the collection.
func (h *StoreHandler) DeleteRecord(c *gin.Context) {
	key, ok := h.key(c)
	if !ok {
		return
	}

	items, err := h.load(key)
	if err != nil {
		respondWithError(c, err)
		return
	}
	kept := items[:0]
	for _, item := range items {
		if recordID(item) != c.Param("id") {
			kept = append(kept, item)
		}
	}
	if err := h.save(key, kept); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// SyncCollection replaces the collection with the posted snapshot.
func (h *StoreHandler) SyncCollection(c *gin.Context) {
	key, ok := h.key(c)
	if !ok {
		return
	}

	var items []map[string]any
	if err := c.ShouldBindJSON(&items); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if items == nil {
		items = []map[string]any{}
	}
	if err := h.save(key, items); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collection synced", "count": len(items)})
}
