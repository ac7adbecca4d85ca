package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"mercadito/internal/domain"
	applog "mercadito/internal/log"
)

// fileCollection persists one collection as a pretty-printed JSON array in
// a single file. Every read goes back to disk so edits made outside the
// process are visible; every mutation rewrites the whole file through a
// temp file + rename so readers never observe a half-written document.
type fileCollection struct {
	name string
	path string
	mu   sync.Mutex // serializes read-modify-write cycles per collection
}

func newFileCollection(dir, name string) *fileCollection {
	return &fileCollection{name: name, path: filepath.Join(dir, name+".json")}
}

// load reads the collection fresh from disk. A missing or malformed file
// degrades to an empty collection: read paths favor availability, so the
// condition is logged and never surfaced to the caller.
func (c *fileCollection) load() []Record {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			applog.Error(nil, "store.file.read", err, map[string]any{"collection": c.name})
		}
		return []Record{}
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		applog.Error(nil, "store.file.decode", err, map[string]any{"collection": c.name})
		return []Record{}
	}
	return recs
}

// flush writes the full collection back. Write failures are never
// swallowed.
func (c *fileCollection) flush(recs []Record) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), "."+c.name+"-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}

func (c *fileCollection) All(ctx context.Context) ([]Record, error) {
	return c.load(), nil
}

func (c *fileCollection) Get(ctx context.Context, id any) (Record, error) {
	for _, rec := range c.load() {
		if domain.SameID(rec["id"], id) {
			return rec, nil
		}
	}
	return nil, nil
}

func (c *fileCollection) Find(ctx context.Context, filters Filters) ([]Record, error) {
	out := []Record{}
	for _, rec := range c.load() {
		if matches(rec, filters) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (c *fileCollection) Insert(ctx context.Context, rec Record) (Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs := c.load()
	stored := Record{}
	for k, v := range rec {
		stored[k] = v
	}
	if stored["id"] == nil {
		stored["id"] = nextID(recs)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	stored["createdAt"] = now
	stored["updatedAt"] = now

	recs = append(recs, stored)
	if err := c.flush(recs); err != nil {
		return nil, err
	}
	return stored, nil
}

func (c *fileCollection) Update(ctx context.Context, id any, patch Record) (Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs := c.load()
	for i, rec := range recs {
		if !domain.SameID(rec["id"], id) {
			continue
		}
		merged := Record{}
		for k, v := range rec {
			merged[k] = v
		}
		for k, v := range patch {
			merged[k] = v
		}
		merged["id"] = rec["id"]
		merged["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
		recs[i] = merged
		if err := c.flush(recs); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, fmt.Errorf("%s %v: %w", c.name, id, ErrNotFound)
}

func (c *fileCollection) Delete(ctx context.Context, id any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs := c.load()
	for i, rec := range recs {
		if domain.SameID(rec["id"], id) {
			recs = append(recs[:i], recs[i+1:]...)
			return c.flush(recs)
		}
	}
	return fmt.Errorf("%s %v: %w", c.name, id, ErrNotFound)
}
