package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"tdr-menu-api/internal/domain"
)

// Snapshot is the full immutable collection as of one successful load.
// Readers always see either the previous or the next snapshot, never a
// partially parsed one: Load swaps a pointer, it never mutates in place.
type Snapshot struct {
	Items    []domain.MenuItem
	LoadedAt time.Time
}

// ReloadPublisher receives an event after each fresh load.
type ReloadPublisher interface {
	PublishReload(ctx context.Context, event domain.ReloadEvent) error
}

// Store owns the in-memory menu snapshot and refreshes it from the backing
// JSON file when the file's modification time moves past the last load.
// I/O and parse failures are absorbed: callers get an empty collection and
// a debug-only log line, never an error.
type Store struct {
	path      string
	debug     bool
	publisher ReloadPublisher
	snapshot  atomic.Pointer[Snapshot]
}

// NewStore validates that path resolves inside dataDir before anything is
// read. A configurable path that escapes the data directory is a fatal
// configuration error, not a runtime condition.
func NewStore(dataDir, path string, debug bool) (*Store, error) {
	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory %q: %w", dataDir, err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve data file %q: %w", path, err)
	}

	rel, err := filepath.Rel(absDir, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("data file %q is outside the data directory %q", path, dataDir)
	}

	return &Store{path: absPath, debug: debug}, nil
}

// SetPublisher attaches an optional reload event publisher.
func (s *Store) SetPublisher(p ReloadPublisher) {
	s.publisher = p
}

// Load returns the current collection, reading the backing file only when
// forced or when its mtime is newer than the cached snapshot's load time.
// The cache timestamp is the load completion time, not the file mtime; a
// load racing a concurrent rewrite may pin a stale snapshot until the next
// mtime bump, which is an accepted trade-off for this dataset.
func (s *Store) Load(forceReload bool) []domain.MenuItem {
	info, err := os.Stat(s.path)
	if err != nil {
		s.debugf("data file not found: %s", s.path)
		return []domain.MenuItem{}
	}

	if !forceReload {
		if snap := s.snapshot.Load(); snap != nil && !info.ModTime().After(snap.LoadedAt) {
			return snap.Items
		}
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.debugf("failed to read %s: %v", s.path, err)
		return []domain.MenuItem{}
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.debugf("invalid JSON in %s: %v", s.path, err)
		return []domain.MenuItem{}
	}
	if items == nil {
		items = []domain.MenuItem{}
	}

	snap := &Snapshot{Items: items, LoadedAt: time.Now()}
	s.snapshot.Store(snap)

	if s.publisher != nil {
		_ = s.publisher.PublishReload(context.Background(), domain.ReloadEvent{
			Type:      "catalog_reloaded",
			Path:      s.path,
			ItemCount: len(items),
			Timestamp: snap.LoadedAt,
		})
	}

	return items
}

// GetByID returns the first item with the given id.
func (s *Store) GetByID(id string) (*domain.MenuItem, bool) {
	for _, item := range s.Load(false) {
		if item.ID == id {
			found := item
			return &found, true
		}
	}
	return nil, false
}

// AllTags returns every tag across the catalog, deduplicated and sorted.
func (s *Store) AllTags() []string {
	seen := make(map[string]struct{})
	for _, item := range s.Load(false) {
		for _, tag := range item.Tags {
			seen[tag] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// AllCategories returns every free-text category label, deduplicated and
// sorted. This is the list field, not the single-valued category key.
func (s *Store) AllCategories() []string {
	seen := make(map[string]struct{})
	for _, item := range s.Load(false) {
		for _, category := range item.Categories {
			seen[category] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// AllRestaurants returns the restaurant directory: embedded restaurant
// records deduplicated by id, first occurrence wins, first-seen order.
func (s *Store) AllRestaurants() []domain.Restaurant {
	seen := make(map[string]struct{})
	var restaurants []domain.Restaurant
	for _, item := range s.Load(false) {
		for _, r := range item.Restaurants {
			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}
			restaurants = append(restaurants, r)
		}
	}
	return restaurants
}

func (s *Store) debugf(format string, v ...interface{}) {
	if s.debug {
		log.Printf("[store] "+format, v...)
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
