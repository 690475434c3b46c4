package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const catalogVersion = "1"

// CacheManager keeps a YAML index of previously scanned exports so that
// unchanged files are not parsed again
type CacheManager struct {
	cacheDir string
}

// CatalogEntry describes one export in a catalog
type CatalogEntry struct {
	Path     string    `yaml:"path"`
	ModTime  time.Time `yaml:"mod_time"`
	Size     int64     `yaml:"size"`
	Options  Options   `yaml:"options"`
	Driver   string    `yaml:"driver,omitempty"`
	Venue    string    `yaml:"venue,omitempty"`
	Vehicle  string    `yaml:"vehicle,omitempty"`
	Date     string    `yaml:"date,omitempty"`
	Samples  int       `yaml:"samples"`
	Channels int       `yaml:"channels"`
	Duration float64   `yaml:"duration"`
	Error    string    `yaml:"error,omitempty"`
}

// CatalogIndex is the on-disk catalog
type CatalogIndex struct {
	Version   string         `yaml:"version"`
	UpdatedAt time.Time      `yaml:"updated_at"`
	Entries   []CatalogEntry `yaml:"entries"`
}

// NewCacheManager creates a new cache manager
func NewCacheManager(cacheDir string) *CacheManager {
	return &CacheManager{
		cacheDir: cacheDir,
	}
}

// EnsureCacheDir ensures the cache directory exists
func (cm *CacheManager) EnsureCacheDir() error {
	return os.MkdirAll(cm.cacheDir, 0755)
}

// GetIndexPath returns the path to the catalog YAML file
func (cm *CacheManager) GetIndexPath() string {
	return filepath.Join(cm.cacheDir, "catalog.yaml")
}

// GetCacheDir returns the cache directory path
func (cm *CacheManager) GetCacheDir() string {
	return cm.cacheDir
}

// LoadIndex loads the catalog index
func (cm *CacheManager) LoadIndex() (*CatalogIndex, error) {
	data, err := os.ReadFile(cm.GetIndexPath())
	if err != nil {
		return nil, err
	}

	var index CatalogIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index: %w", err)
	}
	if index.Version != catalogVersion {
		return nil, fmt.Errorf("catalog version %q is not supported", index.Version)
	}

	return &index, nil
}

// SaveIndex saves the catalog index
func (cm *CacheManager) SaveIndex(index *CatalogIndex) error {
	if err := cm.EnsureCacheDir(); err != nil {
		return err
	}

	index.Version = catalogVersion
	index.UpdatedAt = time.Now().UTC()
	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	return os.WriteFile(cm.GetIndexPath(), data, 0644)
}

// Lookup returns the cached entry for path if the file is unchanged since it
// was indexed and was parsed with the same options
func (idx *CatalogIndex) Lookup(path string, info os.FileInfo, opts Options) (CatalogEntry, bool) {
	if idx == nil {
		return CatalogEntry{}, false
	}
	for _, e := range idx.Entries {
		if e.Path == path && e.Size == info.Size() && e.ModTime.Equal(info.ModTime()) && e.Options == opts {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// Merge replaces the entries for the paths in fresh and keeps every other entry
func (idx *CatalogIndex) Merge(fresh []CatalogEntry) *CatalogIndex {
	replaced := make(map[string]bool, len(fresh))
	for _, e := range fresh {
		replaced[e.Path] = true
	}

	merged := &CatalogIndex{}
	if idx != nil {
		for _, e := range idx.Entries {
			if !replaced[e.Path] {
				merged.Entries = append(merged.Entries, e)
			}
		}
	}
	merged.Entries = append(merged.Entries, fresh...)
	return merged
}

// ClearCache clears the cache
func (cm *CacheManager) ClearCache() error {
	if err := os.Remove(cm.GetIndexPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// NewCatalogEntry summarizes a loaded document for the catalog
func NewCatalogEntry(path string, info os.FileInfo, doc *Document) CatalogEntry {
	e := CatalogEntry{
		Path:    path,
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}
	if doc == nil {
		return e
	}

	meta := doc.Metadata()
	e.Driver = meta.Lookup("Driver", "Racer")
	e.Venue = meta.Lookup("Venue", "Track")
	e.Vehicle = meta.Lookup("Vehicle", "Car")
	e.Date = meta.Lookup("Log Date", "Date")
	e.Samples = doc.Samples()
	e.Channels = len(doc.Channels())
	e.Duration = doc.Duration()
	return e
}

// BuildCatalog loads every export in paths, reusing cached entries for
// unchanged files parsed with the same options. Files that fail to load are
// recorded with their error. Entries for other paths stay in the index.
func BuildCatalog(cm *CacheManager, paths []string, opts Options) ([]CatalogEntry, error) {
	index, err := cm.LoadIndex()
	if err != nil && !os.IsNotExist(err) {
		LogWarn("Ignoring unreadable catalog: %v", err)
		index = nil
	}

	entries := make([]CatalogEntry, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if e, ok := index.Lookup(path, info, opts); ok {
			LogDebug("catalog hit: %s", path)
			entries = append(entries, e)
			continue
		}

		doc, err := Load(path, opts)
		e := NewCatalogEntry(path, info, doc)
		e.Options = opts
		if err != nil {
			LogWarn("%v", err)
			e.Error = err.Error()
		}
		entries = append(entries, e)
	}

	if err := cm.SaveIndex(index.Merge(entries)); err != nil {
		LogWarn("Failed to save catalog: %v", err)
	}

	return entries, nil
}
