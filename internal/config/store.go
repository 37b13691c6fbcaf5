package config

import (
	"sort"
	"sync"

	"github.com/watchfire-io/scratchpad/internal/log"
)

// KeyValue is flat string persistence keyed by fixed names.
type KeyValue interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// storageFile is the on-disk layout of storage.yaml.
type storageFile struct {
	Version int               `yaml:"version"`
	Values  map[string]string `yaml:"values"`
}

func newStorageFile() *storageFile {
	return &storageFile{Version: 1, Values: map[string]string{}}
}

// Store is a KeyValue backed by a single YAML file. Every mutation is
// written through to disk.
type Store struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// OpenStore loads the store at path. A missing file yields an empty store;
// an unreadable or corrupt file is logged and treated as empty.
func OpenStore(path string) *Store {
	f, err := LoadYAMLOrDefault(path, newStorageFile)
	if err != nil {
		log.GetLogger().Warnf("Discarding unreadable storage: %v", err)
		f = newStorageFile()
	}
	if f.Values == nil {
		f.Values = map[string]string{}
	}
	return &Store{path: path, values: f.Values}
}

// OpenDefaultStore opens ~/.scratchpad/storage.yaml.
func OpenDefaultStore() (*Store, error) {
	path, err := GlobalStorageFile()
	if err != nil {
		return nil, err
	}
	return OpenStore(path), nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.values[key]; ok && old == value {
		return nil
	}
	s.values[key] = value
	return s.flushLocked()
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flushLocked()
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) flushLocked() error {
	return SaveYAML(s.path, &storageFile{Version: 1, Values: s.values})
}
