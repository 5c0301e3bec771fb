package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"delve/pkg/engine/world"
)

// JSONStore keeps every level in a single JSON file
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	fileMu   sync.Mutex // serializes file writes
	levels   map[string]*world.State
}

// NewJSONStore opens the JSON file at filePath, creating it if needed
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		levels:   make(map[string]*world.State),
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else if err := store.saveToFile(); err != nil {
		return nil, fmt.Errorf("failed to create JSON store file: %w", err)
	}

	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	data, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &js.levels)
}

func (js *JSONStore) saveToFile() error {
	js.fileMu.Lock()
	defer js.fileMu.Unlock()

	js.mutex.RLock()
	data, err := json.MarshalIndent(js.levels, "", "  ")
	js.mutex.RUnlock()
	if err != nil {
		return err
	}
	return os.WriteFile(js.filePath, data, 0644)
}

// SaveLevel stores s under name and rewrites the file
func (js *JSONStore) SaveLevel(name string, s *world.State) error {
	js.mutex.Lock()
	js.levels[name] = s
	js.mutex.Unlock()

	return js.saveToFile()
}

// LoadLevel returns the level saved under name
func (js *JSONStore) LoadLevel(name string) (*world.State, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	s, ok := js.levels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s, nil
}

// ListLevels returns the saved level names in order
func (js *JSONStore) ListLevels() ([]string, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	names := make([]string, 0, len(js.levels))
	for name := range js.levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close flushes the file
func (js *JSONStore) Close() error {
	return js.saveToFile()
}
