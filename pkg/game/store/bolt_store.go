package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"delve/pkg/engine/world"
)

var levelsBucket = []byte("levels")

// BoltStore keeps levels in an embedded bbolt database, one JSON value per
// level name.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database file at path
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(levelsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// SaveLevel stores s under name
func (bs *BoltStore) SaveLevel(name string, s *world.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal level: %w", err)
	}
	return bs.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(levelsBucket).Put([]byte(name), data)
	})
}

// LoadLevel returns the level saved under name
func (bs *BoltStore) LoadLevel(name string) (*world.State, error) {
	var s world.State
	err := bs.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(levelsBucket).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return json.Unmarshal(data, &s)
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListLevels returns the saved level names in key order
func (bs *BoltStore) ListLevels() ([]string, error) {
	var names []string
	err := bs.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(levelsBucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// Close closes the database
func (bs *BoltStore) Close() error {
	return bs.db.Close()
}
