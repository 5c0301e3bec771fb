package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"delve/pkg/engine/world"
)

// PostgresStore keeps levels in a PostgreSQL table as JSONB
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and creates the schema
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS levels (
		name TEXT PRIMARY KEY,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		state JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := ps.db.Exec(schema)
	return err
}

// SaveLevel upserts s under name
func (ps *PostgresStore) SaveLevel(name string, s *world.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal level: %w", err)
	}

	query := `
	INSERT INTO levels (name, width, height, state)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (name)
	DO UPDATE SET width = $2, height = $3, state = $4, updated_at = NOW()
	`
	if _, err := ps.db.Exec(query, name, s.Width, s.Height, string(data)); err != nil {
		return fmt.Errorf("failed to save level: %w", err)
	}
	return nil
}

// LoadLevel returns the level saved under name
func (ps *PostgresStore) LoadLevel(name string) (*world.State, error) {
	var data string
	err := ps.db.QueryRow(`SELECT state FROM levels WHERE name = $1`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}

	var s world.State
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	return &s, nil
}

// ListLevels returns the saved level names in order
func (ps *PostgresStore) ListLevels() ([]string, error) {
	rows, err := ps.db.Query(`SELECT name FROM levels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
