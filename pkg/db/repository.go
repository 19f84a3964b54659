package db

import (
	"database/sql"
	"fmt"
)

// Repository handles access to the named storage slots.
type Repository struct {
	db *DB
}

// NewRepository creates a new Repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Get reads the slot value under key. The second return value reports
// whether the slot exists.
func (r *Repository) Get(key string) (string, bool, error) {
	query := `SELECT value FROM slots WHERE key = ?`
	row := r.db.QueryRow(query, key)

	var value string
	err := row.Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return value, true, nil
}

// Put writes value under key, replacing any previous content in full.
func (r *Repository) Put(key, value string) error {
	query := `INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	_, err := r.db.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

// Delete removes the slot under key. Deleting a missing slot is not an error.
func (r *Repository) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM slots WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
