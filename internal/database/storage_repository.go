package database

import (
	"database/sql"
	"fmt"
)

// StorageRepository handles the key-value storage table
type StorageRepository struct{}

// NewStorageRepository creates a new repository instance
func NewStorageRepository() *StorageRepository {
	return &StorageRepository{}
}

// Get returns the value stored under key. The second return value reports
// whether the key was present.
func (r *StorageRepository) Get(key string) (string, bool, error) {
	var value string
	err := DB.Get(&value, "SELECT value FROM storage WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read storage key %q: %v", key, err)
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value
func (r *StorageRepository) Set(key, value string) error {
	var query string
	if Type() == "sqlite" {
		query = `
			INSERT OR REPLACE INTO storage (key, value, updated_at)
			VALUES ($1, $2, CURRENT_TIMESTAMP)
		`
	} else {
		query = `
			INSERT INTO storage (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`
	}
	if _, err := DB.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to write storage key %q: %v", key, err)
	}
	return nil
}

// Delete removes a key from storage
func (r *StorageRepository) Delete(key string) error {
	_, err := DB.Exec("DELETE FROM storage WHERE key = $1", key)
	return err
}
