// Package kvstore is a small sqlite-backed key-value store.
// It plays the role the device key-value storage played for the app:
// string keys mapping to string values, shared by the credential store
// and the apontamento log.
package kvstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	createKVTableSQL = `
  CREATE TABLE IF NOT EXISTS kv (
  chave TEXT PRIMARY KEY,
  valor TEXT NOT NULL
  )`

	getValueSQL    = `SELECT valor FROM kv WHERE chave = ?`
	setValueSQL    = `INSERT INTO kv (chave, valor) VALUES (?, ?) ON CONFLICT(chave) DO UPDATE SET valor = excluded.valor`
	deleteValueSQL = `DELETE FROM kv WHERE chave = ?`
)

// Store is a handle to the key-value database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the key-value database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(createKVTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under chave. The second return is false
// when the key is absent.
func (s *Store) Get(chave string) (string, bool, error) {
	var valor string
	err := s.db.QueryRow(getValueSQL, chave).Scan(&valor)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", chave, err)
	}
	return valor, true, nil
}

// Set stores valor under chave, overwriting any prior value.
func (s *Store) Set(chave, valor string) error {
	if _, err := s.db.Exec(setValueSQL, chave, valor); err != nil {
		return fmt.Errorf("writing key %q: %w", chave, err)
	}
	return nil
}

// Delete removes chave. Deleting an absent key is a no-op.
func (s *Store) Delete(chave string) error {
	if _, err := s.db.Exec(deleteValueSQL, chave); err != nil {
		return fmt.Errorf("deleting key %q: %w", chave, err)
	}
	return nil
}
