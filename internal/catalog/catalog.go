package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry records one downloaded VSIX package.
type Entry struct {
	ID           string    `json:"id"`
	Publisher    string    `json:"publisher"`
	Name         string    `json:"name"`
	DisplayName  string    `json:"displayName"`
	Version      string    `json:"version"`
	FilePath     string    `json:"filePath"`
	FileSize     int64     `json:"fileSize"`
	DownloadedAt time.Time `json:"downloadedAt"`
}

type Catalog struct {
	db *sql.DB
}

func Open(path string) (*Catalog, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping catalog: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("catalog migration error: %w", err)
	}

	return &Catalog{db: db}, nil
}

func createTables(db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS downloads (
		id TEXT PRIMARY KEY,
		publisher TEXT NOT NULL,
		name TEXT NOT NULL,
		display_name TEXT,
		version TEXT NOT NULL,
		file_path TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		downloaded_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_downloads_publisher ON downloads(publisher);
	CREATE INDEX IF NOT EXISTS idx_downloads_downloaded_at ON downloads(downloaded_at);
	`

	_, err := db.Exec(createTableSQL)
	return err
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record upserts an entry. A zero DownloadedAt is stamped with the current
// time.
func (c *Catalog) Record(entry *Entry) error {
	if entry.DownloadedAt.IsZero() {
		entry.DownloadedAt = time.Now().UTC()
	}

	query := `
		INSERT OR REPLACE INTO downloads (
			id, publisher, name, display_name, version, file_path, file_size, downloaded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := c.db.Exec(query,
		entry.ID, entry.Publisher, entry.Name, entry.DisplayName,
		entry.Version, entry.FilePath, entry.FileSize, entry.DownloadedAt,
	)

	return err
}

// Get returns the entry for a "publisher.name" id, or nil when none exists.
func (c *Catalog) Get(id string) (*Entry, error) {
	query := `SELECT id, publisher, name, display_name, version, file_path, file_size, downloaded_at
		FROM downloads WHERE id = ?`

	var entry Entry
	err := c.db.QueryRow(query, id).Scan(
		&entry.ID, &entry.Publisher, &entry.Name, &entry.DisplayName,
		&entry.Version, &entry.FilePath, &entry.FileSize, &entry.DownloadedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

func (c *Catalog) List() ([]Entry, error) {
	query := `SELECT id, publisher, name, display_name, version, file_path, file_size, downloaded_at
		FROM downloads ORDER BY downloaded_at DESC`

	rows, err := c.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		err := rows.Scan(
			&entry.ID, &entry.Publisher, &entry.Name, &entry.DisplayName,
			&entry.Version, &entry.FilePath, &entry.FileSize, &entry.DownloadedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (c *Catalog) Delete(id string) error {
	_, err := c.db.Exec(`DELETE FROM downloads WHERE id = ?`, id)
	return err
}

func (c *Catalog) Count() (int64, error) {
	var total int64
	err := c.db.QueryRow(`SELECT COUNT(*) FROM downloads`).Scan(&total)
	return total, err
}
