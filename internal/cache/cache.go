// Package cache implements the persistent answer cache.
//
// Entries are keyed by exact question text; the unique index on the question
// column is the authoritative enforcement point for the one-entry-per-question
// invariant. Entries never expire: once a question is answered it is served
// from here until it is explicitly deleted.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	_ "modernc.org/sqlite"
)

// Entry is one cached question/answer pair. Type records the question
// category for browsing; it is not part of the lookup key.
type Entry struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Type     string `json:"type"`
}

// Stats reports cache size and hot-path effectiveness.
type Stats struct {
	Entries int64 `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Cache is the SQLite-backed answer store.
type Cache struct {
	db     *sql.DB
	hits   atomic.Int64
	misses atomic.Int64
}

const createCacheTable = `
CREATE TABLE IF NOT EXISTS cache (
	id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
	question TEXT NOT NULL,
	answer TEXT NOT NULL,
	type TEXT NOT NULL
)`

const createQuestionIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS cache_question_unique ON cache (question)`

// Open opens (creating if necessary) the answer database at the given path.
func Open(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	for _, stmt := range []string{createCacheTable, createQuestionIndex} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate cache db: %w", err)
		}
	}

	return &Cache{db: db}, nil
}

// Save inserts the entry unless its question already exists, in which case
// the existing row is left untouched. Insert-if-absent, not upsert.
func (c *Cache) Save(question, answer, qtype string) error {
	_, err := c.db.Exec(
		`INSERT OR IGNORE INTO cache (question, answer, type) VALUES (?, ?, ?)`,
		question, answer, qtype,
	)
	if err != nil {
		return fmt.Errorf("cache save: %w", err)
	}
	return nil
}

// Lookup returns the entry whose question matches exactly, byte for byte.
// No trimming, no case folding.
func (c *Cache) Lookup(question string) (*Entry, bool, error) {
	var e Entry
	err := c.db.QueryRow(
		`SELECT id, question, answer, type FROM cache WHERE question = ?`,
		question,
	).Scan(&e.ID, &e.Question, &e.Answer, &e.Type)

	if errors.Is(err, sql.ErrNoRows) {
		c.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup: %w", err)
	}

	c.hits.Add(1)
	return &e, true, nil
}

// Search returns all entries whose question contains the given substring,
// newest first. Case rules follow the engine default (ASCII-insensitive
// LIKE). Meant for interactive browsing, not the resolution hot path.
func (c *Cache) Search(substring string) ([]Entry, error) {
	rows, err := c.db.Query(
		`SELECT id, question, answer, type FROM cache
		 WHERE question LIKE '%' || ? || '%' ORDER BY id DESC`,
		substring,
	)
	if err != nil {
		return nil, fmt.Errorf("cache search: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// List returns one page of entries ordered by descending id (newest first)
// plus the total entry count for UI paging.
func (c *Cache) List(offset, limit int) ([]Entry, int64, error) {
	var total int64
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM cache`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("cache count: %w", err)
	}

	rows, err := c.db.Query(
		`SELECT id, question, answer, type FROM cache ORDER BY id DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("cache list: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// Delete removes one entry by id. No-op if absent.
func (c *Cache) Delete(id int64) error {
	_, err := c.db.Exec(`DELETE FROM cache WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Clear removes every entry. Irreversible.
func (c *Cache) Clear() error {
	_, err := c.db.Exec(`DELETE FROM cache`)
	if err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}

// Stats returns entry count plus hit/miss counters accumulated since open.
func (c *Cache) Stats() (Stats, error) {
	var count int64
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM cache`).Scan(&count); err != nil {
		return Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	return Stats{
		Entries: count,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.Type); err != nil {
			return nil, fmt.Errorf("cache scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cache rows: %w", err)
	}
	return entries, nil
}
