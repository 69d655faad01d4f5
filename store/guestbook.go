package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eringen/geopage/sitecfg"
)

// AppendGuestbookEntry validates entry, trims it and appends it to the
// guestbook of siteID with a server-assigned timestamp.
func (s *Store) AppendGuestbookEntry(ctx context.Context, siteID string, entry sitecfg.GuestbookEntry) (string, error) {
	entry, err := sitecfg.ValidateEntry(entry)
	if err != nil {
		return "", err
	}
	var one int
	err = s.db.QueryRowContext(ctx, `SELECT 1 FROM sites WHERE id = ?`, siteID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return "", sitecfg.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("check site: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `INSERT INTO guestbook_entries (id, site_id, name, message, email, website, timestamp) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, siteID, entry.Name, entry.Message, entry.Email, entry.Website, s.nowMillis())
	if err != nil {
		return "", fmt.Errorf("insert guestbook entry: %w", err)
	}
	return id, nil
}

// ListGuestbookEntries returns the newest entries of siteID. A limit outside
// (0, MaxGuestbookEntries] means MaxGuestbookEntries.
func (s *Store) ListGuestbookEntries(ctx context.Context, siteID string, limit int) ([]sitecfg.GuestbookEntry, error) {
	if limit <= 0 || limit > MaxGuestbookEntries {
		limit = MaxGuestbookEntries
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, site_id, name, message, email, website, timestamp
FROM guestbook_entries WHERE site_id = ? ORDER BY timestamp DESC, rowid DESC LIMIT ?`, siteID, limit)
	if err != nil {
		return nil, fmt.Errorf("list guestbook: %w", err)
	}
	defer rows.Close()

	entries := []sitecfg.GuestbookEntry{}
	for rows.Next() {
		var e sitecfg.GuestbookEntry
		if err := rows.Scan(&e.ID, &e.SiteID, &e.Name, &e.Message, &e.Email, &e.Website, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountGuestbookEntries returns the number of entries of siteID.
func (s *Store) CountGuestbookEntries(ctx context.Context, siteID string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM guestbook_entries WHERE site_id = ?`, siteID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count guestbook: %w", err)
	}
	return n, nil
}

// CountGuestbookEntriesBatch counts entries for each site id with one indexed
// lookup per id. Every requested id is present in the result.
func (s *Store) CountGuestbookEntriesBatch(ctx context.Context, siteIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(siteIDs))
	if len(siteIDs) == 0 {
		return counts, nil
	}
	stmt, err := s.db.PrepareContext(ctx, `SELECT COUNT(*) FROM guestbook_entries WHERE site_id = ?`)
	if err != nil {
		return nil, fmt.Errorf("prepare guestbook count: %w", err)
	}
	defer stmt.Close()

	for _, id := range siteIDs {
		if _, done := counts[id]; done {
			continue
		}
		var n int
		if err := stmt.QueryRowContext(ctx, id).Scan(&n); err != nil {
			return nil, fmt.Errorf("count guestbook %s: %w", id, err)
		}
		counts[id] = n
	}
	return counts, nil
}
