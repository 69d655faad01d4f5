package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eringen/geopage/sitecfg"
)

const siteColumns = `id, owner_id, name, hobby, email, theme,
    add_music, add_cursor, add_gifs, add_popups, add_rainbow_text,
    bgm_track, sound_effects, heading_font, body_font,
    background_color, text_color, link_color, views, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSite(row rowScanner) (sitecfg.Site, error) {
	var st sitecfg.Site
	var music, cursor, gifs, popups, rainbow, sfx int
	err := row.Scan(
		&st.ID, &st.OwnerID, &st.Name, &st.Hobby, &st.Email, &st.Theme,
		&music, &cursor, &gifs, &popups, &rainbow,
		&st.BGMTrack, &sfx, &st.CustomFonts.Heading, &st.CustomFonts.Body,
		&st.CustomColors.Background, &st.CustomColors.Text, &st.CustomColors.Links,
		&st.Views, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return sitecfg.Site{}, err
	}
	st.AddMusic = music == 1
	st.AddCursor = cursor == 1
	st.AddGifs = gifs == 1
	st.AddPopups = popups == 1
	st.AddRainbowText = rainbow == 1
	st.SoundEffects = sfx == 1
	return st, nil
}

func collectSites(rows *sql.Rows) ([]sitecfg.Site, error) {
	defer rows.Close()
	sites := []sitecfg.Site{}
	for rows.Next() {
		st, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, st)
	}
	return sites, rows.Err()
}

// CreateSite validates cfg and stores it as a new site owned by ownerID.
// Views start at zero and updatedAt equals createdAt.
func (s *Store) CreateSite(ctx context.Context, cfg sitecfg.Config, ownerID string) (string, error) {
	if err := sitecfg.ValidateOwned(cfg, ownerID); err != nil {
		return "", err
	}
	id := uuid.NewString()
	now := s.nowMillis()
	_, err := s.db.ExecContext(ctx, `INSERT INTO sites (`+siteColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		id, ownerID, cfg.Name, cfg.Hobby, cfg.Email, cfg.Theme,
		boolInt(cfg.AddMusic), boolInt(cfg.AddCursor), boolInt(cfg.AddGifs), boolInt(cfg.AddPopups), boolInt(cfg.AddRainbowText),
		cfg.BGMTrack, boolInt(cfg.SoundEffects), cfg.CustomFonts.Heading, cfg.CustomFonts.Body,
		cfg.CustomColors.Background, cfg.CustomColors.Text, cfg.CustomColors.Links,
		now, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert site: %w", err)
	}
	return id, nil
}

// UpdateSite replaces the editable fields of a site owned by ownerID.
// The id, owner, createdAt and views are kept; updatedAt always moves forward.
func (s *Store) UpdateSite(ctx context.Context, id, ownerID string, cfg sitecfg.Config) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	var owner string
	var createdAt, updatedAt int64
	err = tx.QueryRowContext(ctx, `SELECT owner_id, created_at, updated_at FROM sites WHERE id = ?`, id).
		Scan(&owner, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", sitecfg.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load site: %w", err)
	}
	if owner != ownerID {
		return "", sitecfg.ErrUnauthorized
	}
	if err := sitecfg.ValidateOwned(cfg, ownerID); err != nil {
		return "", err
	}

	next := max(s.nowMillis(), updatedAt+1, createdAt)
	_, err = tx.ExecContext(ctx, `UPDATE sites SET
    name = ?, hobby = ?, email = ?, theme = ?,
    add_music = ?, add_cursor = ?, add_gifs = ?, add_popups = ?, add_rainbow_text = ?,
    bgm_track = ?, sound_effects = ?, heading_font = ?, body_font = ?,
    background_color = ?, text_color = ?, link_color = ?, updated_at = ?
WHERE id = ?`,
		cfg.Name, cfg.Hobby, cfg.Email, cfg.Theme,
		boolInt(cfg.AddMusic), boolInt(cfg.AddCursor), boolInt(cfg.AddGifs), boolInt(cfg.AddPopups), boolInt(cfg.AddRainbowText),
		cfg.BGMTrack, boolInt(cfg.SoundEffects), cfg.CustomFonts.Heading, cfg.CustomFonts.Body,
		cfg.CustomColors.Background, cfg.CustomColors.Text, cfg.CustomColors.Links, next,
		id,
	)
	if err != nil {
		return "", fmt.Errorf("update site: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit update: %w", err)
	}
	return id, nil
}

// GetSite returns a site by id, or sitecfg.ErrNotFound.
func (s *Store) GetSite(ctx context.Context, id string) (sitecfg.Site, error) {
	st, err := scanSite(s.db.QueryRowContext(ctx, `SELECT `+siteColumns+` FROM sites WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return sitecfg.Site{}, sitecfg.ErrNotFound
	}
	if err != nil {
		return sitecfg.Site{}, fmt.Errorf("get site: %w", err)
	}
	return st, nil
}

// ListSitesByOwner returns every site of ownerID, newest first.
func (s *Store) ListSitesByOwner(ctx context.Context, ownerID string) ([]sitecfg.Site, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+siteColumns+` FROM sites WHERE owner_id = ? ORDER BY created_at DESC, rowid DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner sites: %w", err)
	}
	return collectSites(rows)
}

// ListSites returns up to limit sites across all owners, newest first.
func (s *Store) ListSites(ctx context.Context, limit int) ([]sitecfg.Site, error) {
	if limit <= 0 {
		return []sitecfg.Site{}, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+siteColumns+` FROM sites ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return collectSites(rows)
}

// IncrementViews adds one to a site's view count. Unknown ids are ignored.
func (s *Store) IncrementViews(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE sites SET views = views + 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}
