package geopage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/geopage/sitecfg"
)

func TestBuildSitemap(t *testing.T) {
	older := time.Date(1999, 1, 2, 0, 0, 0, 0, time.UTC).UnixMilli()
	newer := time.Date(2001, 6, 7, 0, 0, 0, 0, time.UTC).UnixMilli()
	entries := []GalleryEntry{
		{Site: sitecfg.Site{ID: "quiet", UpdatedAt: older}},
		{Site: sitecfg.Site{ID: "busy", UpdatedAt: newer}, GuestbookCount: 3},
	}

	set := buildSitemap("https://geopage.example", entries)
	require.Len(t, set.URLs, 4)

	home, gallery := set.URLs[0], set.URLs[1]
	assert.Equal(t, "https://geopage.example", home.Loc)
	assert.Empty(t, home.LastMod)
	assert.Equal(t, "https://geopage.example/gallery/", gallery.Loc)
	assert.Equal(t, "2001-06-07", gallery.LastMod)

	quiet, busy := set.URLs[2], set.URLs[3]
	assert.Equal(t, "https://geopage.example/site/quiet/", quiet.Loc)
	assert.Equal(t, "1999-01-02", quiet.LastMod)
	assert.Equal(t, "monthly", quiet.ChangeFreq)
	assert.Equal(t, "daily", busy.ChangeFreq)
}

func TestBuildSitemapEmptyGallery(t *testing.T) {
	set := buildSitemap("https://geopage.example", nil)
	require.Len(t, set.URLs, 2)
	assert.Empty(t, set.URLs[1].LastMod)
}
