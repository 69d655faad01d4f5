package geopage

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

const sitemapDateLayout = "2006-01-02"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// buildSitemap lists the builder, the gallery and every listed homepage.
// The gallery changes whenever any listed site does, so its lastmod is the
// newest site edit. Homepages with a guestbook get new signatures often.
func buildSitemap(base string, entries []GalleryEntry) sitemapURLSet {
	gallery := sitemapURL{Loc: BuildURL(base, "gallery"), ChangeFreq: "hourly", Priority: "0.8"}
	var newest int64
	sites := make([]sitemapURL, 0, len(entries))
	for _, e := range entries {
		newest = max(newest, e.Site.UpdatedAt)
		freq := "monthly"
		if e.GuestbookCount > 0 {
			freq = "daily"
		}
		sites = append(sites, sitemapURL{
			Loc:        BuildURL(base, "site", e.Site.ID),
			LastMod:    millisTime(e.Site.UpdatedAt).Format(sitemapDateLayout),
			ChangeFreq: freq,
			Priority:   "0.5",
		})
	}
	if newest > 0 {
		gallery.LastMod = millisTime(newest).Format(sitemapDateLayout)
	}

	urls := append([]sitemapURL{
		{Loc: BuildURL(base), ChangeFreq: "monthly", Priority: "1.0"},
		gallery,
	}, sites...)
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) renderSitemap(c echo.Context, entries []GalleryEntry) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(buildSitemap(a.Config.URL, entries))
}
