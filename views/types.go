package views

import (
	"github.com/eringen/geopage/sitecfg"
	"github.com/eringen/geopage/sitegen"
)

// SiteInfo holds host-wide settings every page needs.
type SiteInfo struct {
	Name        string
	URL         string
	Description string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// FormPage is the generator form, used both for new sites and edits.
type FormPage struct {
	Site    SiteInfo
	Meta    PageMeta
	CSRF    string
	Config  sitecfg.Config
	Errors  []string
	Presets []sitecfg.PresetInfo
	Themes  []string
	Tracks  []sitegen.Track
	// EditingID is set when the form edits an existing site.
	EditingID string
}

// SitePage shows one persisted site with its guestbook.
type SitePage struct {
	Site           SiteInfo
	Meta           PageMeta
	CSRF           string
	Record         sitecfg.Site
	Document       string
	Entries        []sitecfg.GuestbookEntry
	EntryCount     int
	EntryErrors    []string
	EntryDraft     sitecfg.GuestbookEntry
	IsOwner        bool
	DownloadName   string
	GuestbookLimit int
}

// SiteCard is one site in a listing.
type SiteCard struct {
	Record         sitecfg.Site
	GuestbookCount int
}

// ListPage is the gallery and the "my sites" page.
type ListPage struct {
	Site    SiteInfo
	Meta    PageMeta
	Heading string
	Empty   string
	Cards   []SiteCard
}
