package views

import (
	"html/template"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/eringen/geopage/sitecfg"
	"github.com/eringen/geopage/sitegen"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PathEscape wraps url.PathEscape for use in templates.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// WebsiteJSONLD produces a Schema.org WebSite object. html/template encodes
// it as JSON inside the ld+json script.
func WebsiteJSONLD(site SiteInfo) map[string]any {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      buildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	return data
}

// PersonalSiteJSONLD produces a Schema.org WebPage object for a stored site.
func PersonalSiteJSONLD(site SiteInfo, rec sitecfg.Site) map[string]any {
	pageURL := buildURL(site.URL, "site", rec.ID)
	return map[string]any{
		"@context":     "https://schema.org",
		"@type":        "WebPage",
		"name":         rec.Name + "'s Awesome Homepage!",
		"about":        rec.Hobby,
		"url":          pageURL,
		"dateCreated":  time.UnixMilli(rec.CreatedAt).UTC().Format(time.RFC3339),
		"dateModified": time.UnixMilli(rec.UpdatedAt).UTC().Format(time.RFC3339),
		"isPartOf": map[string]string{
			"@type": "WebSite",
			"name":  site.Name,
		},
	}
}

// formatDate renders epoch milliseconds as a short UTC date.
func formatDate(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("Jan 2, 2006")
}

// formatDateTime renders epoch milliseconds as a UTC date and time.
func formatDateTime(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("Jan 2, 2006 15:04 UTC")
}

// themeSwatch is the inline style of a gallery card header.
func themeSwatch(cfg sitecfg.Config) template.CSS {
	th := sitegen.LookupTheme(cfg.Theme)
	bg := th.HeaderBg
	if cfg.CustomColors.Background != "" {
		bg = cfg.CustomColors.Background
	}
	fg := th.TextColor
	if cfg.CustomColors.Text != "" {
		fg = cfg.CustomColors.Text
	}
	return template.CSS("background: " + cssSafe(bg) + "; color: " + cssSafe(fg) + ";")
}

func cssSafe(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '{', '}', ';', '"', '\'', '\\':
			return -1
		}
		return r
	}, v)
}

var funcs = template.FuncMap{
	"siteURL": func(site SiteInfo, segments ...string) string {
		return buildURL(site.URL, segments...)
	},
	"pathEscape":     PathEscape,
	"websiteJSONLD":  WebsiteJSONLD,
	"siteJSONLD":     PersonalSiteJSONLD,
	"date":           formatDate,
	"dateTime":       formatDateTime,
	"swatch":         themeSwatch,
	"plural":         plural,
	"presetSelected": presetSelected,
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// presetSelected reports whether cfg still matches a preset, so the form
// can highlight it.
func presetSelected(p sitecfg.PresetInfo, cfg sitecfg.Config) bool {
	cfg.CreatedAt = 0
	return p.Config == cfg
}
