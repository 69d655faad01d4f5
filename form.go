package geopage

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/geopage/sitecfg"
	"github.com/eringen/geopage/sitegen"
	"github.com/eringen/geopage/views"
)

// configFromForm reads a draft configuration from the generator form.
// Values are kept as typed so a rejected form can be shown again unchanged.
func configFromForm(c echo.Context) sitecfg.Config {
	checked := func(name string) bool {
		return c.FormValue(name) != ""
	}
	return sitecfg.Config{
		Name:           c.FormValue("name"),
		Hobby:          c.FormValue("hobby"),
		Email:          strings.TrimSpace(c.FormValue("email")),
		Theme:          c.FormValue("theme"),
		AddMusic:       checked("addMusic"),
		AddCursor:      checked("addCursor"),
		AddGifs:        checked("addGifs"),
		AddPopups:      checked("addPopups"),
		AddRainbowText: checked("addRainbowText"),
		BGMTrack:       c.FormValue("bgmTrack"),
		SoundEffects:   checked("soundEffects"),
		CustomFonts: sitecfg.Fonts{
			Heading: strings.TrimSpace(c.FormValue("headingFont")),
			Body:    strings.TrimSpace(c.FormValue("bodyFont")),
		},
		CustomColors: sitecfg.Colors{
			Background: strings.TrimSpace(c.FormValue("backgroundColor")),
			Text:       strings.TrimSpace(c.FormValue("textColor")),
			Links:      strings.TrimSpace(c.FormValue("linkColor")),
		},
	}
}

// entryFromForm reads a guestbook signature.
func entryFromForm(c echo.Context) sitecfg.GuestbookEntry {
	return sitecfg.GuestbookEntry{
		Name:    c.FormValue("name"),
		Message: c.FormValue("message"),
		Email:   c.FormValue("email"),
		Website: c.FormValue("website"),
	}
}

// defaultDraft is the configuration a blank form starts from.
func defaultDraft() sitecfg.Config {
	return sitecfg.Config{Theme: sitegen.DefaultTheme, AddMusic: true, AddCursor: true, AddGifs: true}
}

func (a *App) siteInfo() views.SiteInfo {
	return views.SiteInfo{Name: a.Config.Name, URL: a.Config.URL, Description: a.Config.Description}
}

func (a *App) formPage(c echo.Context, cfg sitecfg.Config, errs []string, editingID string) views.FormPage {
	meta := views.PageMeta{
		Title:       "Build Your 90s Homepage",
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		OGType:      "website",
	}
	if editingID != "" {
		meta.URL = ""
	}
	return views.FormPage{
		Site:      a.siteInfo(),
		Meta:      meta,
		CSRF:      CsrfToken(c),
		Config:    cfg,
		Errors:    errs,
		Presets:   sitecfg.Presets(),
		Themes:    sitegen.ThemeNames(),
		Tracks:    sitegen.Tracks(),
		EditingID: editingID,
	}
}
