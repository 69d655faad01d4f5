package geopage

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/geopage/sitecfg"
	"github.com/eringen/geopage/sitegen"
	"github.com/eringen/geopage/store"
)

// siteJSON is the public form of a site; the owner identity is never exposed.
type siteJSON struct {
	ID string `json:"id"`
	sitecfg.Config
	Views          int64  `json:"views"`
	UpdatedAt      int64  `json:"updatedAt"`
	GuestbookCount int    `json:"guestbookCount"`
	URL            string `json:"url"`
}

func (a *App) handleAPIPresets(c echo.Context) error {
	return c.JSON(http.StatusOK, sitecfg.Presets())
}

func (a *App) handleAPIThemes(c echo.Context) error {
	names := sitegen.ThemeNames()
	out := make([]sitegen.Theme, 0, len(names))
	for _, n := range names {
		out = append(out, sitegen.LookupTheme(n))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"themes": out,
		"tracks": sitegen.Tracks(),
	})
}

// handleAPIValidate reports every rule a configuration breaks without storing it.
func (a *App) handleAPIValidate(c echo.Context) error {
	var cfg sitecfg.Config
	if err := c.Bind(&cfg); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sitecfg.Check(cfg))
}

// handleAPIRender returns the generated document for a JSON configuration.
func (a *App) handleAPIRender(c echo.Context) error {
	var cfg sitecfg.Config
	if err := c.Bind(&cfg); err != nil {
		return err
	}
	rendersTotal.WithLabelValues("api").Inc()
	return c.HTML(http.StatusOK, a.Generator.Generate(cfg))
}

func (a *App) handleAPISite(c echo.Context) error {
	ctx := c.Request().Context()
	site, err := a.Store.GetSite(ctx, c.Param("id"))
	if err != nil {
		return a.apiError(err)
	}
	count, err := a.Store.CountGuestbookEntries(ctx, site.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, siteJSON{
		ID:             site.ID,
		Config:         site.Config,
		Views:          site.Views,
		UpdatedAt:      site.UpdatedAt,
		GuestbookCount: count,
		URL:            BuildURL(a.Config.URL, "site", site.ID),
	})
}

func (a *App) handleAPIGuestbook(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := a.Store.GetSite(ctx, id); err != nil {
		return a.apiError(err)
	}
	limit := store.MaxGuestbookEntries
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a number")
		}
		limit = n
	}
	entries, err := a.Store.ListGuestbookEntries(ctx, id, limit)
	if err != nil {
		return err
	}
	total, err := a.Store.CountGuestbookEntries(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"entries": entries,
		"total":   total,
	})
}

func (a *App) apiError(err error) error {
	switch {
	case errors.Is(err, sitecfg.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "site not found")
	case isValidationError(err):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return err
}
