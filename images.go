package geopage

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/geopage/sitegen"
)

const (
	thumbWidth  = 240
	thumbHeight = 180
)

// handleThumbnail serves a PNG palette swatch of a stored site.
// Optional w and h query parameters resize it up to sitegen.MaxThumbnailSize.
func (a *App) handleThumbnail(c echo.Context) error {
	w, err := sizeParam(c, "w", thumbWidth)
	if err != nil {
		return err
	}
	h, err := sizeParam(c, "h", thumbHeight)
	if err != nil {
		return err
	}
	site, err := a.Store.GetSite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.mapError(c, err)
	}
	data, err := sitegen.Thumbnail(site.Config, w, h)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", data)
}

func sizeParam(c echo.Context, name string, fallback int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > sitegen.MaxThumbnailSize {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be between 1 and "+strconv.Itoa(sitegen.MaxThumbnailSize))
	}
	return n, nil
}
