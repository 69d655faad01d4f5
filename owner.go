package geopage

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/geopage/sitecfg"
)

func (a *App) handleCreateSite(c echo.Context) error {
	ip := c.RealIP()
	if !a.createLimiter.Check(ip) {
		rateLimitedTotal.WithLabelValues("create").Inc()
		return c.String(http.StatusTooManyRequests, "Too many new sites. Try again later.")
	}
	cfg := configFromForm(c)
	if res := sitecfg.Check(cfg); !res.Valid {
		validationFailuresTotal.WithLabelValues("site").Inc()
		return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Home(a.formPage(c, cfg, res.Errors, "")))
	}

	owner, err := ensureOwner(c)
	if err != nil {
		return err
	}
	id, err := a.Store.CreateSite(c.Request().Context(), cfg, owner)
	if err != nil {
		if isValidationError(err) {
			validationFailuresTotal.WithLabelValues("site").Inc()
			return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Home(a.formPage(c, cfg, []string{fieldMessage(err)}, "")))
		}
		return err
	}
	a.createLimiter.Record(ip)
	sitesCreatedTotal.Inc()
	a.Cache.Invalidate()
	a.Log.Info("site created", zap.String("site_id", id), zap.String("theme", cfg.Theme))
	return c.Redirect(http.StatusSeeOther, "/site/"+id+"/")
}

func (a *App) handleEditSite(c echo.Context) error {
	site, err := a.Store.GetSite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.mapError(c, err)
	}
	if owner := OwnerID(c); owner == "" || owner != site.OwnerID {
		return a.mapError(c, sitecfg.ErrUnauthorized)
	}
	cfg := site.Config
	cfg.CreatedAt = 0
	return Render(c, a.Views.Home(a.formPage(c, cfg, nil, site.ID)))
}

func (a *App) handleUpdateSite(c echo.Context) error {
	id := c.Param("id")
	owner := OwnerID(c)
	if owner == "" {
		return a.mapError(c, sitecfg.ErrUnauthorized)
	}
	cfg := configFromForm(c)
	_, err := a.Store.UpdateSite(c.Request().Context(), id, owner, cfg)
	if err != nil {
		if isValidationError(err) {
			validationFailuresTotal.WithLabelValues("site").Inc()
			return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Home(a.formPage(c, cfg, sitecfg.Check(cfg).Errors, id)))
		}
		return a.mapError(c, err)
	}
	sitesUpdatedTotal.Inc()
	a.Cache.Invalidate()
	a.Log.Info("site updated", zap.String("site_id", id))
	return c.Redirect(http.StatusSeeOther, "/site/"+id+"/")
}

// fieldMessage returns the user-facing message of a validation error.
func fieldMessage(err error) string {
	var fe *sitecfg.FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
