package geopage

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/geopage/sitecfg"
)

func (a *App) handleSignGuestbook(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	site, err := a.Store.GetSite(ctx, id)
	if err != nil {
		return a.mapError(c, err)
	}
	ip := c.RealIP()
	if !a.guestbookLimiter.Check(ip) {
		rateLimitedTotal.WithLabelValues("guestbook").Inc()
		return c.String(http.StatusTooManyRequests, "Too many signatures. Try again later.")
	}

	draft := entryFromForm(c)
	if _, err := a.Store.AppendGuestbookEntry(ctx, id, draft); err != nil {
		if !isValidationError(err) {
			return a.mapError(c, err)
		}
		validationFailuresTotal.WithLabelValues("guestbook").Inc()
		page, perr := a.sitePage(c, site)
		if perr != nil {
			return perr
		}
		page.EntryErrors = guestbookErrors(draft)
		page.EntryDraft = draft
		return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.SiteDetail(page))
	}

	a.guestbookLimiter.Record(ip)
	guestbookEntriesTotal.Inc()
	a.Cache.Invalidate()
	a.Log.Info("guestbook signed", zap.String("site_id", id))
	return c.Redirect(http.StatusSeeOther, "/site/"+id+"/#guestbook")
}

// guestbookErrors lists every problem with an entry. Each field is checked
// on its own so a form can report both at once.
func guestbookErrors(e sitecfg.GuestbookEntry) []string {
	var errs []string
	if _, err := sitecfg.ValidateEntry(sitecfg.GuestbookEntry{Name: e.Name, Message: "x"}); err != nil {
		errs = append(errs, fieldMessage(err))
	}
	if _, err := sitecfg.ValidateEntry(sitecfg.GuestbookEntry{Name: "x", Message: e.Message}); err != nil {
		errs = append(errs, fieldMessage(err))
	}
	return errs
}
