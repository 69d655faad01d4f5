// Package views renders the host application's pages: the generator form,
// the site detail page with its guestbook, listings, and error pages.
//
// Pages are html/template files embedded in the binary and exposed as
// templ.Components so the HTTP layer renders them like any other component.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{
	"home":  parsePage("home.html"),
	"site":  parsePage("site.html"),
	"list":  parsePage("list.html"),
	"error": parsePage("error.html"),
}

func parsePage(file string) *template.Template {
	return template.Must(template.New(file).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+file))
}

func render(page string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages[page].ExecuteTemplate(w, "layout", data)
	})
}

// Home renders the generator form.
func Home(p FormPage) templ.Component {
	return render("home", p)
}

// SiteDetail renders a stored site inside an iframe next to its guestbook.
func SiteDetail(p SitePage) templ.Component {
	return render("site", p)
}

// Gallery renders the newest sites.
func Gallery(p ListPage) templ.Component {
	if p.Heading == "" {
		p.Heading = "The Gallery"
	}
	if p.Empty == "" {
		p.Empty = "Nobody has published a homepage yet."
	}
	return render("list", p)
}

// MySites renders the sites owned by the current visitor.
func MySites(p ListPage) templ.Component {
	if p.Heading == "" {
		p.Heading = "My Sites"
	}
	if p.Empty == "" {
		p.Empty = "You have not published anything yet."
	}
	return render("list", p)
}

type errorPage struct {
	Site    SiteInfo
	Meta    PageMeta
	Heading string
	Message string
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return render("error", errorPage{
		Heading: "404 - Page Not Found",
		Message: "This page moved to a new server. Or it never existed. Update your bookmarks!",
	})
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return render("error", errorPage{
		Heading: "500 - " + http.StatusText(http.StatusInternalServerError),
		Message: "Our server is under construction. Please try again later.",
	})
}
