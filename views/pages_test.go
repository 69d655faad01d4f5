package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/geopage/sitecfg"
	"github.com/eringen/geopage/sitegen"
)

var testSite = SiteInfo{Name: "GeoPage", URL: "https://geopage.example", Description: "Rad homepages"}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func testRecord() sitecfg.Site {
	created := time.Date(1998, 8, 24, 12, 0, 0, 0, time.UTC).UnixMilli()
	return sitecfg.Site{
		ID:      "site-1",
		OwnerID: "owner-1",
		Config: sitecfg.Config{
			Name:      "Dana",
			Hobby:     "origami",
			Theme:     "geocities",
			CreatedAt: created,
		},
		Views:     3,
		UpdatedAt: created,
	}
}

func TestHomeShowsErrorsAndValues(t *testing.T) {
	html := renderString(t, Home(FormPage{
		Site:    testSite,
		CSRF:    "tok",
		Config:  sitecfg.Config{Name: `<b>"Dana"</b>`, Theme: "space"},
		Errors:  []string{"Hobby is required"},
		Presets: sitecfg.Presets(),
		Themes:  sitegen.ThemeNames(),
		Tracks:  sitegen.Tracks(),
	}))

	for _, want := range []string{
		"Hobby is required",
		`value="tok"`,
		`value="&lt;b&gt;&#34;Dana&#34;&lt;/b&gt;"`,
		`<option value="space" selected>`,
		`action="/sites/"`,
		"Publish",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("home page missing %q", want)
		}
	}
	if strings.Contains(html, `<b>"Dana"</b>`) {
		t.Error("name rendered unescaped")
	}
}

func TestHomeEditMode(t *testing.T) {
	html := renderString(t, Home(FormPage{
		Site:      testSite,
		Config:    sitecfg.Config{Name: "Dana", Theme: "neon"},
		Themes:    sitegen.ThemeNames(),
		EditingID: "site-1",
	}))
	if !strings.Contains(html, `action="/sites/site-1/"`) {
		t.Error("edit form should post to the site")
	}
	if !strings.Contains(html, "Save changes") {
		t.Error("edit form should offer Save changes")
	}
	if strings.Contains(html, "Start from a preset") {
		t.Error("presets are hidden while editing")
	}
}

func TestHomeHighlightsMatchingPreset(t *testing.T) {
	p, ok := sitecfg.Preset("gamer")
	if !ok {
		t.Fatal("gamer preset missing")
	}
	html := renderString(t, Home(FormPage{Site: testSite, Config: p.Config, Presets: sitecfg.Presets(), Themes: sitegen.ThemeNames()}))
	if !strings.Contains(html, `class="preset active" href="/?preset=gamer"`) {
		t.Error("matching preset is not highlighted")
	}
}

func TestSiteDetailEmbedsDocument(t *testing.T) {
	rec := testRecord()
	doc := `<!DOCTYPE html><html><body><script>var x = "</script>";</script></body></html>`
	html := renderString(t, SiteDetail(SitePage{
		Site:       testSite,
		Record:     rec,
		Document:   doc,
		EntryCount: 2,
		Entries: []sitecfg.GuestbookEntry{
			{Name: "Eve", Message: "<i>hi</i>", Website: "javascript:alert(1)", Timestamp: rec.CreatedAt},
		},
		IsOwner: true,
	}))

	if strings.Contains(html, doc) {
		t.Fatal("document must be attribute-escaped inside srcdoc")
	}
	if !strings.Contains(html, `srcdoc="&lt;!DOCTYPE html&gt;`) {
		t.Error("srcdoc attribute missing")
	}
	if strings.Contains(html, "<i>hi</i>") {
		t.Error("guestbook message rendered unescaped")
	}
	if strings.Contains(html, `href="javascript:`) {
		t.Error("javascript URL must be neutralised")
	}
	if !strings.Contains(html, "3 visits") {
		t.Error("view count missing")
	}
	if !strings.Contains(html, "Guestbook (2 signatures)") {
		t.Error("signature count missing")
	}
	if !strings.Contains(html, `/sites/site-1/edit/`) {
		t.Error("owner should see the edit link")
	}
	if !strings.Contains(html, `"@type":"WebPage"`) {
		t.Error("page JSON-LD missing")
	}
}

func TestSiteDetailHidesEditForVisitors(t *testing.T) {
	html := renderString(t, SiteDetail(SitePage{Site: testSite, Record: testRecord()}))
	if strings.Contains(html, "/edit/") {
		t.Error("visitors must not see the edit link")
	}
	if !strings.Contains(html, "No signatures yet.") {
		t.Error("empty guestbook message missing")
	}
}

func TestListPages(t *testing.T) {
	html := renderString(t, Gallery(ListPage{Site: testSite}))
	if !strings.Contains(html, "The Gallery") || !strings.Contains(html, "Nobody has published a homepage yet.") {
		t.Error("empty gallery text missing")
	}

	rec := testRecord()
	rec.CustomColors.Background = "red; } body { display:none"
	html = renderString(t, MySites(ListPage{Site: testSite, Cards: []SiteCard{{Record: rec, GuestbookCount: 1}}}))
	if !strings.Contains(html, "My Sites") {
		t.Error("heading missing")
	}
	if !strings.Contains(html, "/site/site-1/thumb.png") {
		t.Error("thumbnail missing")
	}
	if !strings.Contains(html, "1 signature") {
		t.Error("guestbook count missing")
	}
	if strings.Contains(html, "display:none") && strings.Contains(html, "} body {") {
		t.Error("custom color escaped its declaration")
	}
}

func TestErrorPages(t *testing.T) {
	if html := renderString(t, NotFound()); !strings.Contains(html, "404 - Page Not Found") {
		t.Error("404 heading missing")
	}
	if html := renderString(t, ServerError()); !strings.Contains(html, "500 - Internal Server Error") {
		t.Error("500 heading missing")
	}
}

func TestJSONLD(t *testing.T) {
	ld := PersonalSiteJSONLD(testSite, testRecord())
	if ld["url"] != "https://geopage.example/site/site-1/" {
		t.Errorf("url = %v", ld["url"])
	}
	if ld["dateCreated"] != "1998-08-24T12:00:00Z" {
		t.Errorf("dateCreated = %v", ld["dateCreated"])
	}
	if _, ok := WebsiteJSONLD(SiteInfo{Name: "x", URL: "https://a.example"})["description"]; ok {
		t.Error("empty description should be omitted")
	}
}
