// Package sitegen turns a site configuration into one self-contained,
// 1990s-styled HTML document.
//
// Generation never fails: unknown themes fall back to neon and unset
// optional fields drop their sections. The only impure inputs are the
// random visitor numbers, the random fact and the clock, and both are
// injectable through Options.
package sitegen

import (
	"context"
	"embed"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"text/template"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/geopage/sitecfg"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// Default fonts and contact address used when the configuration has none.
const (
	DefaultFont         = "'Comic Sans MS', cursive"
	DefaultContactEmail = "webmaster@geocities.com"
)

// Upper bounds (exclusive) of the decorative random numbers.
const (
	maxTitleVisitor   = 99999
	maxMarqueeVisitor = 99999
	maxPagerNumber    = 999999999
	maxHitCounter     = 999999
)

const lastUpdatedLayout = "1/2/2006, 3:04:05 PM"

// Source supplies random integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator renders homepages. The zero value is not usable; call New.
// A Generator is safe for concurrent use when its Source is.
type Generator struct {
	rnd Source
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom replaces the random source.
func WithRandom(src Source) Option {
	return func(g *Generator) {
		g.rnd = src
	}
}

// WithClock replaces the render-time clock.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New returns a Generator using the process-wide random source and time.Now.
func New(opts ...Option) *Generator {
	g := &Generator{rnd: globalSource{}, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate renders cfg with the default Generator.
func Generate(cfg sitecfg.Config) string {
	return defaultGenerator.Generate(cfg)
}

type pageData struct {
	SafeName  string
	SafeHobby string
	SafeEmail string
	JSName    string
	JSEmail   string

	Background      string
	TextColor       string
	LinkColor       string
	HeaderBg        string
	Pattern         string
	TiledBackground string
	HeadingFont     string
	BodyFont        string

	Cursor       bool
	Popups       bool
	RainbowName  bool
	Gifs         bool
	AudioURL     string
	MIDIBanner   bool
	SoundEffects bool

	Fact           string
	TitleVisitor   int
	MarqueeVisitor int
	PagerNumber    int
	HitCounter     string
	LastUpdated    string
	Year           int
	Badges         []badge
}

// resolve applies every default and precedence rule in one place.
func (g *Generator) resolve(cfg sitecfg.Config) pageData {
	theme := LookupTheme(cfg.Theme)
	colors := cfg.CustomColors
	fonts := cfg.CustomFonts

	d := pageData{
		SafeName:  EscapeHTML(cfg.Name),
		SafeHobby: EscapeHTML(cfg.Hobby),
		SafeEmail: EscapeHTML(cfg.Email),
		JSName:    ScriptString(cfg.Name),
		JSEmail:   ScriptString(firstNonEmpty(cfg.Email, DefaultContactEmail)),

		Background:  cssValue(firstNonEmpty(colors.Background, theme.Background)),
		TextColor:   cssValue(firstNonEmpty(colors.Text, theme.TextColor)),
		LinkColor:   cssValue(firstNonEmpty(colors.Links, theme.LinkColor)),
		HeaderBg:    theme.HeaderBg,
		HeadingFont: cssValue(firstNonEmpty(fonts.Heading, DefaultFont)),
		BodyFont:    cssValue(firstNonEmpty(fonts.Body, DefaultFont)),

		Cursor:       cfg.AddCursor,
		Popups:       cfg.AddPopups,
		RainbowName:  cfg.AddRainbowText,
		Gifs:         cfg.AddGifs,
		SoundEffects: cfg.SoundEffects,
		Badges:       badges,
	}

	// A custom flat background is never overdrawn by theme decoration.
	if colors.Background == "" {
		d.Pattern = theme.Pattern
		d.TiledBackground = theme.TiledBackground
	}

	if cfg.BGMTrack != "" {
		d.AudioURL = TrackURL(cfg.BGMTrack)
	} else {
		d.MIDIBanner = cfg.AddMusic
	}

	d.Fact = EscapeHTML(funFacts[g.rnd.IntN(len(funFacts))])
	d.TitleVisitor = g.rnd.IntN(maxTitleVisitor)
	d.MarqueeVisitor = g.rnd.IntN(maxMarqueeVisitor)
	d.PagerNumber = g.rnd.IntN(maxPagerNumber)
	d.HitCounter = fmt.Sprintf("%06d", g.rnd.IntN(maxHitCounter))

	now := g.now()
	updated := now
	if cfg.CreatedAt > 0 {
		updated = time.UnixMilli(cfg.CreatedAt).In(now.Location())
	}
	d.LastUpdated = updated.Format(lastUpdatedLayout)
	d.Year = now.Year()
	return d
}

// Generate renders cfg as a complete HTML document.
func (g *Generator) Generate(cfg sitecfg.Config) string {
	var b strings.Builder
	// The template is checked at init and strings.Builder never fails.
	_ = pageTemplate.Execute(&b, g.resolve(cfg))
	return b.String()
}

// Component wraps the generated document for writers that render templ components.
func (g *Generator) Component(cfg sitecfg.Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, g.Generate(cfg))
		return err
	})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
