package sitegen

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/geopage/sitecfg"
)

type constSource int

func (c constSource) IntN(n int) int { return int(c) % n }

var fixedNow = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

func fixedGenerator(v int) *Generator {
	return New(WithRandom(constSource(v)), WithClock(func() time.Time { return fixedNow }))
}

func baseConfig() sitecfg.Config {
	return sitecfg.Config{Name: "Jen", Hobby: "bracelets", Theme: "neon"}
}

// allConfigs enumerates themes, toggles and optional fields.
func allConfigs() []sitecfg.Config {
	var out []sitecfg.Config
	themes := append(ThemeNames(), "bogus", "")
	for i, theme := range themes {
		for mask := 0; mask < 1<<7; mask++ {
			cfg := sitecfg.Config{
				Name:           fmt.Sprintf("Zq<b>%d & 'x' \"y\"", i),
				Hobby:          "coding </script> & stuff",
				Theme:          theme,
				AddMusic:       mask&1 != 0,
				AddCursor:      mask&2 != 0,
				AddGifs:        mask&4 != 0,
				AddPopups:      mask&8 != 0,
				AddRainbowText: mask&16 != 0,
				SoundEffects:   mask&32 != 0,
			}
			if mask&64 != 0 {
				cfg.Email = "o'neil&co@example.com"
				cfg.BGMTrack = []string{"midi-game", "midi-chill", "midi-epic", "unknown"}[mask%4]
				cfg.CustomFonts = sitecfg.Fonts{Heading: "Impact, fantasy"}
				cfg.CustomColors = sitecfg.Colors{Text: "#123456", Links: "#abcdef"}
			}
			if mask%3 == 0 {
				cfg.CustomFonts.Body = "Courier New, monospace"
				cfg.CustomColors.Background = "#ff00aa"
			}
			out = append(out, cfg)
		}
	}
	return out
}

func TestGenerateDavesTechCorner(t *testing.T) {
	html := Generate(sitecfg.Config{
		Name:  "Dave's Tech Corner & Co.",
		Hobby: "HTML tutorials",
		Theme: "matrix",
	})

	title := regexp.MustCompile(`<title>(.*)</title>`).FindStringSubmatch(html)
	require.Len(t, title, 2)
	assert.Contains(t, title[1], "Dave&#039;s Tech Corner &amp; Co.")
	assert.NotContains(t, html, "<audio")
	assert.NotContains(t, html, "playSound")
	assert.NotContains(t, html, "AudioContext")
	assert.Contains(t, html, "background: linear-gradient(180deg, #001100, #003300);")
	assert.Contains(t, html, "color: #00ff00;")
}

func TestGenerateEscapesUserText(t *testing.T) {
	for _, cfg := range allConfigs() {
		html := fixedGenerator(7).Generate(cfg)

		assert.Contains(t, html, EscapeHTML(cfg.Name))
		assert.Contains(t, html, EscapeHTML(cfg.Hobby))
		assert.NotContains(t, html, cfg.Name)
		assert.NotContains(t, html, cfg.Hobby)
		if cfg.Email != "" {
			assert.Contains(t, html, EscapeHTML(cfg.Email))
			assert.NotContains(t, html, cfg.Email)
			assert.Contains(t, html, `href="mailto:`+EscapeHTML(cfg.Email)+`"`)
		}
	}
}

func TestGenerateFeatureMarkers(t *testing.T) {
	for _, cfg := range allConfigs() {
		html := fixedGenerator(3).Generate(cfg)

		if cfg.BGMTrack != "" {
			assert.Contains(t, html, `<audio id="bgm-player" controls loop`)
			assert.Contains(t, html, TrackURL(cfg.BGMTrack))
			assert.NotContains(t, html, "MIDI Music Playing!")
		} else {
			assert.NotContains(t, html, "<audio")
			assert.Equal(t, cfg.AddMusic, strings.Contains(html, "MIDI Music Playing!"))
		}
		assert.Equal(t, cfg.SoundEffects, strings.Contains(html, "function playSound(frequency, duration)"))
		assert.Equal(t, cfg.AddPopups, strings.Contains(html, "beforeunload"))
		assert.Equal(t, cfg.AddPopups, strings.Contains(html, `id="browser-warning"`))
		assert.Equal(t, cfg.AddGifs, strings.Contains(html, `class="gif-divider"`))
		assert.Equal(t, cfg.AddRainbowText, strings.Contains(html, `<span class="rainbow-text">`))
		assert.Equal(t, cfg.AddCursor, strings.Contains(html, "cursor: url("))

		for _, v := range []string{cfg.CustomFonts.Heading, cfg.CustomFonts.Body, cfg.CustomColors.Background, cfg.CustomColors.Text, cfg.CustomColors.Links} {
			if v != "" {
				assert.Contains(t, html, v)
			}
		}
	}
}

func TestGenerateIsSelfContained(t *testing.T) {
	for _, cfg := range allConfigs() {
		html := fixedGenerator(11).Generate(cfg)

		require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
		for _, tag := range []string{"html", "head", "body"} {
			assert.Equal(t, 1, strings.Count(html, "<"+tag+">"), tag)
			assert.Equal(t, 1, strings.Count(html, "</"+tag+">"), tag)
		}
		assert.Equal(t, 1, strings.Count(html, `<meta charset="UTF-8">`))
		assert.GreaterOrEqual(t, strings.Count(html, "<style>"), 1)
		assert.GreaterOrEqual(t, strings.Count(html, "<script>"), 1)
		assert.Equal(t, strings.Count(html, "<script"), strings.Count(html, "</script>"))
		assert.NotContains(t, html, `<link rel="stylesheet"`)
		assert.NotContains(t, html, "<script src")
	}
}

func TestGenerateThemes(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := LookupTheme(name)
		html := fixedGenerator(1).Generate(sitecfg.Config{Name: "a", Hobby: "b", Theme: name})

		assert.Contains(t, html, "background: "+theme.Background+";", name)
		assert.Contains(t, html, "a {\n            color: "+theme.LinkColor+";", name)
		assert.Contains(t, html, `background-image: url("`+theme.TiledBackground+`");`, name)
		if theme.Pattern != "" {
			assert.Contains(t, html, "background-image: "+theme.Pattern+";", name)
		}
	}
}

func TestGenerateUnknownThemeFallsBackToNeon(t *testing.T) {
	cfg := baseConfig()
	neon := fixedGenerator(5).Generate(cfg)

	cfg.Theme = "definitely-not-a-theme"
	assert.Equal(t, neon, fixedGenerator(5).Generate(cfg))
}

func TestGenerateCustomColorPrecedence(t *testing.T) {
	cfg := sitecfg.Config{Name: "a", Hobby: "b", Theme: "geocities", CustomColors: sitecfg.Colors{Text: "#010203"}}
	html := fixedGenerator(0).Generate(cfg)

	// Mix and match: custom text, theme background and decoration.
	assert.Contains(t, html, "color: #010203;")
	assert.Contains(t, html, "background: #008080;")
	assert.Contains(t, html, "repeating-linear-gradient")
	assert.Contains(t, html, "color: #00ffff;")

	cfg.CustomColors.Background = "#ffb6c1"
	html = fixedGenerator(0).Generate(cfg)
	assert.Contains(t, html, "background: #ffb6c1;")
	assert.NotContains(t, html, "repeating-linear-gradient")
	assert.NotContains(t, html, "background-image")
}

func TestGenerateFontDefaults(t *testing.T) {
	html := fixedGenerator(0).Generate(baseConfig())
	assert.Contains(t, html, "font-family: "+DefaultFont+";")

	cfg := baseConfig()
	cfg.CustomFonts = sitecfg.Fonts{Heading: "Impact, fantasy"}
	html = fixedGenerator(0).Generate(cfg)
	assert.Contains(t, html, "font-family: Impact, fantasy;")
	assert.Contains(t, html, "font-family: "+DefaultFont+";")
}

func TestGenerateCSSValuesCannotEscapeDeclaration(t *testing.T) {
	cfg := baseConfig()
	cfg.CustomColors.Background = "red;}</style><script>alert(1)</script>"
	html := fixedGenerator(0).Generate(cfg)
	assert.Equal(t, 1, strings.Count(html, "</style>"))
	assert.Contains(t, html, "background: red/stylescriptalert(1)/script;")
}

func TestGenerateRandomValues(t *testing.T) {
	g := New(WithRandom(rand.New(rand.NewPCG(42, 7))))
	for i := 0; i < 50; i++ {
		html := g.Generate(baseConfig())

		assert.Regexp(t, `'You are visitor #\d{1,5}'`, html)
		assert.Regexp(t, `YOU ARE VISITOR #\d{1,5} `, html)
		assert.Regexp(t, `My ICQ Number: \d{1,9}<`, html)
		assert.Regexp(t, `<div class="hit-counter">\s+\d{6}\s+</div>`, html)

		found := false
		for _, f := range funFacts {
			if strings.Contains(html, EscapeHTML(f)) {
				found = true
				break
			}
		}
		assert.True(t, found, "no fun fact rendered")
	}
}

func TestGenerateHitCounterIsZeroPadded(t *testing.T) {
	html := fixedGenerator(42).Generate(baseConfig())
	assert.Regexp(t, `<div class="hit-counter">\s+000042\s+</div>`, html)
	assert.Contains(t, html, "'You are visitor #42'")
}

func TestGenerateLastUpdated(t *testing.T) {
	html := fixedGenerator(0).Generate(baseConfig())
	assert.Contains(t, html, "Last updated: 3/5/2024, 2:07:09 PM")
	assert.Contains(t, html, "© 2024 Jen.")

	cfg := baseConfig()
	cfg.CreatedAt = time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC).UnixMilli()
	html = fixedGenerator(0).Generate(cfg)
	assert.Contains(t, html, "Last updated: 12/31/1999, 11:59:00 PM")
	assert.Contains(t, html, "© 2024 Jen.")
}

func TestGenerateContactSection(t *testing.T) {
	cfg := baseConfig()
	cfg.AddPopups = true
	html := fixedGenerator(0).Generate(cfg)
	assert.NotContains(t, html, "Contact Me")
	assert.Contains(t, html, `var contactEmail = "webmaster@geocities.com";`)

	cfg.Email = `x"><script>@evil`
	html = fixedGenerator(0).Generate(cfg)
	assert.Contains(t, html, "Contact Me")
	assert.Contains(t, html, `<a href="mailto:x&quot;&gt;&lt;script&gt;@evil">`)
	assert.Contains(t, html, `var contactEmail = "x\"\u003e\u003cscript\u003e@evil";`)
}

func TestGenerateScriptNameLiteral(t *testing.T) {
	cfg := baseConfig()
	cfg.Name = "Line\nBreak \\ 'quote'"
	html := fixedGenerator(0).Generate(cfg)
	assert.Contains(t, html, `var siteName = "Line\nBreak \\ \u0027quote\u0027";`)
}

func TestComponentRendersDocument(t *testing.T) {
	g := fixedGenerator(9)
	var buf bytes.Buffer
	require.NoError(t, g.Component(baseConfig()).Render(context.Background(), &buf))
	assert.Equal(t, g.Generate(baseConfig()), buf.String())
}

func TestGenerateConcurrentUse(t *testing.T) {
	done := make(chan string, 16)
	for i := 0; i < cap(done); i++ {
		go func() {
			done <- Generate(baseConfig())
		}()
	}
	for i := 0; i < cap(done); i++ {
		assert.True(t, strings.HasPrefix(<-done, "<!DOCTYPE html>"))
	}
}
