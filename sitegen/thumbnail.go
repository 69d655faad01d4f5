package sitegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	"github.com/eringen/geopage/sitecfg"
)

// Thumbnail bounds.
const (
	MaxThumbnailSize = 640
	thumbGridW       = 8
	thumbGridH       = 6
)

var hexColorRe = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)

var namedColors = map[string]color.RGBA{
	"red":    {0xff, 0x00, 0x00, 0xff},
	"orange": {0xff, 0xa5, 0x00, 0xff},
	"yellow": {0xff, 0xff, 0x00, 0xff},
	"green":  {0x00, 0x80, 0x00, 0xff},
	"blue":   {0x00, 0x00, 0xff, 0xff},
	"indigo": {0x4b, 0x00, 0x82, 0xff},
	"violet": {0xee, 0x82, 0xee, 0xff},
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
}

var thumbFallback = color.RGBA{0x80, 0x80, 0x80, 0xff}

// parseCSSColor picks a representative color from a CSS value: the first hex
// color, else the first known color name, else gray.
func parseCSSColor(v string) color.RGBA {
	if m := hexColorRe.FindString(v); m != "" {
		hex := m[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}
		}
	}
	for _, word := range strings.FieldsFunc(strings.ToLower(v), func(r rune) bool {
		return r == ' ' || r == ',' || r == '(' || r == ')'
	}) {
		if c, ok := namedColors[word]; ok {
			return c
		}
	}
	return thumbFallback
}

// Thumbnail renders a PNG swatch of the page's effective palette: a header
// band, the body background, and text and link stripes.
func Thumbnail(cfg sitecfg.Config, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 || width > MaxThumbnailSize || height > MaxThumbnailSize {
		return nil, fmt.Errorf("thumbnail size %dx%d out of range", width, height)
	}
	theme := LookupTheme(cfg.Theme)
	bg := parseCSSColor(firstNonEmpty(cfg.CustomColors.Background, theme.Background))
	header := parseCSSColor(theme.HeaderBg)
	text := parseCSSColor(firstNonEmpty(cfg.CustomColors.Text, theme.TextColor))
	link := parseCSSColor(firstNonEmpty(cfg.CustomColors.Links, theme.LinkColor))

	grid := image.NewRGBA(image.Rect(0, 0, thumbGridW, thumbGridH))
	draw.Draw(grid, grid.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(grid, image.Rect(0, 0, thumbGridW, 1), image.NewUniform(header), image.Point{}, draw.Src)
	draw.Draw(grid, image.Rect(1, 2, thumbGridW-1, 3), image.NewUniform(text), image.Point{}, draw.Src)
	draw.Draw(grid, image.Rect(1, 4, thumbGridW/2, 5), image.NewUniform(link), image.Point{}, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), grid, grid.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
