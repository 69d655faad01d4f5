package sitegen

// Theme is a named palette with optional decoration.
type Theme struct {
	Name            string `json:"name"`
	Background      string `json:"background"`
	TextColor       string `json:"textColor"`
	HeaderBg        string `json:"headerBg"`
	LinkColor       string `json:"linkColor"`
	Pattern         string `json:"pattern,omitempty"`         // CSS background-image value, optional
	TiledBackground string `json:"tiledBackground,omitempty"` // data URI, optional
}

// DefaultTheme is used for unknown theme keys.
const DefaultTheme = "neon"

var themeOrder = []string{"neon", "space", "rainbow", "matrix", "geocities", "angelfire"}

var themes = map[string]Theme{
	"neon": {
		Name:            "neon",
		Background:      "linear-gradient(45deg, #ff00ff, #00ffff)",
		TextColor:       "#ffff00",
		HeaderBg:        "#ff00ff",
		LinkColor:       "#00ff00",
		TiledBackground: "data:image/svg+xml,%3Csvg width='50' height='50' xmlns='http://www.w3.org/2000/svg'%3E%3Crect fill='%23ff00ff' width='50' height='50'/%3E%3Cpath d='M25 0L50 25L25 50L0 25z' fill='%2300ffff' opacity='0.3'/%3E%3C/svg%3E",
	},
	"space": {
		Name:            "space",
		Background:      "radial-gradient(circle, #000033, #000000)",
		TextColor:       "#ffffff",
		HeaderBg:        "#ff6600",
		LinkColor:       "#00ccff",
		TiledBackground: "data:image/svg+xml,%3Csvg width='100' height='100' xmlns='http://www.w3.org/2000/svg'%3E%3Crect fill='%23000033' width='100' height='100'/%3E%3Ccircle cx='10' cy='10' r='1' fill='%23ffffff'/%3E%3Ccircle cx='40' cy='30' r='1' fill='%23ffffff'/%3E%3Ccircle cx='70' cy='20' r='1' fill='%23ffffff'/%3E%3Ccircle cx='30' cy='70' r='1' fill='%23ffffff'/%3E%3Ccircle cx='80' cy='80' r='1' fill='%23ffffff'/%3E%3C/svg%3E",
	},
	"rainbow": {
		Name:            "rainbow",
		Background:      "linear-gradient(90deg, red, orange, yellow, green, blue, indigo, violet)",
		TextColor:       "#ffffff",
		HeaderBg:        "#ff1493",
		LinkColor:       "#ffff00",
		TiledBackground: "data:image/svg+xml,%3Csvg width='30' height='30' xmlns='http://www.w3.org/2000/svg'%3E%3Crect fill='%23ff0000' width='10' height='30'/%3E%3Crect fill='%23ffff00' x='10' width='10' height='30'/%3E%3Crect fill='%230000ff' x='20' width='10' height='30'/%3E%3C/svg%3E",
	},
	"matrix": {
		Name:            "matrix",
		Background:      "linear-gradient(180deg, #001100, #003300)",
		TextColor:       "#00ff00",
		HeaderBg:        "#003300",
		LinkColor:       "#00ff00",
		TiledBackground: "data:image/svg+xml,%3Csvg width='20' height='20' xmlns='http://www.w3.org/2000/svg'%3E%3Crect fill='%23001100' width='20' height='20'/%3E%3Ctext x='5' y='15' font-family='monospace' font-size='12' fill='%2300ff00' opacity='0.3'%3E1%3C/text%3E%3C/svg%3E",
	},
	"geocities": {
		Name:            "geocities",
		Background:      "#008080",
		TextColor:       "#ffff00",
		HeaderBg:        "#800080",
		LinkColor:       "#00ffff",
		Pattern:         "repeating-linear-gradient(45deg, #008080 0px, #008080 10px, #006666 10px, #006666 20px)",
		TiledBackground: "data:image/svg+xml,%3Csvg width='60' height='60' xmlns='http://www.w3.org/2000/svg'%3E%3Cpath d='M0 0h60v60H0z' fill='%23008080'/%3E%3Cpath d='M30 0L60 30L30 60L0 30z' fill='%23006666'/%3E%3C/svg%3E",
	},
	"angelfire": {
		Name:            "angelfire",
		Background:      "#000080",
		TextColor:       "#ffffff",
		HeaderBg:        "#ff0000",
		LinkColor:       "#ffff00",
		Pattern:         "radial-gradient(circle at 20% 50%, transparent 0%, transparent 10%, rgba(255,255,255,0.1) 10%, rgba(255,255,255,0.1) 11%, transparent 11%), radial-gradient(circle at 60% 80%, transparent 0%, transparent 10%, rgba(255,255,255,0.1) 10%, rgba(255,255,255,0.1) 11%, transparent 11%)",
		TiledBackground: "data:image/svg+xml,%3Csvg width='40' height='40' xmlns='http://www.w3.org/2000/svg'%3E%3Crect fill='%23000080' width='40' height='40'/%3E%3Ccircle cx='20' cy='20' r='3' fill='%23ffffff' opacity='0.3'/%3E%3C/svg%3E",
	},
}

// LookupTheme returns the theme for key, falling back to neon. It never fails.
func LookupTheme(key string) Theme {
	if t, ok := themes[key]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// IsTheme reports whether key names a defined theme.
func IsTheme(key string) bool {
	_, ok := themes[key]
	return ok
}

// ThemeNames lists the defined theme keys in display order.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}
