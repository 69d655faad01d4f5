package sitecfg

// PresetInfo is a ready-made configuration offered on the generator form.
type PresetInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Config      Config `json:"config"`
}

var presets = []PresetInfo{
	{
		ID:          "gamer",
		Name:        "90s Gamer Kid",
		Description: "N64, Pokemon cards, and Mountain Dew",
		Emoji:       "🎮",
		Config: Config{
			Name:           "xXCoolGamer99Xx",
			Hobby:          "Playing N64 and collecting Pokemon cards",
			Email:          "coolgamer@hotmail.com",
			Theme:          "space",
			AddMusic:       true,
			AddCursor:      true,
			AddGifs:        true,
			AddPopups:      true,
			AddRainbowText: true,
			BGMTrack:       "midi-game",
			SoundEffects:   true,
			CustomFonts:    Fonts{Heading: "Impact, fantasy", Body: "Courier New, monospace"},
		},
	},
	{
		ID:          "geocities",
		Name:        "GeoCities Classic",
		Description: "Friendship bracelets and boy bands",
		Emoji:       "💖",
		Config: Config{
			Name:         "Jennifer's Homepage",
			Hobby:        "Making friendship bracelets and listening to BSB",
			Email:        "jen_4ever@yahoo.com",
			Theme:        "geocities",
			AddMusic:     true,
			AddCursor:    true,
			AddGifs:      true,
			AddPopups:    true,
			BGMTrack:     "midi-chill",
			CustomColors: Colors{Background: "#ffb6c1", Text: "#ff1493", Links: "#9370db"},
		},
	},
	{
		ID:          "webmaster",
		Name:        "Webmaster Pro",
		Description: "HTML tutorials and web design tips",
		Emoji:       "💻",
		Config: Config{
			Name:         "Dave's Tech Corner",
			Hobby:        "HTML tutorials and web design",
			Email:        "webmaster@dave.com",
			Theme:        "matrix",
			CustomFonts:  Fonts{Heading: "Courier New, monospace", Body: "Courier New, monospace"},
			CustomColors: Colors{Background: "#000000", Text: "#00ff00", Links: "#00ff00"},
		},
	},
	{
		ID:          "fanpage",
		Name:        "Ultimate Fan Page",
		Description: "Dedicated to your favorite band/show",
		Emoji:       "⭐",
		Config: Config{
			Name:           "Backstreet Boys Forever",
			Hobby:          "BSB fan since 1997! I ❤️ Nick Carter",
			Email:          "bsb_fan_4life@aol.com",
			Theme:          "rainbow",
			AddMusic:       true,
			AddCursor:      true,
			AddGifs:        true,
			AddPopups:      true,
			AddRainbowText: true,
			BGMTrack:       "midi-epic",
			SoundEffects:   true,
		},
	},
	{
		ID:          "hacker",
		Name:        "Elite Hacker",
		Description: "1337 h4x0r vibes",
		Emoji:       "🔓",
		Config: Config{
			Name:         "Th3_Gh0st",
			Hobby:        "Hacking the Gibson and phreaking",
			Email:        "elite_hacker@underground.net",
			Theme:        "matrix",
			AddCursor:    true,
			AddPopups:    true,
			SoundEffects: true,
			CustomFonts:  Fonts{Heading: "Courier New, monospace", Body: "Courier New, monospace"},
		},
	},
	{
		ID:          "angelfire",
		Name:        "Angelfire Special",
		Description: "Poetry, quotes, and deep thoughts",
		Emoji:       "🌙",
		Config: Config{
			Name:           "Sarah's Sanctuary",
			Hobby:          "Writing poetry and collecting inspirational quotes",
			Email:          "dreamer_girl@angelfire.com",
			Theme:          "angelfire",
			AddMusic:       true,
			AddCursor:      true,
			AddGifs:        true,
			AddRainbowText: true,
			BGMTrack:       "midi-chill",
			CustomColors:   Colors{Background: "#4b0082", Text: "#dda0dd", Links: "#ffd700"},
		},
	},
}

// Presets returns a copy of the built-in presets in display order.
func Presets() []PresetInfo {
	out := make([]PresetInfo, len(presets))
	copy(out, presets)
	return out
}

// Preset looks up a preset by id.
func Preset(id string) (PresetInfo, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return PresetInfo{}, false
}
