// Package sitecfg defines the configuration of a generated homepage, the
// persisted site and guestbook records, and the rules that decide which of
// them may be stored.
package sitecfg

// Fonts overrides the decorative default fonts. Empty fields keep the default.
type Fonts struct {
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`
	Body    string `json:"body,omitempty" yaml:"body,omitempty"`
}

// Colors overrides theme colors field by field. Empty fields keep the theme value.
type Colors struct {
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
	Links      string `json:"links,omitempty" yaml:"links,omitempty"`
}

// Config is everything a user chooses about one generated homepage.
// Optional strings use "" for absent.
type Config struct {
	Name  string `json:"name" yaml:"name"`
	Hobby string `json:"hobby" yaml:"hobby"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Theme string `json:"theme" yaml:"theme"`

	AddMusic       bool `json:"addMusic" yaml:"addMusic"`
	AddCursor      bool `json:"addCursor" yaml:"addCursor"`
	AddGifs        bool `json:"addGifs" yaml:"addGifs"`
	AddPopups      bool `json:"addPopups" yaml:"addPopups"`
	AddRainbowText bool `json:"addRainbowText" yaml:"addRainbowText"`

	BGMTrack     string `json:"bgmTrack,omitempty" yaml:"bgmTrack,omitempty"`
	SoundEffects bool   `json:"soundEffects" yaml:"soundEffects"`

	CustomFonts  Fonts  `json:"customFonts" yaml:"customFonts,omitempty"`
	CustomColors Colors `json:"customColors" yaml:"customColors,omitempty"`

	// CreatedAt is epoch milliseconds; zero while previewing.
	CreatedAt int64 `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// Site is a persisted Config plus the metadata assigned by the store.
type Site struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Config
	Views     int64 `json:"views"`
	UpdatedAt int64 `json:"updatedAt"`
}

// GuestbookEntry is a visitor note attached to one site.
type GuestbookEntry struct {
	ID        string `json:"id"`
	SiteID    string `json:"siteId"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
