package sitegen

// Track is a selectable background music track.
type Track struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// tracks is ordered; the first entry is the fallback for unknown ids.
var tracks = []Track{
	{ID: "midi-game", Label: "Retro Game", URL: "https://www.bensound.com/bensound-music/bensound-retrosoul.mp3"},
	{ID: "midi-chill", Label: "Chill Vibes", URL: "https://www.bensound.com/bensound-music/bensound-sunny.mp3"},
	{ID: "midi-epic", Label: "Epic Adventure", URL: "https://www.bensound.com/bensound-music/bensound-epic.mp3"},
}

// Tracks lists the available tracks.
func Tracks() []Track {
	out := make([]Track, len(tracks))
	copy(out, tracks)
	return out
}

// TrackURL returns the audio URL for id, or the first track's URL.
func TrackURL(id string) string {
	for _, t := range tracks {
		if t.ID == id {
			return t.URL
		}
	}
	return tracks[0].URL
}
