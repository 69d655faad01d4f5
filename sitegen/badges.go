package sitegen

import "fmt"

// badge is one of the 88x31 buttons in the footer.
type badge struct {
	Label    string
	Alt      string
	Fill     string
	TextFill string
	Font     string
	Size     int
}

var badges = []badge{
	{"Netscape Now!", "Netscape Now", "000080", "fff", "Arial", 10},
	{"IE 4.0 Ready", "IE 4.0", "ff0000", "fff", "Arial", 10},
	{"800x600", "800x600", "008000", "fff", "Arial", 10},
	{"MIDI Enabled", "MIDI", "800080", "fff", "Arial", 10},
	{"Java Powered", "Java", "ff8c00", "000", "Arial", 10},
	{"Frames Free", "Frames Free", "000", "00ff00", "Courier", 10},
	{"Anti-Microsoft", "Anti-Microsoft", "ffff00", "000", "Arial", 9},
	{"HTML 3.2", "HTML 3.2", "00ffff", "000", "Arial", 10},
	{"GeoCities", "GeoCities", "ff1493", "fff", "Arial", 9},
	{"Made w/ Notepad", "Made with Notepad", "666", "fff", "Courier", 9},
}

// Src is an inline SVG data URI, so the page needs no external images.
func (b badge) Src() string {
	return fmt.Sprintf("data:image/svg+xml,%%3Csvg xmlns='http://www.w3.org/2000/svg' width='88' height='31'%%3E"+
		"%%3Crect fill='%%23%s' width='88' height='31'/%%3E"+
		"%%3Ctext x='44' y='20' text-anchor='middle' fill='%%23%s' font-family='%s' font-size='%d' font-weight='bold'%%3E%s%%3C/text%%3E"+
		"%%3C/svg%%3E", b.Fill, b.TextFill, b.Font, b.Size, b.Label)
}
