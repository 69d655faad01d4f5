package sitecfg

import (
	"strings"
	"unicode"
)

const maxFilenameLen = 50

// SanitizeFilename derives a download-safe base name from a site name:
// only ASCII letters, digits, whitespace and hyphens survive, whitespace and
// hyphen runs become a single hyphen, and the result is lowercased and capped.
// It returns "site" when nothing usable is left.
func SanitizeFilename(name string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(unicode.ToLower(r))
			prevHyphen = false
		case r == '-' || unicode.IsSpace(r):
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if len(s) > maxFilenameLen {
		s = strings.TrimRight(s[:maxFilenameLen], "-")
	}
	if s == "" {
		return "site"
	}
	return s
}

// DownloadName is the attachment filename used for a generated homepage.
func DownloadName(name string) string {
	return SanitizeFilename(name) + "-90s-site.html"
}
