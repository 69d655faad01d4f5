package sitecfg

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{Name: "Jen", Hobby: "bracelets", Theme: "geocities"}
}

func TestCheckCollectsAllViolations(t *testing.T) {
	res := Check(Config{Name: "  ", Hobby: "", Theme: "\t"})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Name is required", "Hobby is required", "Theme is required"}, res.Errors)
}

func TestCheckValidConfig(t *testing.T) {
	res := Check(validConfig())
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateStopsAtFirstViolation(t *testing.T) {
	err := Validate(Config{Theme: "neon"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "name", fe.Field)
}

func TestValidateAndCheckAgree(t *testing.T) {
	cases := []Config{
		validConfig(),
		{},
		{Name: "a"},
		{Name: "a", Hobby: "b"},
		{Name: "a", Hobby: "b", Theme: "c", Email: "nope"},
		{Name: "a", Hobby: "b", Theme: "c", Email: "a@b"},
		{Name: " ", Hobby: "b", Theme: "c"},
	}
	for _, c := range cases {
		res := Check(c)
		err := Validate(c)
		if res.Valid != (err == nil) {
			t.Fatalf("Check and Validate disagree for %+v: %v / %v", c, res, err)
		}
		if err != nil && err.Error() != res.Errors[0] {
			t.Fatalf("first error %q, want %q", err.Error(), res.Errors[0])
		}
	}
}

func TestValidateEmail(t *testing.T) {
	cfg := validConfig()
	cfg.Email = "not-an-email"
	err := Validate(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEmail))

	cfg.Email = "@"
	assert.NoError(t, Validate(cfg))
}

func TestValidateOwnedRequiresOwner(t *testing.T) {
	err := ValidateOwned(validConfig(), " ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.NoError(t, ValidateOwned(validConfig(), "owner-1"))
}

func TestValidEmailIsWeak(t *testing.T) {
	assert.True(t, ValidEmail("a@b"))
	assert.True(t, ValidEmail("@@@"))
	assert.True(t, ValidEmail("user@"))
	assert.False(t, ValidEmail("user.example.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidateEntryLengthLaw(t *testing.T) {
	names := []string{"", "   ", "a", " a ", strings.Repeat("n", 50), strings.Repeat("n", 51), "  " + strings.Repeat("é", 50) + "  ", strings.Repeat("é", 51),
		strings.Repeat("🎸", 25), strings.Repeat("🎸", 26), "x" + strings.Repeat("🎸", 25)}
	messages := []string{"", "\n\t", "hi", strings.Repeat("m", 500), strings.Repeat("m", 501), " " + strings.Repeat("ü", 500) + " ",
		strings.Repeat("🌟", 250), strings.Repeat("🌟", 251)}

	for _, name := range names {
		for _, msg := range messages {
			tn := utf16.Encode([]rune(strings.TrimSpace(name)))
			tm := utf16.Encode([]rune(strings.TrimSpace(msg)))
			want := len(tn) >= 1 && len(tn) <= 50 && len(tm) >= 1 && len(tm) <= 500

			got, err := ValidateEntry(GuestbookEntry{Name: name, Message: msg})
			if (err == nil) != want {
				t.Fatalf("ValidateEntry(%q, %q) err = %v, want accept=%v", name, msg, err, want)
			}
			if err == nil {
				assert.Equal(t, strings.TrimSpace(name), got.Name)
				assert.Equal(t, strings.TrimSpace(msg), got.Message)
			}
		}
	}
}

func TestValidateEntryCountsCodeUnits(t *testing.T) {
	// 26 emoji are 52 code units, over the 50 a browser allows in the name field.
	_, err := ValidateEntry(GuestbookEntry{Name: strings.Repeat("😀", 26), Message: "hi"})
	assert.True(t, errors.Is(err, ErrEntryTooLong))

	_, err = ValidateEntry(GuestbookEntry{Name: strings.Repeat("😀", 25), Message: "hi"})
	assert.NoError(t, err)
}

func TestValidateEntryErrorKinds(t *testing.T) {
	_, err := ValidateEntry(GuestbookEntry{Name: " ", Message: "hi"})
	assert.True(t, errors.Is(err, ErrEntryEmpty))

	_, err = ValidateEntry(GuestbookEntry{Name: "bob", Message: strings.Repeat("x", 501)})
	assert.True(t, errors.Is(err, ErrEntryTooLong))
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Dave's Tech Corner & Co.": "daves-tech-corner-co",
		"  --Hello   World--  ":    "hello-world",
		"!!!":                      "site",
		"":                         "site",
		"Ünïcödé name":             "ncd-name",
		strings.Repeat("ab ", 40):  "ab-ab-ab-ab-ab-ab-ab-ab-ab-ab-ab-ab-ab-ab-ab-ab-ab",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
	assert.Equal(t, "jen-90s-site.html", DownloadName("Jen"))
}

func TestPresetsAreValid(t *testing.T) {
	ps := Presets()
	require.Len(t, ps, 6)
	seen := map[string]bool{}
	for _, p := range ps {
		assert.False(t, seen[p.ID], "duplicate preset %s", p.ID)
		seen[p.ID] = true
		assert.NoError(t, Validate(p.Config), p.ID)
	}

	p, ok := Preset("webmaster")
	require.True(t, ok)
	assert.Equal(t, "matrix", p.Config.Theme)

	_, ok = Preset("nope")
	assert.False(t, ok)
}

func TestPresetsReturnsCopy(t *testing.T) {
	ps := Presets()
	ps[0].Config.Name = "changed"
	assert.NotEqual(t, "changed", Presets()[0].Config.Name)
}
