package sitegen

import (
	"strings"

	"github.com/a-h/templ"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML makes s safe for HTML text and quoted attribute values.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// ScriptString encodes s as a quoted JavaScript string literal. The
// encoding is JSON with <, >, & and ' escaped as \uXXXX, so the literal
// cannot end the enclosing script element or an attribute around it.
func ScriptString(s string) string {
	out, err := templ.JSONString(s)
	if err != nil {
		return `""`
	}
	return strings.ReplaceAll(out, "'", `\u0027`)
}

var cssStripper = strings.NewReplacer("<", "", ">", "", "{", "", "}", "", ";", "")

// cssValue keeps a user-supplied color or font inside its declaration.
func cssValue(s string) string {
	return cssStripper.Replace(s)
}
