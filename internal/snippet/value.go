package snippet

import (
	"strconv"
	"strings"
)

// Kind identifies the PHP type of a constant value.
type Kind int

const (
	// KindString is a single-quoted PHP string.
	KindString Kind = iota
	// KindBool is a PHP boolean literal.
	KindBool
)

// Value is a PHP constant value. The zero value is the empty string.
type Value struct {
	kind Kind
	text string
	flag bool
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Kind reports the value type.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the string payload. It is empty for booleans.
func (v Value) Text() string {
	return v.text
}

// Flag returns the boolean payload. It is false for strings.
func (v Value) Flag() bool {
	return v.flag
}

// Literal renders the value as PHP source.
func (v Value) Literal() string {
	if v.kind == KindBool {
		return strconv.FormatBool(v.flag)
	}
	return "'" + quoteReplacer.Replace(v.text) + "'"
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// unquote reverses Literal for a single-quoted PHP string body.
// PHP keeps the backslash of any escape other than \\ and \'.
func unquote(body string) string {
	if !strings.Contains(body, `\`) {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) && (body[i+1] == '\\' || body[i+1] == '\'') {
			b.WriteByte(body[i+1])
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
