package snippet

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/conn-castle/wp-proxy/internal/messages"
)

// ErrEmpty is returned by Parse when the text holds no declarations.
var ErrEmpty = errors.New(messages.SnippetParseEmpty)

var (
	defineRe = regexp.MustCompile(`(?s)^define\(\s*'([A-Za-z_][A-Za-z0-9_]*)'\s*,\s*(true|false|'((?:[^'\\]|\\.)*)')\s*\)\s*;`)
	guardRe  = regexp.MustCompile(`^if\s*\(\s*` + EnableConstant + `\s*\)\s*\{`)
)

// Parse reads back text produced by Snippet.Render.
func Parse(text string) (Snippet, error) {
	var decls []Declaration
	seen := make(map[string]bool)
	pos := 0
	for {
		pos += len(text[pos:]) - len(strings.TrimLeftFunc(text[pos:], unicode.IsSpace))
		if pos >= len(text) {
			break
		}
		rest := text[pos:]
		if loc := guardRe.FindStringIndex(rest); loc != nil {
			pos += loc[1]
			continue
		}
		if rest[0] == '}' {
			pos++
			continue
		}
		m := defineRe.FindStringSubmatchIndex(rest)
		if m == nil {
			return Snippet{}, fmt.Errorf(messages.SnippetParseLineFmt, lineAt(text, pos), firstLine(rest))
		}
		name := rest[m[2]:m[3]]
		if seen[name] {
			return Snippet{}, fmt.Errorf(messages.SnippetParseDuplicateFmt, lineAt(text, pos), name)
		}
		seen[name] = true
		var value Value
		switch literal := rest[m[4]:m[5]]; literal {
		case "true":
			value = Bool(true)
		case "false":
			value = Bool(false)
		default:
			value = String(unquote(rest[m[6]:m[7]]))
		}
		decls = append(decls, Declaration{Name: name, Value: value})
		pos += m[1]
	}
	if len(decls) == 0 {
		return Snippet{}, ErrEmpty
	}
	return New(decls...), nil
}

func lineAt(text string, pos int) int {
	return strings.Count(text[:pos], "\n") + 1
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
