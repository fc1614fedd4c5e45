// Package snippet builds the block of PHP constant definitions that points the
// WordPress HTTP layer at a local proxy.
package snippet

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Constant names read by the WordPress HTTP API.
const (
	EnableConstant      = "WP_PROXY"
	HostConstant        = "WP_PROXY_HOST"
	PortConstant        = "WP_PROXY_PORT"
	BypassHostsConstant = "WP_PROXY_BYPASS_HOSTS"
	UsernameConstant    = "WP_PROXY_USERNAME"
	PasswordConstant    = "WP_PROXY_PASSWORD"
)

// Default values for the proxy constants.
const (
	DefaultHost        = "127.0.0.1"
	DefaultPort        = "9090"
	DefaultBypassHosts = "127.0.0.1"
)

// Declaration is one named constant in a snippet.
type Declaration struct {
	Name  string
	Value Value
}

// Snippet is an ordered, immutable set of constant declarations.
type Snippet struct {
	decls []Declaration
}

// Defaults returns the default proxy declarations in render order.
func Defaults() []Declaration {
	return []Declaration{
		{Name: EnableConstant, Value: Bool(true)},
		{Name: HostConstant, Value: String(DefaultHost)},
		{Name: PortConstant, Value: String(DefaultPort)},
		{Name: BypassHostsConstant, Value: String(DefaultBypassHosts)},
		{Name: UsernameConstant, Value: String("")},
		{Name: PasswordConstant, Value: String("")},
	}
}

// New returns a snippet holding a copy of decls.
func New(decls ...Declaration) Snippet {
	return Snippet{decls: append([]Declaration(nil), decls...)}
}

// Build returns the default proxy snippet.
func Build() Snippet {
	return New(Defaults()...)
}

// Declarations returns a copy of the declarations in order.
func (s Snippet) Declarations() []Declaration {
	return append([]Declaration(nil), s.decls...)
}

// Lookup returns the value declared for name.
func (s Snippet) Lookup(name string) (Value, bool) {
	for _, d := range s.decls {
		if d.Name == name {
			return d.Value, true
		}
	}
	return Value{}, false
}

// Render returns the PHP source for the snippet. Declarations other than
// EnableConstant are guarded by it when the snippet declares it.
func (s Snippet) Render() string {
	var b strings.Builder
	var guarded []Declaration
	_, hasEnable := s.Lookup(EnableConstant)
	for _, d := range s.decls {
		if hasEnable && d.Name != EnableConstant {
			guarded = append(guarded, d)
			continue
		}
		writeDefine(&b, "", d)
	}
	if len(guarded) > 0 {
		fmt.Fprintf(&b, "if ( %s ) {\n", EnableConstant)
		for _, d := range guarded {
			writeDefine(&b, "\t", d)
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// Present returns the names of the snippet's constants that content already defines.
func (s Snippet) Present(content string) []string {
	var names []string
	for _, d := range s.decls {
		if Defined(content, d.Name) {
			names = append(names, d.Name)
		}
	}
	return names
}

func writeDefine(b *strings.Builder, indent string, d Declaration) {
	fmt.Fprintf(b, "%sdefine( '%s', %s );\n", indent, d.Name, d.Value.Literal())
}

var definePatterns sync.Map

// Defined reports whether content contains a define() call for name that is
// not behind a line comment. Constant names are case-sensitive; the define
// keyword is not. Block comments are not recognized.
func Defined(content string, name string) bool {
	re := definePattern(name)
	for _, loc := range re.FindAllStringIndex(content, -1) {
		lineStart := strings.LastIndexByte(content[:loc[0]], '\n') + 1
		if !commentedOut(content[lineStart:loc[0]]) {
			return true
		}
	}
	return false
}

func definePattern(name string) *regexp.Regexp {
	if re, ok := definePatterns.Load(name); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`\b(?i:define)\s*\(\s*['"]` + regexp.QuoteMeta(name) + `['"]\s*,`)
	actual, _ := definePatterns.LoadOrStore(name, re)
	return actual.(*regexp.Regexp)
}

// commentedOut reports whether prefix, the text before a match on its line,
// opens a comment.
func commentedOut(prefix string) bool {
	trimmed := strings.TrimSpace(prefix)
	return strings.Contains(prefix, "//") || strings.Contains(prefix, "#") ||
		strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "/*")
}
