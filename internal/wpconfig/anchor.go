// Package wpconfig locates a WordPress wp-config.php and inserts text before
// its "stop editing" comment.
package wpconfig

import (
	"errors"
	"strings"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/snippet"
)

// Anchor marks the end of the user-editable part of wp-config.php.
const Anchor = "/* That's all, stop editing!"

var (
	// ErrAnchorNotFound is returned when the content has no Anchor.
	ErrAnchorNotFound = errors.New(messages.WPConfigAnchorNotFound)
	// ErrAmbiguousAnchor is returned when the content has more than one Anchor.
	ErrAmbiguousAnchor = errors.New(messages.WPConfigAmbiguousAnchor)
)

// Render returns the snippet text exactly as Patch would insert it.
func Render(s snippet.Snippet) string {
	return s.Render()
}

// Split returns the content before and after the single Anchor occurrence.
// The anchor itself belongs to neither part.
func Split(content string) (string, string, error) {
	switch strings.Count(content, Anchor) {
	case 0:
		return "", "", ErrAnchorNotFound
	case 1:
	default:
		return "", "", ErrAmbiguousAnchor
	}
	idx := strings.Index(content, Anchor)
	return content[:idx], content[idx+len(Anchor):], nil
}

// Insert places text immediately before the Anchor.
func Insert(content string, text string) (string, error) {
	before, after, err := Split(content)
	if err != nil {
		return "", err
	}
	return before + text + Anchor + after, nil
}
