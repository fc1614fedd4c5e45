package wpconfig

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/snippet"
)

// IOError reports a filesystem failure while patching.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf(messages.WPConfigIOErrorFmt, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Patcher edits wp-config.php through a System.
type Patcher struct {
	Sys System
}

// NewPatcher returns a Patcher backed by the real filesystem.
func NewPatcher() *Patcher {
	return &Patcher{Sys: RealSystem{}}
}

// Patch writes the rendered snippet in front of the anchor in path.
// The file is rewritten in place with its existing permissions. Nothing is written
// when the anchor check fails.
func (p *Patcher) Patch(path string, s snippet.Snippet) error {
	_, patched, err := p.plan(path, s)
	if err != nil {
		return err
	}
	info, err := p.sys().Stat(path)
	if err != nil {
		return &IOError{Op: messages.WPConfigStatOp, Path: path, Err: err}
	}
	if err := p.sys().WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return &IOError{Op: messages.WPConfigWriteOp, Path: path, Err: err}
	}
	return nil
}

// Preview returns a unified diff of the change Patch would make, without writing.
func (p *Patcher) Preview(path string, s snippet.Snippet) (string, error) {
	content, patched, err := p.plan(path, s)
	if err != nil {
		return "", err
	}
	name := filepath.Base(path)
	return udiff.Unified(
		fmt.Sprintf(messages.WPConfigDiffCurrentFmt, name),
		fmt.Sprintf(messages.WPConfigDiffPatchedFmt, name),
		content,
		patched,
	), nil
}

// AlreadyConfigured reports whether path already defines the snippet's enable constant.
func (p *Patcher) AlreadyConfigured(path string) (bool, error) {
	data, err := p.sys().ReadFile(path)
	if err != nil {
		return false, &IOError{Op: messages.WPConfigReadOp, Path: path, Err: err}
	}
	return snippet.Defined(string(data), snippet.EnableConstant), nil
}

func (p *Patcher) plan(path string, s snippet.Snippet) (string, string, error) {
	data, err := p.sys().ReadFile(path)
	if err != nil {
		return "", "", &IOError{Op: messages.WPConfigReadOp, Path: path, Err: err}
	}
	content := string(data)
	patched, err := Insert(content, Render(s))
	if err != nil {
		return "", "", fmt.Errorf(messages.WPConfigAnchorErrFmt, path, err)
	}
	return content, patched, nil
}

func (p *Patcher) sys() System {
	if p == nil || p.Sys == nil {
		return RealSystem{}
	}
	return p.Sys
}

// IsAnchorError reports whether err came from a missing or repeated anchor.
func IsAnchorError(err error) bool {
	return errors.Is(err, ErrAnchorNotFound) || errors.Is(err, ErrAmbiguousAnchor)
}
