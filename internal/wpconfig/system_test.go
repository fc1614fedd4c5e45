package wpconfig

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"time"
)

type fakeSystem struct {
	files    map[string]string
	dirs     map[string]bool
	statErr  map[string]error
	writeErr error
	writes   int
}

func (f *fakeSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErr[name]; ok {
		return nil, err
	}
	if f.dirs[name] {
		return fakeInfo{name: path.Base(name), dir: true}, nil
	}
	if _, ok := f.files[name]; ok {
		return fakeInfo{name: path.Base(name)}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (f *fakeSystem) ReadFile(name string) ([]byte, error) {
	content, ok := f.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

func (f *fakeSystem) WriteFile(name string, data []byte, _ os.FileMode) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if f.files == nil {
		f.files = map[string]string{}
	}
	f.files[name] = string(data)
	f.writes++
	return nil
}

type fakeInfo struct {
	name string
	dir  bool
}

func (i fakeInfo) Name() string { return i.name }
func (i fakeInfo) Size() int64  { return 0 }
func (i fakeInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }

var errPermission = errors.New("permission denied")
