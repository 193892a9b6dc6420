package fsadapter

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// OS is the default FS implementation: it calls straight into the host
// operating system, the same role the teacher's default (non-test) API
// client and logger played against the real network and stdout.
type OS struct{}

var _ FS = OS{}

func (OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (OS) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (OS) ReadFile(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(b)
}

// Glob delegates to doublestar so brace expansion and `**` are handled by a
// single well-tested implementation. The pattern matcher does not call it;
// its caller is the ignore evaluator's resolution of glob-shaped
// ignoreFiles entries.
func (OS) Glob(dir, pattern string) ([]string, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(dir, filepath.FromSlash(m)))
	}
	return out, nil
}

func (OS) Realpath(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return ""
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return resolved
	}
	return abs
}

func (OS) Cwd() (string, error) {
	return os.Getwd()
}

func (OS) Lstat(path string) (Info, bool) {
	fi, err := os.Lstat(path)
	if err != nil {
		return Info{}, false
	}
	info := Info{Name: fi.Name(), IsDir: fi.IsDir()}
	if fi.Mode()&os.ModeSymlink != 0 {
		info.IsSymlink = true
		if target, err := os.Stat(path); err != nil {
			info.SymlinkDead = true
		} else {
			info.IsDir = target.IsDir()
		}
	}
	return info, true
}

// Stat constructs a StatInfo from an os.Lstat call. When the entry itself is
// a symlink, a second os.Stat call follows the link so Size/Mode/etc.
// describe the target; a regular entry takes a single stat call.
func (OS) Stat(path string) (StatInfo, bool) {
	fi, err := os.Lstat(path)
	if err != nil {
		return StatInfo{}, false
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		target, err := os.Stat(path)
		if err != nil {
			return StatInfo{IsSymlink: true}, true
		}
		info := statInfoFromFileInfo(target)
		info.IsSymlink = true
		return info, true
	}
	return statInfoFromFileInfo(fi), true
}

func (OS) ReadDir(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(entries))
	for _, e := range entries {
		info := Info{Name: e.Name(), IsDir: e.IsDir()}
		if e.Type()&fs.ModeSymlink != 0 {
			info.IsSymlink = true
			full := filepath.Join(dir, e.Name())
			if target, err := os.Stat(full); err != nil {
				info.SymlinkDead = true
			} else {
				info.IsDir = target.IsDir()
			}
		}
		out = append(out, info)
	}
	return out, nil
}
