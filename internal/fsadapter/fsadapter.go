// Package fsadapter defines the read-only filesystem capability the glob
// engine is built against, the way the teacher CLI injected a logger and an
// API client rather than reaching for os/http directly. A default
// implementation calls the host OS; Memory satisfies the same interface for
// deterministic tests.
package fsadapter

// FS is the single interface the core subsystems consume. It never mutates
// the filesystem: every operation here is a read or a resolve.
type FS interface {
	// Exists reports whether path refers to anything at all (file, dir, or
	// symlink, broken or not).
	Exists(path string) bool
	// IsDirectory reports whether path exists and is a directory (symlinks
	// to directories count).
	IsDirectory(path string) bool
	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) bool
	// ReadFile returns the file contents, or "" if it could not be read.
	// There is no error return: per the spec, read failures are silent at
	// this layer and show up as "no rules" one level up.
	ReadFile(path string) string
	// Glob evaluates a shell-style pattern (brace expansion enabled) rooted
	// at dir and returns absolute paths.
	Glob(dir, pattern string) ([]string, error)
	// Realpath resolves path, following symlinks, or returns "" if it
	// cannot be resolved (missing, cyclic, permission denied).
	Realpath(path string) string
	// Cwd returns the process's current working directory.
	Cwd() (string, error)
	// Lstat returns directory-entry level metadata for path without
	// following a trailing symlink, and a bool reporting whether path was
	// found at all.
	Lstat(path string) (Info, bool)
	// ReadDir lists the immediate children of dir in the implementation's
	// natural order (unspecified by the spec; the matcher does not rely on
	// it beyond pre-order visitation of the directory itself).
	ReadDir(dir string) ([]Info, error)
	// Stat returns the frozen stat fields backing a Stats record (spec §3
	// "Stats record"), constructed by a single stat call, and a bool
	// reporting whether path was found at all.
	Stat(path string) (StatInfo, bool)
}

// StatInfo is the raw field set behind a Stats record, independent of any
// particular host OS's syscall struct layout.
type StatInfo struct {
	Size        int64
	Atime       int64
	Mtime       int64
	Ctime       int64
	Mode        uint32
	UID         uint32
	GID         uint32
	Inode       uint64
	Nlink       uint64
	IsFile      bool
	IsDirectory bool
	IsSymlink   bool
}

// Info is the minimal directory-entry view the matcher and ignore evaluator
// need: enough to classify an entry without a second stat call on the
// common paths.
type Info struct {
	Name        string
	IsDir       bool
	IsSymlink   bool
	SymlinkDead bool // true if IsSymlink and the target does not resolve
}
