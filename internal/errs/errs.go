// Package errs defines the tagged error kinds that cross the glob package's
// public surface. Every kind shares the Error marker interface so callers can
// catch them uniformly with errors.As, the way errsystem's errSystem type did
// in the CLI this package was adapted from.
package errs

import (
	"fmt"

	"github.com/google/uuid"
)

// Error is the marker every kind in this package implements.
type Error interface {
	error
	// ID returns the opaque identifier assigned when the error was created,
	// useful for correlating a failure across logs.
	ID() string
	Kind() string
}

type base struct {
	id   string
	kind string
}

func newBase(kind string) base {
	return base{id: uuid.New().String(), kind: kind}
}

func (b base) ID() string   { return b.id }
func (b base) Kind() string { return b.kind }

// DirectoryNotFound is raised when the configured cwd cannot be resolved to
// an existing directory.
type DirectoryNotFound struct {
	base
	Path string
}

func NewDirectoryNotFound(path string) *DirectoryNotFound {
	return &DirectoryNotFound{base: newBase("DirectoryNotFound"), Path: path}
}

func (e *DirectoryNotFound) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

// BrokenSymbolicLink is raised when throwErrorOnBrokenSymbolicLink is set and
// a result entry is a symlink whose target does not exist.
type BrokenSymbolicLink struct {
	base
	Path string
}

func NewBrokenSymbolicLink(path string) *BrokenSymbolicLink {
	return &BrokenSymbolicLink{base: newBase("BrokenSymbolicLink"), Path: path}
}

func (e *BrokenSymbolicLink) Error() string {
	return fmt.Sprintf("broken symbolic link: %s", e.Path)
}

// CannotStatFile is raised when stats are requested for an entry but the
// underlying stat call failed.
type CannotStatFile struct {
	base
	Path string
	Err  error
}

func NewCannotStatFile(path string, err error) *CannotStatFile {
	return &CannotStatFile{base: newBase("CannotStatFile"), Path: path, Err: err}
}

func (e *CannotStatFile) Error() string {
	return fmt.Sprintf("cannot stat file %s: %s", e.Path, e.Err)
}

func (e *CannotStatFile) Unwrap() error { return e.Err }

// FileNotFound is raised by helpers demanding a stronger contract than the
// core traversal (which treats a missing path as an empty result, not an
// error).
type FileNotFound struct {
	base
	Path string
}

func NewFileNotFound(path string) *FileNotFound {
	return &FileNotFound{base: newBase("FileNotFound"), Path: path}
}

func (e *FileNotFound) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// FileUnreadable is raised when a file exists but could not be read.
type FileUnreadable struct {
	base
	Path string
	Err  error
}

func NewFileUnreadable(path string, err error) *FileUnreadable {
	return &FileUnreadable{base: newBase("FileUnreadable"), Path: path, Err: err}
}

func (e *FileUnreadable) Error() string {
	return fmt.Sprintf("file unreadable %s: %s", e.Path, e.Err)
}

func (e *FileUnreadable) Unwrap() error { return e.Err }

// PathNotDirectory is raised when a path is expected to be a directory and
// isn't.
type PathNotDirectory struct {
	base
	Path string
}

func NewPathNotDirectory(path string) *PathNotDirectory {
	return &PathNotDirectory{base: newBase("PathNotDirectory"), Path: path}
}

func (e *PathNotDirectory) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}

// InvalidPattern is raised when an empty pattern is supplied where a
// non-empty one is required.
type InvalidPattern struct {
	base
	Reason string
}

func NewInvalidPattern(reason string) *InvalidPattern {
	return &InvalidPattern{base: newBase("InvalidPattern"), Reason: reason}
}

func (e *InvalidPattern) Error() string {
	return fmt.Sprintf("invalid pattern: %s", e.Reason)
}

// InvalidPatternType is raised when a pattern argument is neither a string
// nor a list of strings.
type InvalidPatternType struct {
	base
	Value any
}

func NewInvalidPatternType(value any) *InvalidPatternType {
	return &InvalidPatternType{base: newBase("InvalidPatternType"), Value: value}
}

func (e *InvalidPatternType) Error() string {
	return fmt.Sprintf("invalid pattern type: %T", e.Value)
}

// TraversalFailed wraps a filesystem error encountered during traversal that
// was not suppressed (suppressErrors is false).
type TraversalFailed struct {
	base
	Path string
	Err  error
}

func NewTraversalFailed(path string, err error) *TraversalFailed {
	return &TraversalFailed{base: newBase("TraversalFailed"), Path: path, Err: err}
}

func (e *TraversalFailed) Error() string {
	return fmt.Sprintf("traversal failed at %s: %s", e.Path, e.Err)
}

func (e *TraversalFailed) Unwrap() error { return e.Err }
