package glob

import "github.com/globsmith/globsmith/internal/errs"

// The public error types are aliases of internal/errs's tagged kinds so
// callers can declare `var e *glob.DirectoryNotFoundError` and use
// errors.As(err, &e) without reaching into an internal package, the same
// re-export shape the teacher
// uses for its own error codes.
type (
	DirectoryNotFoundError  = errs.DirectoryNotFound
	BrokenSymbolicLinkError = errs.BrokenSymbolicLink
	CannotStatFileError     = errs.CannotStatFile
	FileNotFoundError       = errs.FileNotFound
	FileUnreadableError     = errs.FileUnreadable
	PathNotDirectoryError   = errs.PathNotDirectory
	InvalidPatternError     = errs.InvalidPattern
	InvalidPatternTypeError = errs.InvalidPatternType
	TraversalFailedError    = errs.TraversalFailed
)

// Error is the marker interface every error returned by this package
// implements.
type Error = errs.Error
