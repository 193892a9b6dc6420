package glob

// GlobEntry is the materialized output record emitted in object mode (spec
// §3 "Glob entry", §6.4). Path is finalized the way plain string results
// are (absolute/relative, directory mark applied last); Name is the final
// path component.
type GlobEntry struct {
	Path   string
	Name   string
	Dirent *Dirent
	Stats  *Stats
}

// Dirent is the opaque directory-entry view attached to a GlobEntry.
type Dirent struct {
	isFile    bool
	isDir     bool
	isSymlink bool
}

func (d *Dirent) IsFile() bool      { return d != nil && d.isFile }
func (d *Dirent) IsDirectory() bool { return d != nil && d.isDir }
func (d *Dirent) IsSymlink() bool   { return d != nil && d.isSymlink }

// Stats is the frozen stat record from spec §3 "Stats record". Timestamps
// are Unix seconds, matching §6.4's serialization note.
type Stats struct {
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
