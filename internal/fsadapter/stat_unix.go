//go:build !windows

package fsadapter

import (
	"os"
	"syscall"
)

// statInfoFromFileInfo extracts the unix-specific fields (uid, gid, inode,
// link count) via the syscall.Stat_t embedded in os.FileInfo.Sys(), the
// same build-tag split the teacher uses for process_nix.go /
// process_windows.go. atime/ctime field names differ across unix flavors
// (Atim vs Atimespec), so those are filled in by the per-OS companions in
// stat_atime_*.go.
func statInfoFromFileInfo(fi os.FileInfo) StatInfo {
	s := StatInfo{
		Size:        fi.Size(),
		Mtime:       fi.ModTime().Unix(),
		Mode:        uint32(fi.Mode()),
		IsFile:      fi.Mode().IsRegular(),
		IsDirectory: fi.IsDir(),
		IsSymlink:   fi.Mode()&os.ModeSymlink != 0,
	}
	if sys, ok := fi.Sys().(*syscall.Stat_t); ok {
		s.UID = sys.Uid
		s.GID = sys.Gid
		s.Inode = sys.Ino
		s.Nlink = uint64(sys.Nlink)
		s.Atime, s.Ctime = atimeCtime(sys)
	}
	return s
}
