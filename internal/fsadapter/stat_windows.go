//go:build windows

package fsadapter

import "os"

// statInfoFromFileInfo on Windows has no uid/gid/inode/nlink/atime/ctime
// equivalents exposed through os.FileInfo.Sys() in a portable way, so
// those fields stay zero, the same tradeoff the teacher's
// process_windows.go makes against a richer unix syscall surface.
func statInfoFromFileInfo(fi os.FileInfo) StatInfo {
	return StatInfo{
		Size:        fi.Size(),
		Mtime:       fi.ModTime().Unix(),
		Mode:        uint32(fi.Mode()),
		IsFile:      fi.Mode().IsRegular(),
		IsDirectory: fi.IsDir(),
		IsSymlink:   fi.Mode()&os.ModeSymlink != 0,
	}
}
