//go:build darwin

package fsadapter

import "syscall"

func atimeCtime(sys *syscall.Stat_t) (int64, int64) {
	return sys.Atimespec.Sec, sys.Ctimespec.Sec
}
