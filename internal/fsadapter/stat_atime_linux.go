//go:build linux

package fsadapter

import "syscall"

func atimeCtime(sys *syscall.Stat_t) (int64, int64) {
	return sys.Atim.Sec, sys.Ctim.Sec
}
