//go:build !windows && !linux && !darwin

package fsadapter

import "syscall"

// Other unix flavors (*bsd, solaris): fall back to zeroed atime/ctime
// rather than guessing a field name that may not exist.
func atimeCtime(_ *syscall.Stat_t) (int64, int64) {
	return 0, 0
}
