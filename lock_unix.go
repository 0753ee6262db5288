//go:build !windows

package whisper

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockShared and unlock implement FileAccess's advisory locking on
// unix-like platforms via flock(2), grounded on the same syscall used by
// quay-claircore/test/integration/lock_unix.go (LOCK_SH as a read gate
// against an exclusive writer) and on golang.org/x/sys/unix's direct use
// for file locking in other_examples/031b72b6_marmos91-dittofs__pkg-wal-mmap.go.go.
func lockShared(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_SH)
}

func unlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
