//go:build windows

package whisper

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockShared and unlock implement FileAccess's advisory locking on
// Windows via LockFileEx/UnlockFileEx, the sibling GOOS-specific
// subpackage of the golang.org/x/sys module already carried for
// lock_unix.go's flock(2) use.
func lockShared(f *os.File) error {
	ol := new(windows.Overlapped)
	// flags=0 requests a shared lock; the whole file is locked by
	// passing the maximum range in both halves of the byte count.
	return windows.LockFileEx(windows.Handle(f.Fd()), 0, 0, ^uint32(0), ^uint32(0), ol)
}

func unlock(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, ^uint32(0), ^uint32(0), ol)
}
