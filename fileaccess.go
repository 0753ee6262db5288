package whisper

import "os"

// Options configures how FileAccess opens a Whisper file. The zero value
// disables locking; a nil *Options is treated as DefaultOptions().
type Options struct {
	// Locking, when true, acquires a shared advisory lock on the file
	// for the duration of the scoped session, excluding writers holding
	// an exclusive lock. Default: true.
	Locking bool
}

// DefaultOptions returns the library's default behavior: locking
// enabled, mirroring the teacher's convention of an explicit *Options
// argument (see writer.go's NewWriter(w, opts *WriterOptions)). Passing
// a nil *Options to the readers has the same effect.
func DefaultOptions() *Options {
	return &Options{Locking: true}
}

// runFileAccess opens path read-only, optionally takes a shared advisory
// lock, builds a MappedSliceReader over the whole file, and invokes fn.
// The lock, mapping, and file handle are released on every exit path,
// including a panic unwinding through fn, per spec.md §4.4/§5.
func runFileAccess(path string, opts *Options, fn func(SliceReader) error) (err error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	f, err := os.Open(path)
	if err != nil {
		return newIoError(err)
	}

	locked := false
	if opts.Locking {
		if lockErr := lockShared(f); lockErr != nil {
			_ = f.Close()
			return newIoError(lockErr)
		}
		locked = true
	}

	defer func() {
		if locked {
			_ = unlock(f) // nothing useful to do with an unlock failure
		}
		_ = f.Close()
	}()

	reader, err := NewMappedSliceReader(f)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	return fn(reader)
}

// runDirectFileAccess is the DirectSliceReader counterpart of
// runFileAccess, used by ReadHeader to avoid paying a mapping's
// page-table setup cost for a read of only the metadata region, per
// spec.md §4.7/§9.
func runDirectFileAccess(path string, opts *Options, fn func(SliceReader) error) (err error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	f, err := os.Open(path)
	if err != nil {
		return newIoError(err)
	}

	locked := false
	if opts.Locking {
		if lockErr := lockShared(f); lockErr != nil {
			_ = f.Close()
			return newIoError(lockErr)
		}
		locked = true
	}

	defer func() {
		if locked {
			_ = unlock(f)
		}
		_ = f.Close()
	}()

	return fn(NewDirectSliceReader(f))
}
