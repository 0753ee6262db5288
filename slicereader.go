package whisper

import (
	"io"
	"os"

	mmap "github.com/dolthub/mmap-go"
)

// SliceReader exposes a byte range of an open file to a caller-supplied
// consumer without the consumer knowing which backing strategy produced
// the slice, per spec.md's SliceReader contract. The consumer's slice
// observes exactly the requested range; a short read is an error, never
// a silently truncated slice.
type SliceReader interface {
	// ConsumeAll passes the whole file to fn.
	ConsumeAll(fn func([]byte) error) error
	// ConsumeFrom passes [offset, end of file) to fn.
	ConsumeFrom(offset int64, fn func([]byte) error) error
	// Consume passes exactly [offset, offset+length) to fn.
	Consume(offset, length int64, fn func([]byte) error) error
}

// MappedSliceReader backs SliceReader with a whole-file memory mapping,
// built on github.com/dolthub/mmap-go. Slicing is O(1): every Consume*
// call is a bounds check plus a sub-slice of the mapping. Preferred for
// whole-file or random-access reads such as ReadRange's archive-body
// fetch, per spec.md §4.3/§9.
type MappedSliceReader struct {
	data mmap.MMap
}

// NewMappedSliceReader maps f's current contents read-only. The caller
// is responsible for closing f; the mapping does not keep f open.
func NewMappedSliceReader(f *os.File) (*MappedSliceReader, error) {
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, newIoError(err)
	}
	return &MappedSliceReader{data: m}, nil
}

// Close unmaps the backing region.
func (r *MappedSliceReader) Close() error {
	if r.data == nil {
		return nil
	}
	err := r.data.Unmap()
	r.data = nil
	if err != nil {
		return newIoError(err)
	}
	return nil
}

func (r *MappedSliceReader) ConsumeAll(fn func([]byte) error) error {
	return fn(r.data)
}

func (r *MappedSliceReader) ConsumeFrom(offset int64, fn func([]byte) error) error {
	if offset < 0 || offset > int64(len(r.data)) {
		return newError(IoError, "offset out of range")
	}
	return fn(r.data[offset:])
}

func (r *MappedSliceReader) Consume(offset, length int64, fn func([]byte) error) error {
	if offset < 0 || length < 0 || offset+length > int64(len(r.data)) {
		return newError(IoError, "range out of bounds")
	}
	return fn(r.data[offset : offset+length])
}

// DirectSliceReader backs SliceReader with seek+read against an
// io.ReadSeeker and a growable internal buffer, re-read on every call.
// Preferred for reading only a small header out of a large file, where
// the page-table setup cost of a mapping would dominate, per spec.md
// §4.3/§9.
type DirectSliceReader struct {
	r   io.ReadSeeker
	buf []byte
}

// NewDirectSliceReader wraps r. r is not closed by the reader.
func NewDirectSliceReader(r io.ReadSeeker) *DirectSliceReader {
	return &DirectSliceReader{r: r}
}

func (r *DirectSliceReader) ConsumeAll(fn func([]byte) error) error {
	end, err := r.r.Seek(0, io.SeekEnd)
	if err != nil {
		return newIoError(err)
	}
	return r.Consume(0, end, fn)
}

func (r *DirectSliceReader) ConsumeFrom(offset int64, fn func([]byte) error) error {
	end, err := r.r.Seek(0, io.SeekEnd)
	if err != nil {
		return newIoError(err)
	}
	if offset > end {
		return newError(IoError, "offset out of range")
	}
	return r.Consume(offset, end-offset, fn)
}

func (r *DirectSliceReader) Consume(offset, length int64, fn func([]byte) error) error {
	if offset < 0 || length < 0 {
		return newError(IoError, "invalid range")
	}
	if _, err := r.r.Seek(offset, io.SeekStart); err != nil {
		return newIoError(err)
	}
	if cap(r.buf) < int(length) {
		r.buf = make([]byte, length)
	}
	buf := r.buf[:length]
	n, err := io.ReadFull(r.r, buf)
	if err != nil {
		if n == 0 {
			return newError(IoError, "seek past end of file")
		}
		return newError(IoError, "short read")
	}
	return fn(buf)
}
