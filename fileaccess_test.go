package whisper

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleDatabaseFile(t *testing.T) string {
	t.Helper()
	db := Database{
		Header:   withOffsets(sampleHeader()),
		Archives: []Archive{fixedArchive(1440, 1000000, 60, 1.0), fixedArchive(2016, 900000, 300, 2.0)},
	}
	f, err := os.CreateTemp(t.TempDir(), "fileaccess-*.wsp")
	assert.NoError(t, err)
	_, err = f.Write(EncodeDatabase(nil, db))
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	return f.Name()
}

func TestRunFileAccess(t *testing.T) {
	path := sampleDatabaseFile(t)

	t.Run("default options lock and read the whole file", func(t *testing.T) {
		var n int
		err := runFileAccess(path, nil, func(r SliceReader) error {
			return r.ConsumeAll(func(b []byte) error {
				n = len(b)
				return nil
			})
		})
		assert.NoError(t, err)
		assert.Positive(t, n)
	})

	t.Run("locking disabled still reads successfully", func(t *testing.T) {
		err := runFileAccess(path, &Options{Locking: false}, func(r SliceReader) error {
			return r.ConsumeAll(func(b []byte) error { return nil })
		})
		assert.NoError(t, err)
	})

	t.Run("missing file is an io error", func(t *testing.T) {
		err := runFileAccess(path+".missing", nil, func(r SliceReader) error { return nil })
		assert.Error(t, err)
		werr, ok := err.(*Error)
		assert.True(t, ok)
		assert.Equal(t, IoError, werr.Kind)
	})
}

func TestRunDirectFileAccess(t *testing.T) {
	path := sampleDatabaseFile(t)

	t.Run("reads the header without mapping the whole file", func(t *testing.T) {
		var header Header
		err := runDirectFileAccess(path, nil, func(r SliceReader) error {
			return r.ConsumeAll(func(b []byte) error {
				h, _, err := ParseHeader(b)
				if err != nil {
					return err
				}
				header = h
				return nil
			})
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, len(header.Archives))
	})
}
