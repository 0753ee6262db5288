package whisper

// ReadHeader opens path, reads only the Metadata and ArchiveInfo
// records, and returns the decoded Header. It uses the direct reader, so
// it pays only for the bytes it needs rather than mapping the whole
// file, per spec.md §4.7/§9.
func ReadHeader(path string, opts *Options) (Header, error) {
	var header Header
	err := runDirectFileAccess(path, opts, func(r SliceReader) error {
		var metadata Metadata
		err := r.Consume(0, metadataSize, func(buf []byte) error {
			m, _, err := ParseMetadata(buf)
			metadata = m
			return err
		})
		if err != nil {
			return err
		}
		size := int64(metadataSize) + int64(archiveInfoSize)*int64(metadata.ArchiveCount)
		return r.Consume(0, size, func(buf []byte) error {
			h, _, err := ParseHeader(buf)
			if err != nil {
				return err
			}
			header = h
			return nil
		})
	})
	if err != nil {
		return Header{}, err
	}
	return header, nil
}

// ReadDatabase opens path, maps the whole file, and parses the header
// plus every archive's point data.
func ReadDatabase(path string, opts *Options) (Database, error) {
	var db Database
	err := runFileAccess(path, opts, func(r SliceReader) error {
		return r.ConsumeAll(func(buf []byte) error {
			d, _, err := ParseDatabase(buf)
			if err != nil {
				return err
			}
			db = d
			return nil
		})
	})
	if err != nil {
		return Database{}, err
	}
	return db, nil
}

// ReadRange opens path, selects the archive best suited to req, and
// returns the subset of that archive's points within [req.From,
// req.Until]. The full orchestration — open+lock, read header, normalize
// request, select archive, read archive bytes, parse, filter — follows
// spec.md §2's data-flow and §4.7's DatabaseReader contract, grounded on
// original_source/src/read.rs's WhisperReader::read.
func ReadRange(path string, req FetchRequest, opts *Options) (FetchResponse, error) {
	var resp FetchResponse
	err := runFileAccess(path, opts, func(r SliceReader) error {
		return r.ConsumeAll(func(buf []byte) error {
			header, _, err := ParseHeader(buf)
			if err != nil {
				return err
			}

			normalized, err := req.Normalize(header)
			if err != nil {
				return err
			}

			info, err := selectArchive(header.Archives, normalized.retention())
			if err != nil {
				return err
			}

			archiveBytes, err := sliceForArchive(buf, info)
			if err != nil {
				return err
			}

			archive, _, err := ParseArchive(archiveBytes, info)
			if err != nil {
				// The header parsed cleanly and the bounds check above
				// passed, so a failure here means the header lied about
				// num_points relative to the bytes actually available.
				return newError(CorruptDatabase, "archive body shorter than declared")
			}

			resp = FetchResponse{
				Archive: info,
				Points:  filterPoints(archive, normalized.From, normalized.Until),
			}
			return nil
		})
	})
	if err != nil {
		return FetchResponse{}, err
	}
	return resp, nil
}

// sliceForArchive returns the byte range of data the given archive
// occupies. A bounds failure here means the header promised an offset
// and size the file does not actually have, so it is reported as
// CorruptDatabase rather than IoError, per spec.md §4.7's error
// translation boundary, grounded on
// original_source/src/read.rs's WhisperReader::get_slice_for_archive.
func sliceForArchive(data []byte, info ArchiveInfo) ([]byte, error) {
	offset := int(info.Offset)
	size := int(info.ArchiveSize())

	if offset > len(data) {
		return nil, newError(CorruptDatabase, "archive offset exceeds file size")
	}
	if offset+size > len(data) {
		return nil, newError(CorruptDatabase, "archive extends past end of file")
	}
	return data[offset : offset+size], nil
}
