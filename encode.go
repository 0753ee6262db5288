package whisper

import "encoding/binary"

// EncodeAggregationType appends the 4-byte big-endian wire tag for a to
// buf and returns the result, mirroring the teacher's append-to-sink
// writer style (writer.go's WriteHeader/WriteSchema build a record into
// a reusable buffer before writing it out).
func EncodeAggregationType(buf []byte, a AggregationType) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(a))
	return append(buf, tmp[:]...)
}

// EncodeMetadata appends the 16-byte Metadata record to buf.
func EncodeMetadata(buf []byte, m Metadata) []byte {
	buf = EncodeAggregationType(buf, m.Aggregation)
	var tmp [8]byte
	binary.BigEndian.PutUint32(tmp[0:4], m.MaxRetention)
	encodeFloat32(tmp[4:8], m.XFilesFactor)
	buf = append(buf, tmp[:]...)
	var count [4]byte
	binary.BigEndian.PutUint32(count[:], m.ArchiveCount)
	return append(buf, count[:]...)
}

// EncodeArchiveInfo appends one 12-byte ArchiveInfo record to buf.
func EncodeArchiveInfo(buf []byte, info ArchiveInfo) []byte {
	var tmp [archiveInfoSize]byte
	binary.BigEndian.PutUint32(tmp[0:4], info.Offset)
	binary.BigEndian.PutUint32(tmp[4:8], info.SecondsPerPoint)
	binary.BigEndian.PutUint32(tmp[8:12], info.NumPoints)
	return append(buf, tmp[:]...)
}

// EncodeHeader appends a Metadata record followed by its ArchiveInfo
// directory, in the order Header.Archives lists them.
func EncodeHeader(buf []byte, h Header) []byte {
	buf = EncodeMetadata(buf, h.Metadata)
	for _, info := range h.Archives {
		buf = EncodeArchiveInfo(buf, info)
	}
	return buf
}

// EncodePoint appends one 12-byte Point record to buf.
func EncodePoint(buf []byte, p Point) []byte {
	var tmp [pointSize]byte
	binary.BigEndian.PutUint32(tmp[0:4], p.Timestamp)
	encodeFloat64(tmp[4:12], p.Value)
	return append(buf, tmp[:]...)
}

// EncodeArchive appends every point in a, in order, to buf.
func EncodeArchive(buf []byte, a Archive) []byte {
	for _, p := range a {
		buf = EncodePoint(buf, p)
	}
	return buf
}

// EncodeDatabase appends a full Whisper file image (header followed by
// every archive's points, in header-declared order) to buf. For any
// byte slice B accepted by ParseDatabase, EncodeDatabase(nil, d) where d
// is the result of ParseDatabase(B) reproduces B exactly.
func EncodeDatabase(buf []byte, d Database) []byte {
	buf = EncodeHeader(buf, d.Header)
	for _, archive := range d.Archives {
		buf = EncodeArchive(buf, archive)
	}
	return buf
}
