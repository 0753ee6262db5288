package whisper

import "encoding/binary"

// ParseAggregationType decodes a 4-byte big-endian tag and maps it to one
// of the eight named AggregationType values. Any other value is a
// ParseError.
func ParseAggregationType(buf []byte) (AggregationType, []byte, error) {
	if len(buf) < 4 {
		return 0, nil, newParseError("aggregation", ErrShortBuffer)
	}
	v := binary.BigEndian.Uint32(buf)
	switch AggregationType(v) {
	case Average, Sum, Last, Max, Min, AvgZero, AbsMax, AbsMin:
		return AggregationType(v), buf[4:], nil
	default:
		return 0, nil, newParseError("aggregation", errBadAggregation)
	}
}

var errBadAggregation = &Error{Kind: ParseError, Field: "aggregation", msg: "unrecognized aggregation tag"}

// ParseMetadata decodes the 16-byte Metadata record.
func ParseMetadata(buf []byte) (Metadata, []byte, error) {
	aggregation, rest, err := ParseAggregationType(buf)
	if err != nil {
		return Metadata{}, nil, err
	}
	if len(rest) < 12 {
		return Metadata{}, nil, newParseError("metadata", ErrShortBuffer)
	}
	maxRetention := binary.BigEndian.Uint32(rest[0:4])
	xFilesFactor := decodeFloat32(rest[4:8])
	archiveCount := binary.BigEndian.Uint32(rest[8:12])
	return Metadata{
		Aggregation:  aggregation,
		MaxRetention: maxRetention,
		XFilesFactor: xFilesFactor,
		ArchiveCount: archiveCount,
	}, rest[12:], nil
}

// ParseArchiveInfo decodes one 12-byte ArchiveInfo record.
func ParseArchiveInfo(buf []byte) (ArchiveInfo, []byte, error) {
	if len(buf) < archiveInfoSize {
		return ArchiveInfo{}, nil, newParseError("archive_info", ErrShortBuffer)
	}
	return ArchiveInfo{
		Offset:          binary.BigEndian.Uint32(buf[0:4]),
		SecondsPerPoint: binary.BigEndian.Uint32(buf[4:8]),
		NumPoints:       binary.BigEndian.Uint32(buf[8:12]),
	}, buf[archiveInfoSize:], nil
}

// ParseHeader decodes a Metadata record followed by exactly
// Metadata.ArchiveCount ArchiveInfo records.
func ParseHeader(buf []byte) (Header, []byte, error) {
	metadata, rest, err := ParseMetadata(buf)
	if err != nil {
		return Header{}, nil, err
	}
	archives := make([]ArchiveInfo, metadata.ArchiveCount)
	for i := range archives {
		var info ArchiveInfo
		info, rest, err = ParseArchiveInfo(rest)
		if err != nil {
			return Header{}, nil, err
		}
		archives[i] = info
	}
	return Header{Metadata: metadata, Archives: archives}, rest, nil
}

// ParsePoint decodes a single 12-byte Point record.
func ParsePoint(buf []byte) (Point, []byte, error) {
	if len(buf) < pointSize {
		return Point{}, nil, newParseError("point", ErrShortBuffer)
	}
	return Point{
		Timestamp: binary.BigEndian.Uint32(buf[0:4]),
		Value:     decodeFloat64(buf[4:12]),
	}, buf[pointSize:], nil
}

// ParseArchive decodes info.NumPoints consecutive Point records.
func ParseArchive(buf []byte, info ArchiveInfo) (Archive, []byte, error) {
	points := make(Archive, info.NumPoints)
	rest := buf
	for i := range points {
		var p Point
		var err error
		p, rest, err = ParsePoint(rest)
		if err != nil {
			return nil, nil, err
		}
		points[i] = p
	}
	return points, rest, nil
}

// ParseDatabase decodes a Header followed by one Archive per
// header-declared ArchiveInfo, in header order.
func ParseDatabase(buf []byte) (Database, []byte, error) {
	header, rest, err := ParseHeader(buf)
	if err != nil {
		return Database{}, nil, err
	}
	archives := make([]Archive, len(header.Archives))
	for i, info := range header.Archives {
		var archive Archive
		archive, rest, err = ParseArchive(rest, info)
		if err != nil {
			return Database{}, nil, err
		}
		archives[i] = archive
	}
	return Database{Header: header, Archives: archives}, rest, nil
}
