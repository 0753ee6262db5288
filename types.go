package whisper

// AggregationType is the consolidation function a Whisper archive uses
// when downsampling points into a coarser-resolution archive.
type AggregationType uint32

const (
	Average AggregationType = iota + 1
	Sum
	Last
	Max
	Min
	AvgZero
	AbsMax
	AbsMin
)

func (a AggregationType) String() string {
	switch a {
	case Average:
		return "average"
	case Sum:
		return "sum"
	case Last:
		return "last"
	case Max:
		return "max"
	case Min:
		return "min"
	case AvgZero:
		return "avg_zero"
	case AbsMax:
		return "absolute_max"
	case AbsMin:
		return "absolute_min"
	default:
		return "unknown"
	}
}

// sizes of the fixed-width on-disk records, in bytes.
const (
	metadataSize    = 16
	archiveInfoSize = 12
	pointSize       = 12
)

// Metadata is the fixed 16-byte header record at the start of every
// Whisper file.
type Metadata struct {
	Aggregation  AggregationType
	MaxRetention uint32
	XFilesFactor float32
	ArchiveCount uint32
}

// ArchiveInfo describes the location and resolution of one retention
// tier within a Whisper file.
type ArchiveInfo struct {
	Offset          uint32
	SecondsPerPoint uint32
	NumPoints       uint32
}

// Retention is the time span, in seconds, covered by this archive at
// full occupancy.
func (a ArchiveInfo) Retention() uint32 {
	return a.SecondsPerPoint * a.NumPoints
}

// ArchiveSize is the size in bytes of this archive's point data.
func (a ArchiveInfo) ArchiveSize() uint32 {
	return a.NumPoints * pointSize
}

// End is the absolute file offset one byte past this archive's last
// point.
func (a ArchiveInfo) End() uint32 {
	return a.Offset + a.ArchiveSize()
}

// Point is a single timestamped sample.
type Point struct {
	Timestamp uint32
	Value     float64
}

// Archive is an ordered sequence of points, in on-disk order.
type Archive []Point

// Header is a Whisper file's metadata plus its archive directory.
type Header struct {
	Metadata Metadata
	Archives []ArchiveInfo
}

// Size is the byte length of the on-disk header: Metadata followed by
// one ArchiveInfo per declared archive.
func (h Header) Size() uint32 {
	return metadataSize + archiveInfoSize*uint32(len(h.Archives))
}

// Database is a fully parsed Whisper file: header plus every archive's
// point data, in header-declared order.
type Database struct {
	Header   Header
	Archives []Archive
}

// ArchiveAt pairs the ArchiveInfo and decoded Archive at index i, for
// callers that want both halves of one retention tier together.
func (d Database) ArchiveAt(i int) (ArchiveInfo, Archive) {
	return d.Header.Archives[i], d.Archives[i]
}
