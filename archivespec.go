package whisper

import (
	"regexp"
	"strconv"
)

// precisionPattern matches a retention specifier like "60" or "1d": a
// count followed by an optional unit suffix, grounded on
// blakesmith-whisper-go/whisper/whisper.go's precisionRegexp /
// ParseArchiveInfo, which parses the same Graphite storage-schemas.conf
// "precision:retention" syntax (e.g. "60s:7d").
var precisionPattern = regexp.MustCompile(`^(\d+)([smhdwy]?)$`)

var unitSeconds = map[string]uint32{
	"":  1,
	"s": 1,
	"m": 60,
	"h": 60 * 60,
	"d": 24 * 60 * 60,
	"w": 7 * 24 * 60 * 60,
	"y": 365 * 24 * 60 * 60,
}

// parseDuration parses a count-with-unit string such as "60", "5m", or
// "7d" into a count of seconds: the count multiplied by the unit's
// length, with a bare number taken as seconds. ParseArchiveSpec uses it
// for the precision half only; the retention half, where a bare number
// is a point count, is parsed there.
func parseDuration(s string) (uint32, error) {
	m := precisionPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, newError(ParseError, "invalid precision or retention: "+s)
	}
	count, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, newError(ParseError, "invalid count in "+s)
	}
	return uint32(count) * unitSeconds[m[2]], nil
}

// ParseArchiveSpec parses a Graphite-style "precision:retention"
// specifier (e.g. "60s:7d", "1m:30d") into an ArchiveInfo whose
// SecondsPerPoint and NumPoints reflect the spec and whose Offset is
// always 0 — the offset is only meaningful once a real Header assigns
// it, since this function never writes a file (the write path remains
// out of scope per spec.md §1). It exists so a caller who only knows a
// file's retention policy as a schema string (as Graphite's
// storage-schemas.conf expresses it) can build a FetchRequest against it
// without re-deriving the arithmetic, grounded on
// blakesmith-whisper-go/whisper/whisper.go's ParseArchiveInfo.
func ParseArchiveSpec(spec string) (ArchiveInfo, error) {
	parts := splitOnce(spec, ':')
	if parts == nil {
		return ArchiveInfo{}, newError(ParseError, "expected precision:retention, got "+spec)
	}
	precisionStr, retentionStr := parts[0], parts[1]

	secondsPerPoint, err := parseDuration(precisionStr)
	if err != nil {
		return ArchiveInfo{}, err
	}

	m := precisionPattern.FindStringSubmatch(retentionStr)
	if m == nil {
		return ArchiveInfo{}, newError(ParseError, "invalid retention: "+retentionStr)
	}
	count, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return ArchiveInfo{}, newError(ParseError, "invalid retention count: "+retentionStr)
	}

	var numPoints uint32
	if m[2] == "" {
		// A bare number in the retention position is already a point count.
		numPoints = uint32(count)
	} else {
		retentionSeconds := uint32(count) * unitSeconds[m[2]]
		numPoints = retentionSeconds / secondsPerPoint
	}

	return ArchiveInfo{Offset: 0, SecondsPerPoint: secondsPerPoint, NumPoints: numPoints}, nil
}

func splitOnce(s string, sep byte) []string {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return []string{s[:i], s[i+1:]}
		}
	}
	return nil
}
