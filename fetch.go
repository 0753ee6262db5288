package whisper

import "time"

// FetchRequest carries the caller's requested [From, Until] window
// together with Now, the wall-clock instant retention is measured
// against. Values are unix seconds. FetchRequest is immutable once
// constructed; the With* methods return an updated copy, the idiomatic
// Go rendering of the builder chain in
// original_source/src/read.rs's FetchRequest::with_from/with_until/with_now.
type FetchRequest struct {
	From  uint32
	Until uint32
	Now   uint32
}

// NewFetchRequest returns the default request: the previous 24 hours,
// relative to the current wall-clock time, per spec.md §6.
func NewFetchRequest() FetchRequest {
	now := uint32(time.Now().Unix())
	return FetchRequest{
		From:  now - 24*60*60,
		Until: now,
		Now:   now,
	}
}

// WithFrom returns a copy of r with From set to v.
func (r FetchRequest) WithFrom(v uint32) FetchRequest {
	r.From = v
	return r
}

// WithUntil returns a copy of r with Until set to v.
func (r FetchRequest) WithUntil(v uint32) FetchRequest {
	r.Until = v
	return r
}

// WithNow returns a copy of r with Now set to v.
func (r FetchRequest) WithNow(v uint32) FetchRequest {
	r.Now = v
	return r
}

// retention is the span of time, in seconds, this request requires an
// archive to cover: Now - From, not Until - From, per spec.md §9's
// "Request retention definition" note.
func (r FetchRequest) retention() uint32 {
	return r.Now - r.From
}

// Normalize validates r against header and, if valid, returns a new
// FetchRequest with From clamped to the oldest timestamp header's
// archives can hold. The four rules are applied in order, per spec.md
// §4.5:
//
//  1. Until <= From                       -> InvalidTimeRange
//  2. From > Now                          -> InvalidTimeStart
//  3. Until < Now - MaxRetention           -> InvalidTimeEnd
//  4. From < Now - MaxRetention            -> clamp From
func (r FetchRequest) Normalize(header Header) (FetchRequest, error) {
	if r.Until <= r.From {
		return FetchRequest{}, newError(InvalidTimeRange, "until must be after from")
	}
	if r.From > r.Now {
		return FetchRequest{}, newError(InvalidTimeStart, "from is in the future")
	}

	oldest := r.Now - header.Metadata.MaxRetention
	if r.Until < oldest {
		return FetchRequest{}, newError(InvalidTimeEnd, "until precedes the oldest retained data")
	}

	if r.From < oldest {
		r.From = oldest
	}
	return r, nil
}

// FetchResponse is the result of a successful ReadRange: the archive
// that answered the request, and the points within [From, Until] that
// archive held, in on-disk order.
type FetchResponse struct {
	Archive ArchiveInfo
	Points  []Point
}

// Unpack returns the two fields of r as a pair, for callers that prefer
// destructuring over field access.
func (r FetchResponse) Unpack() (ArchiveInfo, []Point) {
	return r.Archive, r.Points
}

// selectArchive returns the first archive (in header order) whose
// retention covers requiredRetention, matching the conventional
// ascending-resolution ordering real Whisper files use, per spec.md
// §4.6. It is grounded on original_source/src/read.rs's
// WhisperReader::get_archive_to_use.
func selectArchive(archives []ArchiveInfo, requiredRetention uint32) (ArchiveInfo, error) {
	for _, a := range archives {
		if a.Retention() >= requiredRetention {
			return a, nil
		}
	}
	return ArchiveInfo{}, newError(NoArchiveAvailable, "no archive covers the requested retention")
}

// filterPoints retains points p with From <= p.Timestamp <= Until,
// preserving input order, per spec.md §4.7's point filter. Points with a
// zero timestamp (an unwritten slot in a circular archive) are not
// specially handled: they fall outside any valid window on their own.
func filterPoints(points Archive, from, until uint32) []Point {
	var result []Point
	for _, p := range points {
		if p.Timestamp >= from && p.Timestamp <= until {
			result = append(result, p)
		}
	}
	return result
}
