package whisper

import "sort"

// ValidateHeader checks that header's archives follow the conventional
// shape spec.md §3 invariant 3 describes as expected but not enforced by
// parsing: ascending resolution, each precision evenly dividing the
// next, strictly widening retention, and enough points in each archive
// to consolidate into the next. It is read-only: it never mutates
// header, and it makes no attempt to repair a file that fails it (per
// spec.md §1's non-goals). Grounded on
// blakesmith-whisper-go/whisper/whisper.go's ValidateArchiveList, which
// performs the same checks ahead of a write-time Create call; this
// rendering drops the write-side concerns and keeps only the structural
// checks relevant to a reader deciding whether a file's archive
// directory is well-formed.
func ValidateHeader(h Header) error {
	archives := make([]ArchiveInfo, len(h.Archives))
	copy(archives, h.Archives)
	sort.Slice(archives, func(i, j int) bool {
		return archives[i].SecondsPerPoint < archives[j].SecondsPerPoint
	})

	if len(archives) == 0 {
		return newError(CorruptDatabase, "header has no archives")
	}

	for i := 0; i < len(archives)-1; i++ {
		current, next := archives[i], archives[i+1]

		if current.SecondsPerPoint >= next.SecondsPerPoint {
			return newError(CorruptDatabase, "duplicate archive precision")
		}
		if next.SecondsPerPoint%current.SecondsPerPoint != 0 {
			return newError(CorruptDatabase, "higher precision archive must evenly divide the next")
		}
		if next.Retention() <= current.Retention() {
			return newError(CorruptDatabase, "lower precision archive must cover a larger interval")
		}
		if current.NumPoints < next.SecondsPerPoint/current.SecondsPerPoint {
			return newError(CorruptDatabase, "archive cannot consolidate into the next")
		}
	}
	return nil
}
