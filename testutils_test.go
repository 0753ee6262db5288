package whisper

// flatten concatenates byte slices into one, mirroring the teacher's own
// testutils.go helper of the same name and purpose.
func flatten(slices ...[]byte) []byte {
	var out []byte
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// sampleHeader returns a small, well-formed two-archive header: 60s
// resolution for a day, 300s resolution for a week, matching the shape
// of the literal scenarios in spec.md §8.
func sampleHeader() Header {
	return Header{
		Metadata: Metadata{
			Aggregation:  Average,
			MaxRetention: 30 * 24 * 60 * 60,
			XFilesFactor: 0.5,
			ArchiveCount: 2,
		},
		Archives: []ArchiveInfo{
			{Offset: 0, SecondsPerPoint: 60, NumPoints: 1440},
			{Offset: 0, SecondsPerPoint: 300, NumPoints: 2016},
		},
	}
}

// withOffsets lays out archives back-to-back starting at the header's
// own size, the way a real Whisper file's offsets are assigned.
func withOffsets(h Header) Header {
	offset := h.Size()
	archives := make([]ArchiveInfo, len(h.Archives))
	for i, a := range h.Archives {
		a.Offset = offset
		archives[i] = a
		offset += a.ArchiveSize()
	}
	h.Archives = archives
	return h
}

// fixedArchive returns an archive of n points, starting at startTime and
// stepping by step seconds, all with the given value.
func fixedArchive(n int, startTime uint32, step uint32, value float64) Archive {
	points := make(Archive, n)
	for i := range points {
		points[i] = Point{Timestamp: startTime + uint32(i)*step, Value: value}
	}
	return points
}
