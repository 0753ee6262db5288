package whisper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchRequestNormalize(t *testing.T) {
	const (
		retention = 1000 // R
		now       = 100000
	)
	header := Header{Metadata: Metadata{MaxRetention: retention}}

	cases := []struct {
		assertion string
		req       FetchRequest
		wantKind  ErrorKind
		wantFrom  uint32
		wantErr   bool
	}{
		{
			assertion: "until equal to from is invalid",
			req:       FetchRequest{From: now - 10, Until: now - 10, Now: now},
			wantKind:  InvalidTimeRange,
			wantErr:   true,
		},
		{
			assertion: "from in the future is invalid",
			req:       FetchRequest{From: now + 1, Until: now + 10, Now: now},
			wantKind:  InvalidTimeStart,
			wantErr:   true,
		},
		{
			assertion: "until before oldest retained data is invalid",
			req:       FetchRequest{From: now - retention - 200, Until: now - retention - 1, Now: now},
			wantKind:  InvalidTimeEnd,
			wantErr:   true,
		},
		{
			assertion: "from older than retention is clamped",
			req:       FetchRequest{From: now - retention - 100, Until: now, Now: now},
			wantFrom:  now - retention,
		},
		{
			assertion: "from within retention is unchanged",
			req:       FetchRequest{From: now - retention + 100, Until: now, Now: now},
			wantFrom:  now - retention + 100,
		},
	}

	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			got, err := c.req.Normalize(header)
			if c.wantErr {
				assert.Error(t, err)
				werr, ok := err.(*Error)
				assert.True(t, ok)
				assert.Equal(t, c.wantKind, werr.Kind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, c.wantFrom, got.From)
			assert.Equal(t, c.req.Until, got.Until)
			assert.Equal(t, c.req.Now, got.Now)
		})
	}
}

func TestSelectArchive(t *testing.T) {
	archives := []ArchiveInfo{
		{SecondsPerPoint: 60, NumPoints: 1440},    // 1 day
		{SecondsPerPoint: 600, NumPoints: 1008},   // 7 days
		{SecondsPerPoint: 3600, NumPoints: 720},   // 30 days
	}

	t.Run("requiring 6 days selects the 7 day archive", func(t *testing.T) {
		got, err := selectArchive(archives, 6*24*60*60)
		assert.NoError(t, err)
		assert.Equal(t, archives[1], got)
	})

	t.Run("requiring more than the top tier fails", func(t *testing.T) {
		_, err := selectArchive(archives, 31*24*60*60)
		assert.Error(t, err)
		werr, ok := err.(*Error)
		assert.True(t, ok)
		assert.Equal(t, NoArchiveAvailable, werr.Kind)
	})
}

func TestFilterPoints(t *testing.T) {
	points := fixedArchive(5, 100, 10, 1.0) // timestamps 100,110,...,140

	got := filterPoints(points, 110, 130)
	assert.Equal(t, []Point{
		{Timestamp: 110, Value: 1.0},
		{Timestamp: 120, Value: 1.0},
		{Timestamp: 130, Value: 1.0},
	}, got)

	t.Run("preserves input order", func(t *testing.T) {
		shuffled := Archive{
			{Timestamp: 130, Value: 1},
			{Timestamp: 100, Value: 2},
			{Timestamp: 120, Value: 3},
		}
		got := filterPoints(shuffled, 100, 130)
		assert.Equal(t, []Point{
			{Timestamp: 130, Value: 1},
			{Timestamp: 100, Value: 2},
			{Timestamp: 120, Value: 3},
		}, got)
	})

	t.Run("empty when nothing in range", func(t *testing.T) {
		assert.Empty(t, filterPoints(points, 1000, 2000))
	})
}
