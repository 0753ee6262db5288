package whisper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArchiveSpec(t *testing.T) {
	cases := []struct {
		assertion string
		spec      string
		want      ArchiveInfo
		wantErr   bool
	}{
		{
			assertion: "seconds precision, days retention",
			spec:      "60s:7d",
			want:      ArchiveInfo{SecondsPerPoint: 60, NumPoints: 10080},
		},
		{
			assertion: "bare numbers mean seconds and points",
			spec:      "60:1440",
			want:      ArchiveInfo{SecondsPerPoint: 60, NumPoints: 1440},
		},
		{
			assertion: "minutes precision, days retention",
			spec:      "1m:30d",
			want:      ArchiveInfo{SecondsPerPoint: 60, NumPoints: 43200},
		},
		{
			assertion: "missing colon is invalid",
			spec:      "60s7d",
			wantErr:   true,
		},
		{
			assertion: "garbage precision is invalid",
			spec:      "abc:7d",
			wantErr:   true,
		},
		{
			assertion: "garbage retention is invalid",
			spec:      "60s:abc",
			wantErr:   true,
		},
	}

	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			got, err := ParseArchiveSpec(c.spec)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
