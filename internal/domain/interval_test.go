package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals overlap",
			a:    Interval{Start: 600, End: 660},
			b:    Interval{Start: 600, End: 660},
			want: true,
		},
		{
			name: "partial overlap at the end",
			a:    Interval{Start: 570, End: 630},
			b:    Interval{Start: 600, End: 660},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{Start: 540, End: 720},
			b:    Interval{Start: 600, End: 630},
			want: true,
		},
		{
			name: "touching intervals do not overlap",
			a:    Interval{Start: 540, End: 600},
			b:    Interval{Start: 600, End: 660},
			want: false,
		},
		{
			name: "touching intervals reversed do not overlap",
			a:    Interval{Start: 600, End: 660},
			b:    Interval{Start: 540, End: 600},
			want: false,
		},
		{
			name: "disjoint intervals do not overlap",
			a:    Interval{Start: 540, End: 570},
			b:    Interval{Start: 660, End: 720},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_IsEmpty(t *testing.T) {
	assert.True(t, Interval{Start: 600, End: 600}.IsEmpty())
	assert.True(t, Interval{Start: 660, End: 600}.IsEmpty())
	assert.False(t, Interval{Start: 600, End: 601}.IsEmpty())
}
