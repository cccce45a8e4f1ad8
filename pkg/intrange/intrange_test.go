package intrange

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRange_Get(t *testing.T) {
	type fields struct {
		min int
		max int
	}
	tests := []struct {
		name   string
		fields fields
		n      int
		want   bool
	}{
		{name: "normal range true", fields: fields{0, 10}, n: 5, want: true},
		{name: "normal start range true", fields: fields{0, 10}, n: 0, want: true},
		{name: "normal end range true", fields: fields{0, 10}, n: 10, want: true},
		{name: "invalid range true", fields: fields{1, 0}, n: 1, want: false},
		{name: "invalid range false", fields: fields{-1, -3}, n: -2, want: false},
		{name: "below range", fields: fields{2, 4}, n: 1, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := IntRange{
				min: tt.fields.min,
				max: tt.fields.max,
			}
			assert.Equal(t, tt.want, r.Get(tt.n))
		})
	}
}

func TestAtLeastAtMost(t *testing.T) {
	assert.True(t, AtLeast(2).Get(math.MaxInt))
	assert.False(t, AtLeast(2).Get(1))
	assert.True(t, AtMost(2).Get(0))
	assert.False(t, AtMost(2).Get(3))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want IntRange
	}{
		{"3", New(3, 3)},
		{"1:4", New(1, 4)},
		{"2:", AtLeast(2)},
		{":5", AtMost(5)},
		{":", AtLeast(0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "a", "1:b", "4:1"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1:3", New(1, 3).String())
	assert.Equal(t, "2:", AtLeast(2).String())
}
