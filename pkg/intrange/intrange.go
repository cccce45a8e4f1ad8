package intrange

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// IntRange stores a max and min amount for range
type IntRange struct {
	min int
	max int
}

func New(min, max int) IntRange {
	return IntRange{min, max}
}

// AtLeast is the range [min, ∞).
func AtLeast(min int) IntRange {
	return IntRange{min, math.MaxInt}
}

// AtMost is the range [0, max].
func AtMost(max int) IntRange {
	return IntRange{0, max}
}

// Get returns true if the argument n is included in the closed range
// between min and max
func (r IntRange) Get(n int) bool {
	return n >= r.min && n <= r.max
}

func (r IntRange) String() string {
	if r.max == math.MaxInt {
		return strconv.Itoa(r.min) + ":"
	}
	return strconv.Itoa(r.min) + ":" + strconv.Itoa(r.max)
}

// Parse reads "N", "MIN:MAX", "MIN:" or ":MAX".
func Parse(s string) (IntRange, error) {
	lo, hi, found := strings.Cut(s, ":")
	if !found {
		n, err := strconv.Atoi(s)
		if err != nil {
			return IntRange{}, errors.Wrapf(err, "invalid range %q", s)
		}
		return New(n, n), nil
	}

	r := IntRange{0, math.MaxInt}
	var err error
	if lo != "" {
		if r.min, err = strconv.Atoi(lo); err != nil {
			return IntRange{}, errors.Wrapf(err, "invalid range %q", s)
		}
	}
	if hi != "" {
		if r.max, err = strconv.Atoi(hi); err != nil {
			return IntRange{}, errors.Wrapf(err, "invalid range %q", s)
		}
	}
	if r.min > r.max {
		return IntRange{}, errors.Errorf("invalid range %q: minimum exceeds maximum", s)
	}
	return r, nil
}
