// Package signalkit generates uniformly sampled time-domain signals and
// applies time-shift, time-scale and combined affine transforms to them.
package signalkit

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by series construction and transforms.
var (
	ErrSampleRate     = errors.New("sampling rate fs must be greater than 0")
	ErrTimeRange      = errors.New("end time must be greater than start time")
	ErrZeroScale      = errors.New("scaling factor must be nonzero")
	ErrLengthMismatch = errors.New("time and value arrays must have the same length")
	ErrEmptySeries    = errors.New("series has no samples")
)

// Series is a uniformly sampled signal: T holds sample times in seconds
// (strictly increasing, spaced 1/fs apart) and Y holds the signal value at
// each time, so Y[i] is the value at T[i]. Transforms return new Series
// rather than mutating their input.
type Series struct {
	T []float64
	Y []float64
}

// Len returns the number of samples in the series.
func (s Series) Len() int {
	return len(s.T)
}

// Validate checks the pairing invariant between T and Y.
func (s Series) Validate() error {
	if len(s.T) != len(s.Y) {
		return fmt.Errorf("%w: len(T)=%d, len(Y)=%d", ErrLengthMismatch, len(s.T), len(s.Y))
	}
	if len(s.T) == 0 {
		return ErrEmptySeries
	}
	return nil
}

// Clone returns a deep copy of the series.
func (s Series) Clone() Series {
	out := Series{
		T: make([]float64, len(s.T)),
		Y: make([]float64, len(s.Y)),
	}
	copy(out.T, s.T)
	copy(out.Y, s.Y)
	return out
}

// Timebase returns uniform sample times from t0 (inclusive) to t1 (exclusive)
// at sampling rate fs. The spacing between samples is 1/fs and the number of
// samples is round((t1-t0)*fs), matching half-open range semantics.
func Timebase(t0, t1, fs float64) ([]float64, error) {
	if fs <= 0 {
		return nil, fmt.Errorf("%w: fs=%g", ErrSampleRate, fs)
	}
	if t1 <= t0 {
		return nil, fmt.Errorf("%w: t0=%g, t1=%g", ErrTimeRange, t0, t1)
	}

	n := int(math.Round((t1 - t0) * fs))
	if n < 1 {
		n = 1
	}

	t := make([]float64, n)
	for i := range t {
		// t0 + i/fs rather than accumulating dt, to avoid drift
		t[i] = t0 + float64(i)/fs
	}
	return t, nil
}
