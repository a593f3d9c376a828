package signalkit

import (
	"fmt"
	"sort"
)

// TimeShift applies a pure time shift x(t) -> x(t - tau): the time axis is
// translated by tau seconds and the values are unchanged. No interpolation
// is needed since sample ordering and spacing are preserved.
func TimeShift(s Series, tau float64) (Series, error) {
	if err := s.Validate(); err != nil {
		return Series{}, err
	}

	out := s.Clone()
	for i := range out.T {
		out.T[i] += tau
	}
	return out, nil
}

// TimeScale applies time scaling x(t) -> x(a*t) by sampling the original
// series at a*t via linear interpolation. Queries that fall outside the
// original time domain take the fill value. The time axis of the result is
// unchanged. a > 1 compresses the signal, 0 < a < 1 stretches it, and a < 0
// additionally reverses it; a must be nonzero.
func TimeScale(s Series, a, fill float64) (Series, error) {
	return TimeShiftAndScale(s, 0, a, fill)
}

// TimeShiftAndScale applies the combined affine transform x(t) -> x(a*t - tau)
// by sampling the original series at a*t - tau via linear interpolation, with
// fill for out-of-domain queries. The composition order is fixed as scale
// then shift: the query axis is a*t - tau, not a*(t - tau).
func TimeShiftAndScale(s Series, tau, a, fill float64) (Series, error) {
	if a == 0 {
		return Series{}, ErrZeroScale
	}
	if err := s.Validate(); err != nil {
		return Series{}, err
	}

	out := Series{
		T: make([]float64, s.Len()),
		Y: make([]float64, s.Len()),
	}
	copy(out.T, s.T)
	for i, ti := range s.T {
		out.Y[i] = interp(a*ti-tau, s.T, s.Y, fill)
	}
	return out, nil
}

// Resample evaluates the series at arbitrary query times via linear
// interpolation, with fill for queries outside the original domain.
func Resample(s Series, query []float64, fill float64) (Series, error) {
	if err := s.Validate(); err != nil {
		return Series{}, err
	}

	out := Series{
		T: make([]float64, len(query)),
		Y: make([]float64, len(query)),
	}
	copy(out.T, query)
	for i, q := range query {
		out.Y[i] = interp(q, s.T, s.Y, fill)
	}
	return out, nil
}

// interp linearly interpolates the value of the sampled signal (t, y) at
// query time q. t must be ascending; q may come in any order, which is what
// makes reversed (a < 0) query axes work. Queries outside [t[0], t[n-1]]
// return fill.
func interp(q float64, t, y []float64, fill float64) float64 {
	n := len(t)
	if q < t[0] || q > t[n-1] {
		return fill
	}

	// i is the first index with t[i] >= q
	i := sort.SearchFloat64s(t, q)
	if i < n && t[i] == q {
		return y[i]
	}

	// t[i-1] < q < t[i]
	w := (q - t[i-1]) / (t[i] - t[i-1])
	return y[i-1] + w*(y[i]-y[i-1])
}

// String implements fmt.Stringer for quick inspection of a series.
func (s Series) String() string {
	if s.Len() == 0 {
		return "Series(empty)"
	}
	return fmt.Sprintf("Series(%d samples, t=[%g, %g])", s.Len(), s.T[0], s.T[s.Len()-1])
}
