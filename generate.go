package signalkit

import (
	"fmt"
	"math"

	"github.com/signalkit/signalkit/waveform"
)

// Sine generates a sinusoidal signal y(t) = amp*sin(2*pi*freq*t + phase)
// sampled at rate fs over [t0, t1).
func Sine(freq, t0, t1, amp, fs, phase float64) (Series, error) {
	t, err := Timebase(t0, t1, fs)
	if err != nil {
		return Series{}, err
	}

	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = amp * math.Sin(2*math.Pi*freq*ti+phase)
	}
	return Series{T: t, Y: y}, nil
}

// Triangle generates a symmetric zero-mean triangle wave of peak amplitude
// amp sampled at rate fs over [t0, t1). The wave starts at zero and rises to
// +amp at the quarter period.
func Triangle(freq, t0, t1, amp, fs float64) (Series, error) {
	return Generate("triangle", freq, t0, t1, amp, fs)
}

// Generate samples the named waveform from the waveform registry over
// [t0, t1) at rate fs. The waveform period is 1/freq.
func Generate(name string, freq, t0, t1, amp, fs float64) (Series, error) {
	fn, err := waveform.FromName(name)
	if err != nil {
		return Series{}, fmt.Errorf("generate %q: %w", name, err)
	}
	if freq <= 0 {
		return Series{}, fmt.Errorf("generate %q: frequency must be greater than 0, got %g", name, freq)
	}

	t, err := Timebase(t0, t1, fs)
	if err != nil {
		return Series{}, err
	}

	period := 1 / freq
	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = fn(ti, amp, period)
	}
	return Series{T: t, Y: y}, nil
}

// AddNoise returns a copy of the series with Gaussian noise of standard
// deviation noiseMax*amp added to each sample. A noiseMax of zero returns an
// unchanged copy.
func AddNoise(s Series, noiseMax, amp float64) (Series, error) {
	if err := s.Validate(); err != nil {
		return Series{}, err
	}

	noise, _ := waveform.FromName("gaussian_noise")
	out := s.Clone()
	if noiseMax == 0 {
		return out, nil
	}
	for i := range out.Y {
		out.Y[i] += noise(out.T[i], noiseMax*amp, 0)
	}
	return out, nil
}
