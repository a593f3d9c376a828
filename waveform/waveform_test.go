package waveform_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/signalkit/signalkit/waveform"
	"github.com/stretchr/testify/assert"
)

// Tests for deterministic waveform functions
func TestDeterministicWaveforms(t *testing.T) {
	M := 1.0 + rand.Float64()*99.0 // amplitude (between 1 and 100)
	x := 1.0 + rand.Float64()*99.0 // time (between 1 and 100)

	testCases := []struct {
		name     string  // name of the function, defined in the waveform registry
		t        float64 // time in seconds
		A        float64 // amplitude
		T        float64 // period of the waveform in seconds
		expected float64 // expected value of the function at time t
		isError  bool    // true if an error is expected
	}{
		{
			name:    "not_a_function",
			isError: true,
		},
		{
			name:     "sine",
			t:        x,
			A:        M,
			T:        4 * x,
			expected: M, // M*sin(2*pi*(x/4x)) = M*sin(pi/2) = M
		},
		{
			name:     "cosine",
			t:        x,
			A:        M,
			T:        4 * x,
			expected: 0.0, // M*cos(pi/2) = 0
		},
		{
			name:     "triangle",
			t:        0.0,
			A:        M,
			T:        x,
			expected: 0.0, // zero-phase start
		},
		{
			name:     "triangle",
			t:        x,
			A:        M,
			T:        4 * x,
			expected: M, // +A at the quarter period
		},
		{
			name:     "triangle",
			t:        3 * x,
			A:        M,
			T:        4 * x,
			expected: -M, // -A at the three-quarter period
		},
		{
			name:     "square",
			t:        0.0,
			A:        M,
			T:        x,
			expected: M, // positive value for t=0
		},
		{
			name:     "square",
			t:        1.5 * x,
			A:        M,
			T:        2.0 * x,
			expected: -M, // negative value for t > T/2
		},
		{
			name:     "sawtooth",
			t:        x,
			A:        M,
			T:        4 * x,
			expected: M / 2, // quarter of time period = half way up the sawtooth wave
		},
		{
			name:     "step",
			t:        1.5 * x,
			A:        M,
			T:        2.0 * x,
			expected: M, // positive value for t > T/2
		},
		{
			name:     "step",
			t:        0.0,
			A:        M,
			T:        x,
			expected: 0.0, // zero value for t < T/2
		},
		{
			name:     "impulse",
			t:        x / 2.0,
			A:        M,
			T:        x,
			expected: 0.0, // no impulse when t != T
		},
		{
			name:     "impulse",
			t:        x,
			A:        M,
			T:        x,
			expected: M, // impulse at t==T
		},
		{
			name:     "flat",
			t:        x,
			A:        M,
			T:        x,
			expected: M, // constant
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testFunction, err := waveform.FromName(tc.name)

			if tc.isError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			result := testFunction(tc.t, tc.A, tc.T)
			assert.InDelta(t, tc.expected, result, 1e-6)
		})
	}
}

// Tests for noise functions
func TestNoiseWaveforms(t *testing.T) {
	A := 1.0 + rand.Float64()*9.0 // amplitude of noise (between 1 and 10)

	testCases := []struct {
		name            string  // name of the function, defined in the waveform registry
		numSamples      int     // number of samples of noise to generate, generate at least 1e6 samples if checking statistics
		checkStatistics bool    // whether test should check the mean and standard deviation of the noise
		expectedMean    float64 // expected mean of the noise
		expectedStdDev  float64 // expected standard deviation of the noise
		checkBounds     bool    // whether to check the bounds of the noise
		lowerBound      float64 // lower bound of the noise
		upperBound      float64 // upper bound of the noise
	}{
		{
			name:            "random_noise",
			numSamples:      1e6,
			checkStatistics: true,
			expectedMean:    0,
			expectedStdDev:  A / math.Sqrt(3),
			checkBounds:     true,
			lowerBound:      -A,
			upperBound:      A,
		},
		{
			name:            "gaussian_noise",
			numSamples:      1e6,
			checkStatistics: true,
			expectedMean:    0,
			expectedStdDev:  A,
			checkBounds:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testFunction, err := waveform.FromName(tc.name)
			assert.NoError(t, err)

			var sum, sumSq float64
			for i := 0; i < tc.numSamples; i++ {
				x := testFunction(float64(i), A, 0)
				if tc.checkBounds {
					assert.True(t, x >= tc.lowerBound && x <= tc.upperBound, "value out of bounds")
				}
				sum += x
				sumSq += x * x
			}

			if tc.checkStatistics {
				mean := sum / float64(tc.numSamples)
				variance := sumSq/float64(tc.numSamples) - mean*mean
				stddev := math.Sqrt(variance)
				// Low value of 0.1 used for the delta: non-exact values due to small sample sizes
				assert.InDelta(t, tc.expectedMean, mean, 0.1)
				assert.InDelta(t, tc.expectedStdDev, stddev, 0.1)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := waveform.Names()
	assert.Contains(t, names, "sine")
	assert.Contains(t, names, "triangle")
}
