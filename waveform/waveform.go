// Package waveform provides a registry of named periodic waveform and noise
// functions used to build sampled signals.
package waveform

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/teknico/sigourney/fast"
)

// A waveform function y=f(t,A,T). Takes amplitude, A, and period, T,
// as inputs and returns the value of the function at time, t.
type Function func(t, A, T float64) float64

// A map between string name and waveform function pairs
var functions = map[string]Function{
	"sine":           Sine,
	"cosine":         cosineWave,
	"triangle":       Triangle,
	"square":         squareWave,
	"sawtooth":       sawtoothWave,
	"step":           stepFunction,
	"impulse":        impulseTrain,
	"flat":           flat,
	"random_noise":   randomNoise,
	"gaussian_noise": gaussianNoise,
}

// Names returns the registered waveform names in no particular order.
func Names() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	return names
}

// FromName returns the named waveform function.
func FromName(name string) (Function, error) {
	fn, ok := functions[name]
	if !ok {
		return nil, errors.New("waveform function not found")
	}

	return fn, nil
}

// Returns a sine wave y=A*sin(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func Sine(t, A, T float64) float64 {
	return A * math.Sin(2*math.Pi*t/T)
}

// Returns a cosine wave y=A*cos(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func cosineWave(t, A, T float64) float64 {
	return A * math.Cos(2*math.Pi*t/T)
}

// Triangle returns a symmetric zero-mean triangle wave of amplitude A and
// period T: y=(2*A/pi)*asin(sin(2*pi*t/T)). The wave starts at zero, rises
// to +A at the quarter period and falls to -A at the three-quarter period.
func Triangle(t, A, T float64) float64 {
	return (2 * A / math.Pi) * math.Asin(math.Sin(2*math.Pi*t/T))
}

// Returns a square wave y=A if sin(2*pi*t/T) >= 0, else -A.
// where A is the amplitude, T is the period, and t is elapsed time.
func squareWave(t, A, T float64) float64 {
	if fast.Sin(2*math.Pi*t/T) >= 0 {
		return A
	} else {
		return -A
	}
}

// Returns a sawtooth wave y=(2*A/pi)*atan(tan(pi*t/T)),
// where A is the amplitude, T is the period, and t is elapsed time.
func sawtoothWave(t, A, T float64) float64 {
	return (2 * A / math.Pi) * math.Atan(math.Tan(math.Pi*t/T))
}

// Returns a step function of amplitude A every period T.
func stepFunction(t, A, T float64) float64 {
	if math.Mod(t, T) < T/2 {
		return 0
	} else {
		return A
	}
}

// Returns a spike of amplitude A every period T.
// Each spike has a width of 1 microsecond.
func impulseTrain(t, A, T float64) float64 {
	spikeWidth := 1e-6
	if math.Mod(t, T) < spikeWidth {
		return A
	} else {
		return 0
	}
}

// flat returns a constant value equal to A (amplitude),
// independent of time t or period T.
func flat(t, A, T float64) float64 {
	return A
}

// Returns random (uniform) noise of amplitude A.
func randomNoise(_, A, _ float64) float64 {
	return A * (rand.Float64()*2 - 1) // A random number between -A and A
}

// Returns Gaussian noise of amplitude A.
func gaussianNoise(_, A, _ float64) float64 {
	return rand.NormFloat64() * A
}
