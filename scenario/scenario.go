package scenario

import (
	"fmt"

	"github.com/signalkit/signalkit"
	"gopkg.in/yaml.v2"
)

// SignalSpec is a configurable generator request. Waveform names are looked
// up in the waveform registry; an empty name defaults to "sine".
type SignalSpec struct {
	Name     string  `yaml:"name" mapstructure:"name"`         // identifier for the signal
	Waveform string  `yaml:"waveform" mapstructure:"waveform"` // registry name, defaults to "sine"
	Freq     float64 `yaml:"freq" mapstructure:"freq"`         // frequency in Hz
	T0       float64 `yaml:"t0" mapstructure:"t0"`             // start time in seconds
	T1       float64 `yaml:"t1" mapstructure:"t1"`             // end time in seconds, exclusive
	Amp      float64 `yaml:"amp" mapstructure:"amp"`           // peak amplitude
	Fs       float64 `yaml:"fs" mapstructure:"fs"`             // sampling rate in Hz
	Phase    float64 `yaml:"phase" mapstructure:"phase"`       // phase offset in radians, sine only
	NoiseMax float64 `yaml:"noise_max" mapstructure:"noise_max"` // Gaussian noise level relative to amp
}

// Generate builds the sampled series described by the spec.
func (sp SignalSpec) Generate() (signalkit.Series, error) {
	name := sp.Waveform
	if name == "" {
		name = "sine"
	}

	var s signalkit.Series
	var err error
	if name == "sine" && sp.Phase != 0 {
		s, err = signalkit.Sine(sp.Freq, sp.T0, sp.T1, sp.Amp, sp.Fs, sp.Phase)
	} else {
		s, err = signalkit.Generate(name, sp.Freq, sp.T0, sp.T1, sp.Amp, sp.Fs)
	}
	if err != nil {
		return signalkit.Series{}, fmt.Errorf("signal %q: %w", sp.Name, err)
	}

	if sp.NoiseMax > 0 {
		s, err = signalkit.AddNoise(s, sp.NoiseMax, sp.Amp)
		if err != nil {
			return signalkit.Series{}, fmt.Errorf("signal %q: %w", sp.Name, err)
		}
	}
	return s, nil
}

// SignalEntry couples a signal spec with the steps applied to it and the
// output image it is rendered to.
type SignalEntry struct {
	SignalSpec `yaml:",inline"`

	Title  string    `yaml:"title"`  // plot title
	Output string    `yaml:"output"` // image file name, extension selects the renderer
	Steps  Container `yaml:"steps"`  // transforms compared against the original
}

// Scenario is a list of signals with their transform pipelines, loaded from
// a YAML document.
type Scenario struct {
	Signals []SignalEntry `yaml:"signals"`
}

// Load parses a scenario from YAML.
func Load(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Signals) == 0 {
		return nil, fmt.Errorf("scenario names no signals")
	}
	return &sc, nil
}
