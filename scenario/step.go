// Package scenario describes signal generation and transform pipelines that
// can be loaded from YAML and applied to sampled series.
package scenario

import (
	"fmt"

	"github.com/signalkit/signalkit"
)

// Step is the interface for all transform step types (shift, scale, affine).
type Step interface {
	TypeAsString() string                                    // Returns the step type as a string
	Label() string                                           // Returns the display name of the step
	Apply(s signalkit.Series) (signalkit.Series, error)      // Applies the transform to a series and returns the result
	UnmarshalYAML(unmarshal func(interface{}) error) error   // Unmarshals a step entry into the correct type based on the type field
}

// stepBase carries the fields shared by all step types.
type stepBase struct {
	typeName string // the type of step
	name     string // display name used in plot legends
}

// Returns the type of step as a string.
func (b *stepBase) TypeAsString() string {
	return b.typeName
}

// Returns the display name of the step.
func (b *stepBase) Label() string {
	return b.name
}

func (b *stepBase) setLabel(name string) {
	b.name = name
}

// Parameters to use for a time-shift step.
type ShiftParams struct {
	Name string  `yaml:"name" mapstructure:"name"` // display name of the step
	Tau  float64 `yaml:"tau" mapstructure:"tau"`   // time shift in seconds, positive delays the signal
}

// shiftStep translates the time axis by Tau seconds without resampling.
type shiftStep struct {
	stepBase

	Tau float64
}

// Returns a shiftStep pointer with the requested parameters.
func NewShiftStep(params ShiftParams) (*shiftStep, error) {
	step := &shiftStep{Tau: params.Tau}
	step.typeName = "shift"
	step.name = params.Name
	return step, nil
}

func (s *shiftStep) Apply(series signalkit.Series) (signalkit.Series, error) {
	return signalkit.TimeShift(series, s.Tau)
}

// Initialise the fields of shiftStep when it is unmarshalled from yaml.
func (s *shiftStep) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params ShiftParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	step, err := NewShiftStep(params)
	if err != nil {
		return err
	}

	*s = *step
	return nil
}

// Parameters to use for a time-scale step.
type ScaleParams struct {
	Name string  `yaml:"name" mapstructure:"name"` // display name of the step
	A    float64 `yaml:"a" mapstructure:"a"`       // time scaling factor, must be nonzero
	Fill float64 `yaml:"fill" mapstructure:"fill"` // fill value for out-of-domain samples
}

// scaleStep resamples the series at a*t via linear interpolation.
type scaleStep struct {
	stepBase

	A    float64
	Fill float64
}

// Returns a scaleStep pointer with the requested parameters, checking for
// invalid values.
func NewScaleStep(params ScaleParams) (*scaleStep, error) {
	if params.A == 0 {
		return nil, fmt.Errorf("scale step: %w", signalkit.ErrZeroScale)
	}

	step := &scaleStep{A: params.A, Fill: params.Fill}
	step.typeName = "scale"
	step.name = params.Name
	return step, nil
}

func (s *scaleStep) Apply(series signalkit.Series) (signalkit.Series, error) {
	return signalkit.TimeScale(series, s.A, s.Fill)
}

// Initialise the fields of scaleStep when it is unmarshalled from yaml.
func (s *scaleStep) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params ScaleParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	step, err := NewScaleStep(params)
	if err != nil {
		return err
	}

	*s = *step
	return nil
}

// Parameters to use for a combined shift-and-scale step.
type AffineParams struct {
	Name string  `yaml:"name" mapstructure:"name"` // display name of the step
	Tau  float64 `yaml:"tau" mapstructure:"tau"`   // time shift in seconds
	A    float64 `yaml:"a" mapstructure:"a"`       // time scaling factor, must be nonzero
	Fill float64 `yaml:"fill" mapstructure:"fill"` // fill value for out-of-domain samples
}

// affineStep resamples the series at a*t - tau via linear interpolation.
type affineStep struct {
	stepBase

	Tau  float64
	A    float64
	Fill float64
}

// Returns an affineStep pointer with the requested parameters, checking for
// invalid values.
func NewAffineStep(params AffineParams) (*affineStep, error) {
	if params.A == 0 {
		return nil, fmt.Errorf("affine step: %w", signalkit.ErrZeroScale)
	}

	step := &affineStep{Tau: params.Tau, A: params.A, Fill: params.Fill}
	step.typeName = "affine"
	step.name = params.Name
	return step, nil
}

func (s *affineStep) Apply(series signalkit.Series) (signalkit.Series, error) {
	return signalkit.TimeShiftAndScale(series, s.Tau, s.A, s.Fill)
}

// Initialise the fields of affineStep when it is unmarshalled from yaml.
func (s *affineStep) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params AffineParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	step, err := NewAffineStep(params)
	if err != nil {
		return err
	}

	*s = *step
	return nil
}
