package scenario

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/signalkit/signalkit"
)

// Container is an ordered collection of transform steps.
type Container []Step

// UnmarshalYAML unmarshals a sequence of step entries into the correct types
// based on the type field of each entry.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw []map[string]interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	for _, entry := range raw {
		step, err := createStepFromYamlEntry(entry)
		if err != nil {
			return err
		}
		*c = append(*c, step)
	}

	return nil
}

// Add appends a step to the container, assigning it a UUID label if it has
// no name, and returns the UUID.
func (c *Container) Add(step Step) uuid.UUID {
	id := uuid.New()
	if step.Label() == "" {
		if b, ok := step.(interface{ setLabel(string) }); ok {
			b.setLabel(id.String())
		}
	}
	*c = append(*c, step)
	return id
}

// StepResult pairs a transformed series with the step that produced it.
type StepResult struct {
	Name   string
	Type   string
	Series signalkit.Series
}

// ApplyEach applies every step in the container to the original series
// independently and returns one result per step. This mirrors comparison
// plotting, where each transform is judged against the same original.
func (c Container) ApplyEach(s signalkit.Series) ([]StepResult, error) {
	results := make([]StepResult, 0, len(c))
	for _, step := range c {
		out, err := step.Apply(s)
		if err != nil {
			return nil, fmt.Errorf("step %q (%s): %w", step.Label(), step.TypeAsString(), err)
		}
		results = append(results, StepResult{
			Name:   step.Label(),
			Type:   step.TypeAsString(),
			Series: out,
		})
	}
	return results, nil
}

// Apply chains the steps in order, feeding each step's output into the next,
// and returns the final series.
func (c Container) Apply(s signalkit.Series) (signalkit.Series, error) {
	out := s
	for _, step := range c {
		var err error
		out, err = step.Apply(out)
		if err != nil {
			return signalkit.Series{}, fmt.Errorf("step %q (%s): %w", step.Label(), step.TypeAsString(), err)
		}
	}
	return out, nil
}
