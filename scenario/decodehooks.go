package scenario

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// GetDecodeHook returns a decodeHook function that can be used to unmarshal
// steps from a yaml file using mapstructure. This supports configuration
// solutions like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*Step)(nil)).Elem() {
			// If the target type is Step, create the correct step type from the yaml entry
			return createStepFromYamlEntry(yamlEntry)
		}
		// Otherwise, return the yaml entry as is (default behaviour)
		return yamlEntry, nil
	}
}

// Creates a step from a yaml entry based on the step "type" (or "Type") field.
func createStepFromYamlEntry(yamlEntry interface{}) (Step, error) {
	m, err := toStringKeyMap(yamlEntry)
	if err != nil {
		return nil, err
	}

	// must check both m["type"] and m["Type"] because some yaml parsers
	// convert to lower case and some don't
	typeStr, ok := m["type"].(string)
	if !ok {
		typeStr, ok = m["Type"].(string)
		if !ok {
			return nil, errors.New("step type field is missing or not a string")
		}
	}

	var step Step
	switch typeStr {
	case "shift":
		step = &shiftStep{}
	case "scale":
		step = &scaleStep{}
	case "affine":
		step = &affineStep{}
	default:
		return nil, fmt.Errorf("unknown step type: %s", typeStr)
	}

	// Use mapstructure to decode the map into Step
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			shiftStepDecodeHookFunc(),
			scaleStepDecodeHookFunc(),
			affineStepDecodeHookFunc(),
		),
		Result: &step,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(m); err != nil {
		return nil, err
	}

	return step, nil
}

// Returns a DecodeHookFunc that can be used to unmarshal a shiftStep.
func shiftStepDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(shiftStep{}) {
			var params ShiftParams
			if err := mapstructure.Decode(data, &params); err != nil {
				return nil, err
			}
			return NewShiftStep(params)
		}
		return data, nil
	}
}

// Returns a DecodeHookFunc that can be used to unmarshal a scaleStep.
func scaleStepDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(scaleStep{}) {
			var params ScaleParams
			if err := mapstructure.Decode(data, &params); err != nil {
				return nil, err
			}
			return NewScaleStep(params)
		}
		return data, nil
	}
}

// Returns a DecodeHookFunc that can be used to unmarshal an affineStep.
func affineStepDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(affineStep{}) {
			var params AffineParams
			if err := mapstructure.Decode(data, &params); err != nil {
				return nil, err
			}
			return NewAffineStep(params)
		}
		return data, nil
	}
}

// toStringKeyMap normalises the map types produced by different yaml parsers.
// yaml.v2 produces map[interface{}]interface{}, viper produces
// map[string]interface{}.
func toStringKeyMap(yamlEntry interface{}) (map[string]interface{}, error) {
	switch m := yamlEntry.(type) {
	case map[string]interface{}:
		return m, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml entry key is not a string: %v", k)
			}
			out[key] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("yaml entry cannot be parsed to map[string]interface{}: %v", yamlEntry)
	}
}
