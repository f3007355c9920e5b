package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedUnit is returned for unit pairs the converter does not know.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// factors per unit type, expressed in the base unit (meter, kilogram).
var unitFactors = map[string]map[string]float64{
	"length": {
		"meter":      1.0,
		"kilometer":  1000.0,
		"centimeter": 0.01,
		"millimeter": 0.001,
		"inch":       0.0254,
		"foot":       0.3048,
		"yard":       0.9144,
		"mile":       1609.34,
	},
	"weight": {
		"kilogram": 1.0,
		"gram":     0.001,
		"pound":    0.453592,
		"ounce":    0.0283495,
		"ton":      1000.0,
	},
}

// UnitConverter converts between length, weight and temperature units.
type UnitConverter struct{}

func (u *UnitConverter) Name() string { return "unit_converter" }

func (u *UnitConverter) Description() string {
	return "Convert a value between units of length (meter, foot, mile, ...), weight (kilogram, pound, ...) or temperature (celsius, fahrenheit, kelvin)"
}

func (u *UnitConverter) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value": map[string]any{
				"type":        "number",
				"description": "The value to convert",
			},
			"from_unit": map[string]any{
				"type":        "string",
				"description": "Source unit name, e.g. celsius or meter",
			},
			"to_unit": map[string]any{
				"type":        "string",
				"description": "Target unit name, e.g. fahrenheit or foot",
			},
		},
		"required":             []string{"value", "from_unit", "to_unit"},
		"additionalProperties": false,
	}
}

func (u *UnitConverter) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Value    float64 `json:"value"`
		FromUnit string  `json:"from_unit"`
		ToUnit   string  `json:"to_unit"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing unit_converter input: %w", err)
	}

	result, unitType, err := Convert(args.Value, args.FromUnit, args.ToUnit)
	if err != nil {
		return "", err
	}

	return marshalResult(map[string]any{
		"original_value":  args.Value,
		"original_unit":   args.FromUnit,
		"converted_value": result,
		"converted_unit":  args.ToUnit,
		"unit_type":       unitType,
	})
}

// Convert translates value from one unit to another, inferring the unit
// type from the unit names. Both units must belong to the same type.
func Convert(value float64, fromUnit, toUnit string) (float64, string, error) {
	from := strings.ToLower(strings.TrimSpace(fromUnit))
	to := strings.ToLower(strings.TrimSpace(toUnit))

	if isTemperature(from) && isTemperature(to) {
		return convertTemperature(value, from, to), "temperature", nil
	}

	for unitType, factors := range unitFactors {
		fromFactor, okFrom := factors[from]
		toFactor, okTo := factors[to]
		if okFrom && okTo {
			return value * fromFactor / toFactor, unitType, nil
		}
	}

	return 0, "", fmt.Errorf("%w pair: %s -> %s", ErrUnsupportedUnit, fromUnit, toUnit)
}

func isTemperature(unit string) bool {
	switch unit {
	case "celsius", "fahrenheit", "kelvin":
		return true
	}
	return false
}

// convertTemperature goes through celsius as the intermediate scale.
func convertTemperature(value float64, from, to string) float64 {
	var celsius float64
	switch from {
	case "fahrenheit":
		celsius = (value - 32) * 5 / 9
	case "kelvin":
		celsius = value - 273.15
	default:
		celsius = value
	}

	switch to {
	case "fahrenheit":
		return celsius*9/5 + 32
	case "kelvin":
		return celsius + 273.15
	default:
		return celsius
	}
}
