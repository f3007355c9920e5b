package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Weather returns placeholder weather data. There is no weather provider
// wired up; the tool exists so agents can exercise the contract.
// TODO: back this with a real forecast API once one is chosen.
type Weather struct{}

func (w *Weather) Name() string { return "weather" }

func (w *Weather) Description() string {
	return "Get current weather information for a location"
}

func (w *Weather) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"location": map[string]any{
				"type":        "string",
				"description": "City name or location",
			},
		},
		"required":             []string{"location"},
		"additionalProperties": false,
	}
}

func (w *Weather) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Location string `json:"location"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing weather input: %w", err)
	}

	return marshalResult(map[string]any{
		"location":    args.Location,
		"temperature": "22°C",
		"condition":   "Partly cloudy",
		"humidity":    "65%",
		"wind":        "10 km/h",
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
