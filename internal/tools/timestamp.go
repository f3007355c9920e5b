package tools

import (
	"context"
	"time"
)

// Timestamp reports the current time in several formats. The clock can be
// overridden in tests.
type Timestamp struct {
	Now func() time.Time
}

func (t *Timestamp) Name() string { return "timestamp" }

func (t *Timestamp) Description() string {
	return "Get the current date and time in ISO-8601 and other common formats"
}

func (t *Timestamp) InputSchema() any {
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"additionalProperties": false,
	}
}

func (t *Timestamp) Execute(ctx context.Context, input string) (string, error) {
	now := time.Now()
	if t.Now != nil {
		now = t.Now()
	}

	return marshalResult(map[string]any{
		"iso_format":     now.Format(time.RFC3339),
		"unix_timestamp": now.Unix(),
		"human_readable": now.Format("2006-01-02 15:04:05"),
		"date_only":      now.Format("2006-01-02"),
		"time_only":      now.Format("15:04:05"),
	})
}
