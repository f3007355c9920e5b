package agent

import "errors"

var (
	// ErrConfiguration means the agent was constructed with bad arguments.
	ErrConfiguration = errors.New("invalid agent configuration")

	// ErrDuplicateTool means a tool with the same name is already attached.
	ErrDuplicateTool = errors.New("duplicate tool")

	// ErrToolNotFound means the model asked for a tool the agent does not have.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolLoop means the model requested a second tool round within one
	// chat call. A single round is supported.
	ErrToolLoop = errors.New("model requested chained tool calls")

	// ErrUnknownPreset means the requested specialized-agent kind does not exist.
	ErrUnknownPreset = errors.New("unknown agent preset")
)
