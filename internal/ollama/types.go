package ollama

import "encoding/json"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is a single entry in the conversation sent to /api/chat.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall is the model asking for one of the supplied tools to be invoked.
type ToolCall struct {
	Function ToolCallFunction `json:"function"`
}

type ToolCallFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolDef describes a callable tool to the model.
type ToolDef struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

type ToolFunction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"`
}

// NewToolDef wraps a function schema in the envelope /api/chat expects.
func NewToolDef(name, description string, parameters any) ToolDef {
	return ToolDef{
		Type: "function",
		Function: ToolFunction{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// ChatResult is the model's reply to one chat request: either plain
// assistant text or a request to invoke a tool. Callers branch on
// IsToolCall rather than inspecting the raw message.
type ChatResult struct {
	Message Message
}

func (r *ChatResult) IsToolCall() bool { return len(r.Message.ToolCalls) > 0 }

func (r *ChatResult) Text() string { return r.Message.Content }

func (r *ChatResult) ToolCalls() []ToolCall { return r.Message.ToolCalls }

// ModelInfo is one entry from /api/tags.
type ModelInfo struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	ModifiedAt string `json:"modified_at"`
	Size       int64  `json:"size"`
	Digest     string `json:"digest"`
}

// ModelDetails is the /api/show response for a single model.
type ModelDetails struct {
	License    string `json:"license"`
	Modelfile  string `json:"modelfile"`
	Parameters string `json:"parameters"`
	Template   string `json:"template"`
	Details    struct {
		Family            string `json:"family"`
		ParameterSize     string `json:"parameter_size"`
		QuantizationLevel string `json:"quantization_level"`
	} `json:"details"`
}
