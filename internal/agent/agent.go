package agent

import (
	"context"
	"fmt"
	"log/slog"

	"ollamagent/internal/ollama"
	"ollamagent/internal/tools"
	"ollamagent/internal/trace"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Turn is one entry in an agent's conversation history.
type Turn struct {
	Role    string
	Content string
	Tool    string // set when Role is RoleTool
}

// Agent wraps a model, a system prompt and a tool set behind a single Chat
// operation. Model and system prompt are fixed at construction; a different
// configuration means a new Agent. History is owned by the instance and
// mutated only by Chat, so separate agents never share state.
type Agent struct {
	name         string
	model        string
	systemPrompt string
	client       *ollama.Client
	tools        []tools.Tool
	history      []Turn
}

func New(client *ollama.Client, name, model, systemPrompt string, toolset ...tools.Tool) (*Agent, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrConfiguration)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model is empty", ErrConfiguration)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: nil client", ErrConfiguration)
	}

	a := &Agent{
		name:         name,
		model:        model,
		systemPrompt: systemPrompt,
		client:       client,
	}
	for _, t := range toolset {
		if err := a.AddTool(t); err != nil {
			return nil, err
		}
	}

	slog.Debug("agent created", "name", name, "model", model, "tools", len(a.tools))
	return a, nil
}

func (a *Agent) Name() string         { return a.name }
func (a *Agent) Model() string        { return a.model }
func (a *Agent) SystemPrompt() string { return a.systemPrompt }

// Tools returns the attached tools in attachment order.
func (a *Agent) Tools() []tools.Tool {
	out := make([]tools.Tool, len(a.tools))
	copy(out, a.tools)
	return out
}

// History returns a copy of the conversation so far.
func (a *Agent) History() []Turn {
	out := make([]Turn, len(a.history))
	copy(out, a.history)
	return out
}

// AddTool attaches a tool. Names must be unique; a clash fails and leaves
// the tool list unchanged.
func (a *Agent) AddTool(t tools.Tool) error {
	if a.findTool(t.Name()) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name())
	}
	a.tools = append(a.tools, t)
	return nil
}

func (a *Agent) findTool(name string) tools.Tool {
	for _, t := range a.tools {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

// Chat sends the accumulated conversation plus the user message to the
// model and returns its text. If the model requests a tool, the tool runs
// once and the conversation is re-sent for a final answer. Turns are
// appended to history only when the whole call succeeds; on any failure
// history is left as it was.
func (a *Agent) Chat(ctx context.Context, message string) (string, error) {
	runID := uuid.NewString()
	ctx, span := trace.Tracer().Start(ctx, "agent.chat",
		oteltrace.WithAttributes(
			attribute.String("agent.name", a.name),
			attribute.String("agent.model", a.model),
			attribute.String("agent.run_id", runID),
		),
	)
	defer span.End()

	text, pending, err := a.converse(ctx, message)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	a.history = append(a.history, pending...)
	return text, nil
}

func (a *Agent) converse(ctx context.Context, message string) (string, []Turn, error) {
	messages := a.messages()
	messages = append(messages, ollama.Message{Role: ollama.RoleUser, Content: message})
	pending := []Turn{{Role: RoleUser, Content: message}}

	result, err := a.client.Chat(ctx, a.model, messages, a.toolDefs())
	if err != nil {
		return "", nil, err
	}

	if result.IsToolCall() {
		call := result.ToolCalls()[0]
		name := call.Function.Name
		slog.Debug("agent: tool requested", "agent", a.name, "tool", name)

		tool := a.findTool(name)
		if tool == nil {
			return "", nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
		}

		output, err := withTrace(tool).Execute(ctx, string(call.Function.Arguments))
		if err != nil {
			return "", nil, err
		}
		pending = append(pending, Turn{Role: RoleTool, Content: output, Tool: name})

		// Feed the tool result back for the final textual answer.
		messages = append(messages,
			result.Message,
			ollama.Message{Role: ollama.RoleTool, Content: output},
		)
		result, err = a.client.Chat(ctx, a.model, messages, a.toolDefs())
		if err != nil {
			return "", nil, err
		}
		if result.IsToolCall() {
			return "", nil, fmt.Errorf("%w: %s", ErrToolLoop, result.ToolCalls()[0].Function.Name)
		}
	}

	text := result.Text()
	pending = append(pending, Turn{Role: RoleAssistant, Content: text})
	return text, pending, nil
}

// messages renders the system prompt and history as wire messages.
func (a *Agent) messages() []ollama.Message {
	out := make([]ollama.Message, 0, len(a.history)+1)
	if a.systemPrompt != "" {
		out = append(out, ollama.Message{Role: ollama.RoleSystem, Content: a.systemPrompt})
	}
	for _, turn := range a.history {
		out = append(out, ollama.Message{Role: turn.Role, Content: turn.Content})
	}
	return out
}

func (a *Agent) toolDefs() []ollama.ToolDef {
	if len(a.tools) == 0 {
		return nil
	}
	defs := make([]ollama.ToolDef, 0, len(a.tools))
	for _, t := range a.tools {
		defs = append(defs, ollama.NewToolDef(t.Name(), t.Description(), t.InputSchema()))
	}
	return defs
}
