package agent

import (
	"fmt"
	"sort"

	"ollamagent/internal/ollama"
	"ollamagent/internal/tools"
)

// Kind names a specialized-agent preset.
type Kind string

const (
	KindMath     Kind = "math"
	KindCode     Kind = "code"
	KindCreative Kind = "creative"
	KindAnalysis Kind = "analysis"
	KindResearch Kind = "research"
)

// Preset is an immutable template for constructing a specialized agent:
// a default model, a persona prompt and a default tool set. Tools is a
// constructor so every agent gets its own instances.
type Preset struct {
	Name         string
	DefaultModel string
	SystemPrompt string
	Tools        func() []tools.Tool
}

var presets = map[Kind]Preset{
	KindMath: {
		Name:         "MathAgent",
		DefaultModel: "llama3.2",
		SystemPrompt: `You are a mathematical expert assistant. You excel at:
- Solving complex mathematical problems
- Explaining mathematical concepts clearly
- Performing calculations accurately
- Working with statistics, algebra, calculus, and more

Always show your work step-by-step and use the available tools when needed.`,
		Tools: func() []tools.Tool {
			return []tools.Tool{&tools.UnitConverter{}}
		},
	},
	KindCode: {
		Name:         "CodeAgent",
		DefaultModel: "codellama",
		SystemPrompt: `You are a programming expert assistant. You excel at:
- Writing clean, efficient code in multiple languages
- Debugging and troubleshooting code issues
- Explaining programming concepts
- Code review and optimization
- Best practices and design patterns

Always provide working code examples with clear explanations.`,
		Tools: func() []tools.Tool {
			return []tools.Tool{&tools.FileReader{}, &tools.JSONValidator{}}
		},
	},
	KindCreative: {
		Name:         "CreativeAgent",
		DefaultModel: "llama3.2",
		SystemPrompt: `You are a creative writing expert assistant. You excel at:
- Creative writing and storytelling
- Content creation for various formats
- Brainstorming and ideation
- Editing and improving existing content
- Adapting tone and style for different audiences

Always be creative, engaging, and original in your responses.`,
		Tools: func() []tools.Tool {
			return []tools.Tool{&tools.TextAnalyzer{}}
		},
	},
	KindAnalysis: {
		Name:         "AnalysisAgent",
		DefaultModel: "llama3.2",
		SystemPrompt: `You are a data analysis expert assistant. You excel at:
- Analyzing datasets and finding patterns
- Statistical analysis and interpretation
- Business intelligence and reporting
- Machine learning concepts

Always provide clear insights with supporting evidence.`,
		Tools: func() []tools.Tool {
			return []tools.Tool{&tools.TextAnalyzer{}, &tools.UnitConverter{}, &tools.JSONValidator{}}
		},
	},
	KindResearch: {
		Name:         "ResearchAgent",
		DefaultModel: "llama3.2",
		SystemPrompt: `You are a research specialist assistant. You excel at:
- Finding and analyzing information from various sources
- Summarizing complex topics
- Fact-checking and verification
- Providing comprehensive research reports

Always cite your sources and provide accurate, up-to-date information.`,
		Tools: func() []tools.Tool {
			return []tools.Tool{&tools.Timestamp{}}
		},
	},
}

// Kinds returns the available preset names, sorted.
func Kinds() []Kind {
	out := make([]Kind, 0, len(presets))
	for k := range presets {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NewPreset constructs an agent from the named preset. An empty model
// keeps the preset's default.
func NewPreset(client *ollama.Client, kind Kind, model string) (*Agent, error) {
	p, ok := presets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, kind, Kinds())
	}
	if model == "" {
		model = p.DefaultModel
	}
	return New(client, p.Name, model, p.SystemPrompt, p.Tools()...)
}

// NewMath constructs a math agent; model overrides the preset default.
func NewMath(client *ollama.Client, model string) (*Agent, error) {
	return NewPreset(client, KindMath, model)
}

// NewCode constructs a programming agent.
func NewCode(client *ollama.Client, model string) (*Agent, error) {
	return NewPreset(client, KindCode, model)
}

// NewCreative constructs a creative-writing agent.
func NewCreative(client *ollama.Client, model string) (*Agent, error) {
	return NewPreset(client, KindCreative, model)
}

// NewAnalysis constructs a data-analysis agent.
func NewAnalysis(client *ollama.Client, model string) (*Agent, error) {
	return NewPreset(client, KindAnalysis, model)
}

// NewResearch constructs a research agent.
func NewResearch(client *ollama.Client, model string) (*Agent, error) {
	return NewPreset(client, KindResearch, model)
}
