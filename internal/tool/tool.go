package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler executes a tool invocation with its bound arguments. Handlers run
// on the single application worker goroutine, never on the goroutine that
// parsed the request.
type Handler func(ctx context.Context, args PropertyList) (ReturnValue, error)

// ToolOption configures a Tool during construction.
type ToolOption func(*Tool)

// UserOnly marks the tool as user-privileged: it is excluded from default
// discovery and listed only when the caller asks for user tools.
func UserOnly() ToolOption {
	return func(t *Tool) {
		t.userOnly = true
	}
}

// Tool is an immutable descriptor for one remotely invokable capability.
//
// The description doubles as LLM-facing documentation, so it should explain
// when and how the orchestrator ought to use the tool.
type Tool struct {
	name        string
	description string
	properties  PropertyList
	userOnly    bool
	handler     Handler
}

// New creates a tool descriptor. Names are dot-namespaced, e.g.
// "self.audio_speaker.set_volume".
func New(name, description string, properties PropertyList, handler Handler, opts ...ToolOption) *Tool {
	t := &Tool{
		name:        name,
		description: description,
		properties:  properties,
		handler:     handler,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Name returns the tool name.
func (t *Tool) Name() string { return t.name }

// Description returns the tool description.
func (t *Tool) Description() string { return t.description }

// Properties returns the declared parameter list.
func (t *Tool) Properties() PropertyList { return t.properties }

// IsUserOnly reports whether the tool is excluded from default discovery.
func (t *Tool) IsUserOnly() bool { return t.userOnly }

// WireEntry returns the MCP wire form of the tool for tools/list.
func (t *Tool) WireEntry() *mcp.Tool {
	return &mcp.Tool{
		Name:        t.name,
		Description: t.description,
		InputSchema: t.properties.Schema(),
	}
}

// Call invokes the handler with bound arguments. The outcome is always an
// explicit (value, error) pair: a panicking handler is recovered and surfaced
// as an error affecting only this call.
func (t *Tool) Call(ctx context.Context, args PropertyList) (rv ReturnValue, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", t.name, r)
		}
	}()

	return t.handler(ctx, args)
}
