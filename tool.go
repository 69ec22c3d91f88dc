package devicekit

import "github.com/voicepod/devicekit-go/internal/tool"

// Re-export the tool model for public API.
type (
	// Tool is an immutable descriptor for one remotely invokable device
	// capability.
	Tool = tool.Tool

	// ToolHandler executes a tool invocation with its bound arguments.
	// Handlers always run on the single application worker.
	ToolHandler = tool.Handler

	// ToolOption configures a Tool during construction.
	ToolOption = tool.ToolOption

	// Property describes one tool parameter.
	Property = tool.Property

	// PropertyOption configures a Property during construction.
	PropertyOption = tool.PropertyOption

	// PropertyList is an ordered list of tool parameters.
	PropertyList = tool.PropertyList

	// ReturnValue is the serialized outcome of a successful tool
	// invocation: a boolean, a string, or a structured JSON value.
	ReturnValue = tool.ReturnValue
)

// NewTool creates a tool descriptor. Names are dot-namespaced, e.g.
// "self.chassis.go_forward".
func NewTool(name, description string, properties PropertyList, handler ToolHandler, opts ...ToolOption) *Tool {
	return tool.New(name, description, properties, handler, opts...)
}

// UserOnlyTool marks a tool as user-privileged: excluded from default
// discovery, listed only on request.
func UserOnlyTool() ToolOption {
	return tool.UserOnly()
}

// BooleanProperty declares a boolean parameter.
func BooleanProperty(name string, opts ...PropertyOption) Property {
	return tool.Boolean(name, opts...)
}

// IntegerProperty declares an integer parameter.
func IntegerProperty(name string, opts ...PropertyOption) Property {
	return tool.Integer(name, opts...)
}

// StringProperty declares a string parameter.
func StringProperty(name string, opts ...PropertyOption) Property {
	return tool.String(name, opts...)
}

// WithDefault gives a property a default value, making it optional for
// callers.
func WithDefault(v any) PropertyOption {
	return tool.WithDefault(v)
}

// WithRange bounds an integer property to [min, max] inclusive.
func WithRange(min, max int) PropertyOption {
	return tool.WithRange(min, max)
}

// BoolResult returns a boolean tool result.
func BoolResult(v bool) ReturnValue {
	return tool.Bool(v)
}

// TextResult returns a string tool result.
func TextResult(s string) ReturnValue {
	return tool.Text(s)
}

// ObjectResult returns a structured tool result marshaled from v.
func ObjectResult(v any) (ReturnValue, error) {
	return tool.Object(v)
}
