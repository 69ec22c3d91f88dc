// Package tool defines the device tool model and the tool registry.
//
// A tool is a named, described, typed-parameter device capability that an
// external orchestrator can invoke remotely. Tools are registered during a
// single-threaded startup phase; once registration completes the registry is
// frozen and all call-time reads are lock-free.
//
// Tool parameter lists serialize to JSON Schema (google/jsonschema-go) and
// tool listing entries use the MCP wire shape (modelcontextprotocol/go-sdk).
package tool
