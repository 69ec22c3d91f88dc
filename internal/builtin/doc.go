// Package builtin assembles the device's built-in tool set from the board
// capabilities.
//
// Common tools are spliced ahead of board-specific tools in the registry so
// the most frequently invoked ones sit at low indices, letting the
// orchestrator reuse its prompt cache across listings. User-only tools are
// appended after everything else and excluded from default discovery.
//
// A tool whose capability is absent is simply not built; missing hardware is
// never an error.
package builtin
