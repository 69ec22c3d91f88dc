// Package protocol implements the JSON-RPC-shaped tool protocol server.
//
// The server parses inbound request envelopes from an abstract text channel,
// performs capability negotiation (initialize), serves paginated tool
// listings under a fixed payload budget (tools/list), and validates and
// schedules tool invocations (tools/call). Tool execution never happens on
// the goroutine that parsed the request: validated arguments are handed to
// the application scheduler, which serializes all tool side effects on one
// worker.
//
// Example usage:
//
//	registry := tool.NewRegistry(log)
//	// ... register tools, then:
//	registry.Freeze()
//
//	server := protocol.NewServer(log, registry, sender, scheduler,
//	    protocol.ServerInfo{Name: "atk-robot", Version: "1.8.9"})
//	server.HandleMessage(ctx, inbound)
package protocol
