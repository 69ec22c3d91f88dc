package tool

import (
	"log/slog"
	"sync/atomic"
)

// Registry is the ordered collection of tool descriptors.
//
// Tools are added during a single-threaded startup phase and never mutated or
// removed afterwards. Call Freeze once registration completes; from then on
// reads require no locking, which the protocol server relies on.
type Registry struct {
	log    *slog.Logger
	tools  []*Tool
	frozen atomic.Bool
}

// NewRegistry creates an empty registry.
func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log: log.With("component", "registry"),
	}
}

// Add appends a tool. A duplicate name or an add after Freeze is logged and
// ignored; the registry is unchanged.
func (r *Registry) Add(t *Tool) {
	if r.frozen.Load() {
		r.log.Warn("Registry frozen, tool ignored", "tool", t.Name())

		return
	}

	if r.find(t.Name()) != nil {
		r.log.Warn("Tool already added", "tool", t.Name())

		return
	}

	r.log.Info("Add tool", "tool", t.Name(), "user_only", t.IsUserOnly())
	r.tools = append(r.tools, t)
}

// InsertFront splices tools ahead of everything registered so far. Frequently
// used tools stay at low indices so the orchestrator side can reuse its
// response prefix cache across listings. Duplicate names are logged and
// skipped like in Add.
func (r *Registry) InsertFront(tools ...*Tool) {
	if r.frozen.Load() {
		r.log.Warn("Registry frozen, tools ignored")

		return
	}

	original := r.tools
	r.tools = nil

	for _, t := range tools {
		r.Add(t)
	}

	for _, t := range original {
		if r.find(t.Name()) != nil {
			r.log.Warn("Tool already added", "tool", t.Name())

			continue
		}

		r.tools = append(r.tools, t)
	}
}

// Freeze seals the registry for protocol traffic.
func (r *Registry) Freeze() {
	r.frozen.Store(true)
	r.log.Debug("Registry frozen", "tools", len(r.tools))
}

// Find returns the tool with the given name, or nil.
func (r *Registry) Find(name string) *Tool {
	return r.find(name)
}

func (r *Registry) find(name string) *Tool {
	for _, t := range r.tools {
		if t.Name() == name {
			return t
		}
	}

	return nil
}

// Tools returns the tools in registration order. Callers must not mutate the
// returned slice.
func (r *Registry) Tools() []*Tool {
	return r.tools
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}
