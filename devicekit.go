package devicekit

import (
	"context"
	"log/slog"

	"github.com/voicepod/devicekit-go/internal/app"
	"github.com/voicepod/devicekit-go/internal/board"
	"github.com/voicepod/devicekit-go/internal/builtin"
	"github.com/voicepod/devicekit-go/internal/config"
	"github.com/voicepod/devicekit-go/internal/protocol"
	"github.com/voicepod/devicekit-go/internal/settings"
	"github.com/voicepod/devicekit-go/internal/state"
	"github.com/voicepod/devicekit-go/internal/tool"
)

// Transport delivers outbound protocol text on the bidirectional channel the
// orchestrator is connected to. The channel itself (websocket, MQTT, serial)
// is owned by the board firmware, not by this package.
type Transport interface {
	SendMessage(ctx context.Context, data []byte) error
}

// LifecycleHooks are the board-owned reboot and firmware-upgrade operations.
type LifecycleHooks = app.Hooks

// Option configures a Device during construction.
type Option func(*deviceOptions)

type deviceOptions struct {
	logger *slog.Logger
	tools  []*tool.Tool
	hooks  app.Hooks
}

// WithLogger sets the structured logger. The default discards all output.
func WithLogger(log *slog.Logger) Option {
	return func(o *deviceOptions) {
		o.logger = log
	}
}

// WithTools registers board-specific tools. They keep their given order and
// end up after the built-in common tools in listings.
func WithTools(tools ...*Tool) Option {
	return func(o *deviceOptions) {
		o.tools = append(o.tools, tools...)
	}
}

// WithLifecycleHooks wires the board's reboot and firmware-upgrade
// operations into the user-only lifecycle tools.
func WithLifecycleHooks(hooks LifecycleHooks) Option {
	return func(o *deviceOptions) {
		o.hooks = hooks
	}
}

// Device is the assembled control core: tool registry, protocol server,
// application scheduler, and operating-mode state machine.
type Device struct {
	log       *slog.Logger
	machine   *state.Machine
	registry  *tool.Registry
	scheduler *app.Scheduler
	server    *protocol.Server
	store     *settings.Store
}

// New assembles a Device.
//
// Tool registration happens entirely inside New, single-threaded: custom
// tools first, then the built-in common tools spliced ahead of them, then the
// user-only tools, and finally the registry is frozen. Handle no protocol
// traffic before New returns.
//
// When caps.Settings is nil and the config names a settings path, New opens
// the SQLite-backed store there and the Device owns its lifetime (Close).
func New(cfg *Config, caps *Capabilities, transport Transport, opts ...Option) (*Device, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if caps == nil {
		caps = &board.Capabilities{}
	}

	o := &deviceOptions{logger: NopLogger()}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger

	d := &Device{
		log:       log.With("component", "device"),
		machine:   state.NewMachine(log),
		registry:  tool.NewRegistry(log),
		scheduler: app.NewScheduler(log, cfg.Scheduler.QueueSize, o.hooks),
	}

	if caps.Settings == nil && cfg.Settings.Path != "" {
		store, err := settings.Open(log, cfg.Settings.Path)
		if err != nil {
			return nil, err
		}

		d.store = store
		caps.Settings = store
	}

	for _, t := range o.tools {
		d.registry.Add(t)
	}

	d.registry.InsertFront(builtin.Common(caps)...)

	if !cfg.Tools.DisableUserOnly {
		for _, t := range builtin.UserOnly(caps, d.scheduler) {
			d.registry.Add(t)
		}
	}

	d.registry.Freeze()

	serverOpts := []protocol.Option{}
	if caps.Camera != nil {
		serverOpts = append(serverOpts, protocol.WithCamera(caps.Camera))
	}

	d.server = protocol.NewServer(log, d.registry, transport, d.scheduler,
		protocol.ServerInfo{Name: cfg.Board.Name, Version: cfg.Board.BuildVersion},
		serverOpts...)

	d.log.Info("Device assembled",
		"board", cfg.Board.Name,
		"version", cfg.Board.BuildVersion,
		"tools", d.registry.Len())

	return d, nil
}

// HandleMessage processes one inbound protocol message. Safe to call from
// whatever goroutine the transport delivers on; tool side effects always run
// on the scheduler worker.
func (d *Device) HandleMessage(ctx context.Context, data []byte) {
	d.server.HandleMessage(ctx, data)
}

// Run drives the application worker until ctx is cancelled.
func (d *Device) Run(ctx context.Context) error {
	return d.scheduler.Run(ctx)
}

// State returns the operating-mode state machine.
func (d *Device) State() *Machine {
	return d.machine
}

// App returns the application scheduler for board code that needs to run on
// the application worker.
func (d *Device) App() AppController {
	return d.scheduler
}

// ToolCount returns the number of registered tools.
func (d *Device) ToolCount() int {
	return d.registry.Len()
}

// Close releases resources the Device owns. It does not stop Run; cancel its
// context for that.
func (d *Device) Close() error {
	if d.store != nil {
		return d.store.Close()
	}

	return nil
}
