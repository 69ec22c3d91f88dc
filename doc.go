// Package devicekit is the control core of a voicepod conversational
// assistant device.
//
// It exposes the device's capabilities as remotely invokable, typed,
// discoverable tools over a JSON-RPC-shaped protocol consumed by an external
// LLM orchestrator, and it governs the device's operating-mode lifecycle
// through a validated finite-state machine.
//
// # Basic Usage
//
// Construct a Device from a board configuration, the board's capability set,
// and the transport that owns the bidirectional text channel:
//
//	cfg, err := devicekit.LoadConfig("device.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	device, err := devicekit.New(cfg, caps, transport)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	go device.Run(ctx)
//
//	// Feed inbound protocol text as the transport delivers it:
//	device.HandleMessage(ctx, inbound)
//
// Board-specific tools are supplied with WithTools; the built-in common
// tools are always spliced ahead of them so the most frequently used tools
// keep low indices across listings:
//
//	device, err := devicekit.New(cfg, caps, transport,
//	    devicekit.WithTools(
//	        devicekit.NewTool("self.chassis.go_forward", "Move forward.", nil, forward),
//	    ),
//	)
//
// The operating mode lives in the device's state machine:
//
//	device.State().AddListener(func(old, new devicekit.DeviceState) {
//	    fmt.Println(old, "->", new)
//	})
//	device.State().TransitionTo(devicekit.StateStarting)
package devicekit
