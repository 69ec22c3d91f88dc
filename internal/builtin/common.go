package builtin

import (
	"context"

	"github.com/voicepod/devicekit-go/internal/board"
	"github.com/voicepod/devicekit-go/internal/tool"
)

// Common builds the shared tool set for the given capabilities.
//
// The returned order matters: register these ahead of board-specific tools
// (Registry.InsertFront) so the device-status and volume tools keep their
// low-index placement.
func Common(caps *board.Capabilities) []*tool.Tool {
	var tools []*tool.Tool

	if caps.Status != nil {
		status := caps.Status

		tools = append(tools, tool.New("self.get_device_status",
			"Provides the real-time information of the device, including the current status " +
				"of the audio speaker, screen, battery, network, etc.\n" +
				"Use this tool for: \n" +
				"1. Answering questions about current condition (e.g. what is the current volume of the audio speaker?)\n" +
				"2. As the first step to control the device (e.g. turn up / down the volume of the audio speaker, etc.)",
			tool.PropertyList{},
			func(ctx context.Context, _ tool.PropertyList) (tool.ReturnValue, error) {
				doc, err := status.DeviceStatus(ctx)
				if err != nil {
					return tool.ReturnValue{}, err
				}

				return tool.Raw(doc), nil
			}))
	}

	if caps.Audio != nil {
		audio := caps.Audio

		tools = append(tools, tool.New("self.audio_speaker.set_volume",
			"Set the volume of the audio speaker. If the current volume is unknown, you must " +
				"call `self.get_device_status` tool first and then call this tool.",
			tool.PropertyList{tool.Integer("volume", tool.WithRange(0, 100))},
			func(ctx context.Context, args tool.PropertyList) (tool.ReturnValue, error) {
				volume, _ := args.Get("volume")
				if err := audio.SetVolume(ctx, volume.Int()); err != nil {
					return tool.ReturnValue{}, err
				}

				return tool.Bool(true), nil
			}))
	}

	if caps.LED != nil {
		led := caps.LED

		tools = append(tools, tool.New("self.led.turn_on",
			"Turn on the onboard LED.",
			tool.PropertyList{},
			func(ctx context.Context, _ tool.PropertyList) (tool.ReturnValue, error) {
				if err := led.TurnOn(ctx); err != nil {
					return tool.ReturnValue{}, err
				}

				return tool.Bool(true), nil
			}))
	}

	if caps.Backlight != nil {
		backlight := caps.Backlight

		tools = append(tools, tool.New("self.screen.set_brightness",
			"Set the brightness of the screen.",
			tool.PropertyList{tool.Integer("brightness", tool.WithRange(0, 100))},
			func(ctx context.Context, args tool.PropertyList) (tool.ReturnValue, error) {
				brightness, _ := args.Get("brightness")
				if err := backlight.SetBrightness(ctx, brightness.Int()); err != nil {
					return tool.ReturnValue{}, err
				}

				return tool.Bool(true), nil
			}))
	}

	if caps.Display != nil && caps.Display.Theme() != "" {
		display := caps.Display

		tools = append(tools, tool.New("self.screen.set_theme",
			"Set the theme of the screen. The theme can be `light` or `dark`.",
			tool.PropertyList{tool.String("theme")},
			func(ctx context.Context, args tool.PropertyList) (tool.ReturnValue, error) {
				theme, _ := args.Get("theme")
				if err := display.SetTheme(ctx, theme.Str()); err != nil {
					return tool.Bool(false), nil
				}

				return tool.Bool(true), nil
			}))
	}

	if caps.Camera != nil {
		camera := caps.Camera

		tools = append(tools, tool.New("self.camera.take_photo",
			"Always remember you have a camera. If the user asks you to see something, use " +
				"this tool to take a photo and then explain it.\n" +
				"Args:\n" +
				"  `question`: The question that you want to ask about the photo.\n" +
				"Return:\n" +
				"  A JSON object that provides the photo information.",
			tool.PropertyList{tool.String("question")},
			func(ctx context.Context, args tool.PropertyList) (tool.ReturnValue, error) {
				if err := camera.Capture(ctx); err != nil {
					return tool.ReturnValue{}, err
				}

				question, _ := args.Get("question")

				explanation, err := camera.Explain(ctx, question.Str())
				if err != nil {
					return tool.ReturnValue{}, err
				}

				return tool.Raw(explanation), nil
			}))
	}

	return tools
}
