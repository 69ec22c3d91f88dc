package builtin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/voicepod/devicekit-go/internal/board"
	"github.com/voicepod/devicekit-go/internal/tool"
)

// UserOnly builds the user-privileged tool set: system introspection,
// lifecycle control, and screen debugging. These are excluded from default
// discovery and appended after all other tools.
func UserOnly(caps *board.Capabilities, app board.AppController) []*tool.Tool {
	var tools []*tool.Tool

	if caps.Status != nil {
		status := caps.Status

		tools = append(tools, tool.New("self.get_system_info",
			"Get the system information",
			tool.PropertyList{},
			func(ctx context.Context, _ tool.PropertyList) (tool.ReturnValue, error) {
				doc, err := status.SystemInfo(ctx)
				if err != nil {
					return tool.ReturnValue{}, err
				}

				return tool.Raw(doc), nil
			},
			tool.UserOnly()))
	}

	if app != nil {
		tools = append(tools, tool.New("self.reboot",
			"Reboot the system",
			tool.PropertyList{},
			func(ctx context.Context, _ tool.PropertyList) (tool.ReturnValue, error) {
				// Queue the reboot as a separate job so the reply goes
				// out before the device goes down.
				app.Schedule(func() {
					_ = app.Reboot(ctx)
				})

				return tool.Bool(true), nil
			},
			tool.UserOnly()))

		tools = append(tools, tool.New("self.upgrade_firmware",
			"Upgrade firmware from a specific URL. This will download and install the "+
				"firmware, then reboot the device.",
			tool.PropertyList{tool.String("url")},
			func(ctx context.Context, args tool.PropertyList) (tool.ReturnValue, error) {
				url, _ := args.Get("url")

				app.Schedule(func() {
					_ = app.UpgradeFirmware(ctx, url.Str())
				})

				return tool.Bool(true), nil
			},
			tool.UserOnly()))
	}

	if caps.Display != nil {
		display := caps.Display

		tools = append(tools, tool.New("self.screen.get_info",
			"Information about the screen, including width, height, etc.",
			tool.PropertyList{},
			func(_ context.Context, _ tool.PropertyList) (tool.ReturnValue, error) {
				return tool.Object(map[string]any{
					"width":      display.Width(),
					"height":     display.Height(),
					"monochrome": display.Monochrome(),
				})
			},
			tool.UserOnly()))

		if caps.HTTP != nil {
			httpDoer := caps.HTTP

			tools = append(tools, tool.New("self.screen.snapshot",
				"Snapshot the screen and upload it to a specific URL",
				tool.PropertyList{
					tool.String("url"),
					tool.Integer("quality", tool.WithDefault(80), tool.WithRange(1, 100)),
				},
				func(ctx context.Context, args tool.PropertyList) (tool.ReturnValue, error) {
					url, _ := args.Get("url")
					quality, _ := args.Get("quality")

					jpeg, err := display.SnapshotJPEG(ctx, quality.Int())
					if err != nil {
						return tool.ReturnValue{}, err
					}

					if err := uploadSnapshot(ctx, httpDoer, url.Str(), jpeg); err != nil {
						return tool.ReturnValue{}, err
					}

					return tool.Bool(true), nil
				},
				tool.UserOnly()))

			tools = append(tools, tool.New("self.screen.preview_image",
				"Preview an image on the screen",
				tool.PropertyList{tool.String("url")},
				func(ctx context.Context, args tool.PropertyList) (tool.ReturnValue, error) {
					url, _ := args.Get("url")

					data, err := downloadImage(ctx, httpDoer, url.Str())
					if err != nil {
						return tool.ReturnValue{}, err
					}

					if err := display.SetPreviewImage(ctx, data); err != nil {
						return tool.ReturnValue{}, err
					}

					return tool.Bool(true), nil
				},
				tool.UserOnly()))
		}
	}

	if caps.Settings != nil {
		store := caps.Settings

		tools = append(tools, tool.New("self.assets.set_download_url",
			"Set the download url for the assets",
			tool.PropertyList{tool.String("url")},
			func(ctx context.Context, args tool.PropertyList) (tool.ReturnValue, error) {
				url, _ := args.Get("url")
				if err := store.SetString(ctx, "assets", "download_url", url.Str()); err != nil {
					return tool.ReturnValue{}, err
				}

				return tool.Bool(true), nil
			},
			tool.UserOnly()))
	}

	return tools
}

// uploadSnapshot POSTs the JPEG as multipart/form-data under the "file"
// field.
func uploadSnapshot(ctx context.Context, doer board.HTTPDoer, url string, jpeg []byte) error {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="screenshot.jpg"`)
	header.Set("Content-Type", "image/jpeg")

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("build snapshot form: %w", err)
	}

	if _, err := part.Write(jpeg); err != nil {
		return fmt.Errorf("write snapshot form: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close snapshot form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("open URL %s: %w", url, err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := doer.Do(req)
	if err != nil {
		return fmt.Errorf("upload snapshot to %s: %w", url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// downloadImage GETs an image for on-screen preview.
func downloadImage(ctx context.Context, doer board.HTTPDoer, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("open URL %s: %w", url, err)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image %s: %w", url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download image %s: %w", url, err)
	}

	return data, nil
}
