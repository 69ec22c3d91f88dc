package board

import (
	"context"
	"encoding/json"
	"net/http"
)

// StatusProvider reports live device condition documents.
type StatusProvider interface {
	// DeviceStatus returns the real-time status JSON: speaker, screen,
	// battery, network and so on.
	DeviceStatus(ctx context.Context) (json.RawMessage, error)

	// SystemInfo returns the static system information JSON.
	SystemInfo(ctx context.Context) (json.RawMessage, error)
}

// AudioOutput controls the audio speaker.
type AudioOutput interface {
	SetVolume(ctx context.Context, volume int) error
}

// Backlight controls screen brightness.
type Backlight interface {
	SetBrightness(ctx context.Context, brightness int) error
}

// Display exposes the screen. Theme returns "" when the display has no theme
// support, which omits the theme tool.
type Display interface {
	Theme() string
	SetTheme(ctx context.Context, name string) error

	Width() int
	Height() int
	Monochrome() bool

	// SnapshotJPEG encodes the current screen contents as JPEG at the
	// given quality (1-100).
	SnapshotJPEG(ctx context.Context, quality int) ([]byte, error)

	// SetPreviewImage shows a downloaded image on the screen.
	SetPreviewImage(ctx context.Context, data []byte) error
}

// Camera captures and explains photos.
type Camera interface {
	Capture(ctx context.Context) error

	// Explain uploads the last capture to the explain endpoint with a
	// question and returns the explanation JSON.
	Explain(ctx context.Context, question string) (json.RawMessage, error)

	// SetExplainEndpoint configures where Explain uploads to. Token may be
	// empty.
	SetExplainEndpoint(url, token string)
}

// LED controls the onboard LED.
type LED interface {
	TurnOn(ctx context.Context) error
}

// SettingsStore is a namespaced string key/value store.
type SettingsStore interface {
	GetString(ctx context.Context, namespace, key string) (string, error)
	SetString(ctx context.Context, namespace, key, value string) error
}

// AppController is the application scheduler collaborator: it runs work on
// the single application thread and owns reboot and firmware replacement.
type AppController interface {
	// Schedule queues fn for execution on the application worker. Jobs run
	// one at a time in FIFO order.
	Schedule(fn func())

	Reboot(ctx context.Context) error
	UpgradeFirmware(ctx context.Context, url string) error
}

// HTTPDoer issues HTTP requests for snapshot upload and image preview.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Capabilities is the set of board collaborators, resolved once at startup.
// Nil entries are queried defensively and omit their dependent tools.
type Capabilities struct {
	Status    StatusProvider
	Audio     AudioOutput
	Backlight Backlight
	Display   Display
	Camera    Camera
	LED       LED
	Settings  SettingsStore
	HTTP      HTTPDoer
}
