package devicekit

import "github.com/voicepod/devicekit-go/internal/board"

// Re-export the board capability interfaces for public API.
// Every capability is optional: a nil entry omits the tools depending on it.
type (
	// Capabilities is the board collaborator set, resolved once at startup.
	Capabilities = board.Capabilities

	// StatusProvider reports live device condition documents.
	StatusProvider = board.StatusProvider

	// AudioOutput controls the audio speaker.
	AudioOutput = board.AudioOutput

	// Backlight controls screen brightness.
	Backlight = board.Backlight

	// Display exposes the screen.
	Display = board.Display

	// Camera captures and explains photos.
	Camera = board.Camera

	// LED controls the onboard LED.
	LED = board.LED

	// SettingsStore is a namespaced string key/value store.
	SettingsStore = board.SettingsStore

	// AppController runs work on the single application thread and owns
	// reboot and firmware replacement.
	AppController = board.AppController

	// HTTPDoer issues HTTP requests for snapshot upload and image preview.
	HTTPDoer = board.HTTPDoer
)
