package app

import "github.com/veandco/go-sdl2/sdl"

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionResetCamera
	ActionNextMode
	ActionScaleUp
	ActionScaleDown
	ActionOffsetUp
	ActionOffsetDown
	ActionToggleOverview
	ActionMarkerUp
	ActionMarkerDown
	ActionToggleMarker
	ActionToggleGrid
	ActionReload
	ActionScreenshot
	ActionQuit
)

var actionNames = [...]string{
	"none", "reset-camera", "next-mode", "scale-up", "scale-down",
	"offset-up", "offset-down", "toggle-overview", "marker-up", "marker-down",
	"toggle-marker", "toggle-grid", "reload", "screenshot", "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Keymap binds key presses to actions.
type Keymap map[sdl.Scancode]Action

// DefaultKeymap returns the viewer bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		sdl.SCANCODE_RETURN: ActionResetCamera,
		sdl.SCANCODE_T:      ActionNextMode,
		sdl.SCANCODE_I:      ActionScaleUp,
		sdl.SCANCODE_K:      ActionScaleDown,
		sdl.SCANCODE_O:      ActionOffsetUp,
		sdl.SCANCODE_L:      ActionOffsetDown,
		sdl.SCANCODE_Y:      ActionToggleOverview,
		sdl.SCANCODE_N:      ActionMarkerUp,
		sdl.SCANCODE_M:      ActionMarkerDown,
		sdl.SCANCODE_B:      ActionToggleMarker,
		sdl.SCANCODE_G:      ActionToggleGrid,
		sdl.SCANCODE_F5:     ActionReload,
		sdl.SCANCODE_F12:    ActionScreenshot,
		sdl.SCANCODE_ESCAPE: ActionQuit,
	}
}

// Lookup returns the action bound to a key, ActionNone if unbound.
func (k Keymap) Lookup(key sdl.Scancode) Action {
	return k[key]
}

// movementKeys are held-key bindings for camera movement: forward, back,
// left, right.
var movementKeys = [4]sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_S, sdl.SCANCODE_A, sdl.SCANCODE_D}
