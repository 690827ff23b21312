package hotkeys

import (
	"fmt"
	"log"
	"sync"

	"github.com/1broseidon/glide/internal/animation"
	"github.com/1broseidon/glide/internal/layout"
	"github.com/1broseidon/glide/internal/platform"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Placer moves the focused window into a named placement.
type Placer interface {
	Place(placementName, styleOverride string) (layout.Placement, *animation.Session, error)
}

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Handler manages global keyboard shortcuts
type Handler struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	placer Placer
}

var ignoreModsOnce sync.Once

// NewHandler creates a new hotkey handler.
func NewHandler(backend platform.Backend, placer Placer) *Handler {
	var xu *xgbutil.XUtil
	var root xproto.Window
	if accessor, ok := backend.(x11Accessor); ok {
		xu = accessor.XUtil()
		root = accessor.RootWindow()
	}

	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Handler{
		xu:     xu,
		root:   root,
		placer: placer,
	}
}

// RegisterBindings binds each configured key sequence to its placement.
// Keys of the map are placement names, values are keybind sequences
// like "Mod4-Left" or "Mod4-Shift-m".
func (h *Handler) RegisterBindings(bindings map[string]string) error {
	for name, sequence := range bindings {
		placement, err := layout.ParsePlacement(name)
		if err != nil {
			return fmt.Errorf("hotkey binding %q: %w", sequence, err)
		}

		seq := sequence
		if err := h.RegisterFunc(seq, func() {
			if _, _, err := h.placer.Place(string(placement), ""); err != nil {
				log.Printf("Hotkey %s: placement %s failed: %v", seq, placement, err)
			}
		}); err != nil {
			return fmt.Errorf("failed to register hotkey %q for %s: %w", sequence, placement, err)
		}
	}
	return nil
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	if xu == nil {
		return
	}

	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
