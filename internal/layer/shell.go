package layer

/*
#cgo pkg-config: gtk-layer-shell-0
#include <gtk-layer-shell.h>
*/
import "C"
import "unsafe"

// IsSupported reports whether the compositor speaks the layer shell protocol
func IsSupported() bool {
	return C.gtk_layer_is_supported() != 0
}

// InitForWindow initializes a window as a layer shell surface
func InitForWindow(window unsafe.Pointer) {
	C.gtk_layer_init_for_window((*C.GtkWindow)(window))
}

// SetLayer sets the layer for a layer shell surface
func SetLayer(window unsafe.Pointer, layer Layer) {
	C.gtk_layer_set_layer((*C.GtkWindow)(window), C.GtkLayerShellLayer(layer))
}

// SetMonitor puts the surface on a GdkMonitor
func SetMonitor(window unsafe.Pointer, monitor unsafe.Pointer) {
	C.gtk_layer_set_monitor((*C.GtkWindow)(window), (*C.GdkMonitor)(monitor))
}

// SetExclusiveZone sets the exclusive zone for the surface.
// Zero keeps other surfaces where they are.
func SetExclusiveZone(window unsafe.Pointer, zone int) {
	C.gtk_layer_set_exclusive_zone((*C.GtkWindow)(window), C.int(zone))
}

// SetKeyboardMode sets the keyboard interactivity mode
func SetKeyboardMode(window unsafe.Pointer, mode KeyboardMode) {
	C.gtk_layer_set_keyboard_mode((*C.GtkWindow)(window), C.GtkLayerShellKeyboardMode(mode))
}

// Layer represents a layer shell layer
type Layer int

const (
	LayerBackground Layer = 0
	LayerBottom     Layer = 1
	LayerTop        Layer = 2
	LayerOverlay    Layer = 3
)

// KeyboardMode represents keyboard focus mode
type KeyboardMode int

const (
	KeyboardModeNone      KeyboardMode = 0
	KeyboardModeExclusive KeyboardMode = 1
	KeyboardModeOnDemand  KeyboardMode = 2
)
