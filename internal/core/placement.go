package core

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"unsafe"

	"github.com/chess10kp/ecws/internal/launcher"
	"github.com/chess10kp/ecws/internal/layer"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	"github.com/joshuarubin/go-sway"
)

// placeWindow centers the window on screen index. It must run before the window
// is shown.
func placeWindow(window *gtk.Window, plan launcher.Plan, index int) {
	if os.Getenv("SWAYSOCK") != "" {
		err := placeWithSway(window, plan, index)
		if err == nil {
			return
		}
		log.Printf("[PLACE] sway placement unavailable: %v", err)
	}

	if os.Getenv("WAYLAND_DISPLAY") != "" && layer.IsSupported() {
		placeWithLayerShell(window, index)
		return
	}

	placeWithGDK(window, plan, index)
}

// swayScreens returns the active sway outputs in IPC order
func swayScreens(ctx context.Context, client sway.Client) ([]launcher.Rect, error) {
	outputs, err := client.GetOutputs(ctx)
	if err != nil {
		return nil, err
	}

	screens := make([]launcher.Rect, 0, len(outputs))
	for _, o := range outputs {
		if !o.Active {
			continue
		}
		screens = append(screens, launcher.Rect{
			X:      int(o.Rect.X),
			Y:      int(o.Rect.Y),
			Width:  int(o.Rect.Width),
			Height: int(o.Rect.Height),
		})
	}
	return screens, nil
}

// placeWithSway floats the window and moves it once it is mapped. Sway ignores
// client positioning, so the move goes through IPC.
func placeWithSway(window *gtk.Window, plan launcher.Plan, index int) error {
	ctx := context.Background()
	client, err := sway.New(ctx)
	if err != nil {
		return err
	}

	screens, err := swayScreens(ctx, client)
	if err != nil {
		return err
	}
	screen, used, ok := launcher.SelectScreen(screens, index)
	if !ok {
		return fmt.Errorf("no active outputs")
	}
	x, y := launcher.CenterIn(screen, plan.Width, plan.Height)
	log.Printf("[PLACE] sway output %d, position %d,%d", used, x, y)

	command := fmt.Sprintf(`[title="^%s$"] floating enable, border none, move absolute position %d %d`,
		regexp.QuoteMeta(windowTitle), x, y)

	window.Connect("map-event", func() bool {
		replies, err := client.RunCommand(ctx, command)
		if err != nil {
			log.Printf("[PLACE] sway command failed: %v", err)
			return false
		}
		for _, r := range replies {
			if !r.Success {
				log.Printf("[PLACE] sway command failed: %s", r.Error)
			}
		}
		return false
	})
	return nil
}

// placeWithLayerShell turns the window into an unanchored overlay surface,
// which the compositor centers on the chosen monitor.
func placeWithLayerShell(window *gtk.Window, index int) {
	native := unsafe.Pointer(window.Native())
	layer.InitForWindow(native)
	layer.SetLayer(native, layer.LayerOverlay)
	layer.SetKeyboardMode(native, layer.KeyboardModeExclusive)
	layer.SetExclusiveZone(native, 0)

	display, err := gdk.DisplayGetDefault()
	if err != nil {
		log.Printf("[PLACE] No display: %v", err)
		return
	}

	n := display.GetNMonitors()
	if index < 0 || index >= n {
		index = 0
	}
	monitor, err := display.GetMonitor(index)
	if err != nil || monitor == nil {
		log.Printf("[PLACE] No monitor %d: %v", index, err)
		return
	}
	layer.SetMonitor(native, unsafe.Pointer(monitor.Native()))
	log.Printf("[PLACE] layer shell on monitor %d", index)
}

// gdkScreens returns the work areas of all GDK monitors
func gdkScreens() []launcher.Rect {
	display, err := gdk.DisplayGetDefault()
	if err != nil {
		log.Printf("[PLACE] No display: %v", err)
		return nil
	}

	var screens []launcher.Rect
	for i := 0; i < display.GetNMonitors(); i++ {
		monitor, err := display.GetMonitor(i)
		if err != nil || monitor == nil {
			continue
		}
		area := monitor.GetWorkarea()
		screens = append(screens, launcher.Rect{
			X:      area.GetX(),
			Y:      area.GetY(),
			Width:  area.GetWidth(),
			Height: area.GetHeight(),
		})
	}
	return screens
}

func placeWithGDK(window *gtk.Window, plan launcher.Plan, index int) {
	screen, used, ok := launcher.SelectScreen(gdkScreens(), index)
	if !ok {
		window.SetPosition(gtk.WIN_POS_CENTER)
		return
	}
	x, y := launcher.CenterIn(screen, plan.Width, plan.Height)
	log.Printf("[PLACE] monitor %d, position %d,%d", used, x, y)
	window.Move(x, y)
}
