package core

import (
	"fmt"
	"log"
	"strconv"

	"github.com/chess10kp/ecws/internal/config"
	"github.com/chess10kp/ecws/internal/launcher"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

const (
	windowTitle = "Eclipse Workspace Launcher"
	cleanLabel  = "Start with -clean"
	iconSize    = 96
)

// View is the launcher window: one tile per entry plus the clean toggle
type View struct {
	config  *config.Config
	window  *gtk.Window
	grid    *gtk.Grid
	clean   *gtk.CheckButton
	session *launcher.Session
	plan    launcher.Plan
	tiles   []launcher.Tile
	accels  map[int]launcher.Tile
	icons   *launcher.IconCache[*gdk.Pixbuf]
}

// NewView builds the window for cfg. onClosed runs after the window is destroyed.
func NewView(cfg *config.Config, spawner launcher.Spawner, onClosed func()) (*View, error) {
	window, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window.SetTitle(windowTitle)
	window.SetDecorated(false)
	window.SetResizable(false)
	window.SetSkipTaskbarHint(true)
	window.SetSkipPagerHint(true)
	window.SetKeepAbove(true)
	window.SetName("ecws-window")
	setTransparent(window)

	icons, err := launcher.NewIconCache(len(cfg.Entries), loadPixbuf)
	if err != nil {
		log.Printf("[VIEW] Icons disabled: %v", err)
	}

	tiles := launcher.ArrangeTiles(cfg.Entries, cfg.App.MaxColumns)
	v := &View{
		config: cfg,
		window: window,
		plan:   launcher.PlanGrid(len(cfg.Entries), cfg.App.MaxColumns),
		tiles:  tiles,
		accels: launcher.Accelerators(tiles),
		icons:  icons,
	}
	v.session = launcher.NewSession(spawner, cfg.App.CleanDefault, v.close)

	if err := v.build(); err != nil {
		return nil, err
	}

	window.SetDefaultSize(v.plan.Width, v.plan.Height)
	window.Connect("key-press-event", func(win *gtk.Window, event *gdk.Event) bool {
		return v.onKeyPress(gdk.EventKeyNewFromEvent(event))
	})
	window.Connect("destroy", func() {
		if onClosed != nil {
			onClosed()
		}
	})

	return v, nil
}

func (v *View) build() error {
	frame, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return fmt.Errorf("failed to create frame: %w", err)
	}
	frame.SetName("ecws-frame")
	v.window.Add(frame)

	grid, err := gtk.GridNew()
	if err != nil {
		return fmt.Errorf("failed to create grid: %w", err)
	}
	grid.SetRowSpacing(launcher.Gap)
	grid.SetColumnSpacing(launcher.Gap)
	grid.SetMarginStart(launcher.Margin)
	grid.SetMarginEnd(launcher.Margin)
	grid.SetMarginTop(launcher.Margin)
	grid.SetMarginBottom(launcher.Margin)
	frame.PackStart(grid, true, true, 0)
	v.grid = grid

	for _, tile := range v.tiles {
		btn, err := v.createTile(tile)
		if err != nil {
			return err
		}
		grid.Attach(btn, tile.Cell.Column, tile.Cell.Row, 1, 1)
	}

	clean, err := gtk.CheckButtonNewWithLabel(cleanLabel)
	if err != nil {
		return fmt.Errorf("failed to create clean toggle: %w", err)
	}
	clean.SetName("ecws-clean")
	clean.SetActive(v.session.Clean())
	clean.Connect("toggled", func() {
		v.session.SetClean(clean.GetActive())
	})

	span := v.plan.Columns
	if span < 1 {
		span = 1
	}
	grid.Attach(clean, 0, v.plan.Rows, span, 1)
	v.clean = clean

	return nil
}

func (v *View) createTile(tile launcher.Tile) (*gtk.Button, error) {
	btn, err := gtk.ButtonNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create button for %s: %w", tile.Entry.Name, err)
	}
	btn.SetSizeRequest(launcher.ButtonSize, launcher.ButtonSize)
	btn.SetTooltipText(tile.Entry.Workspace)
	if ctx, err := btn.GetStyleContext(); err == nil {
		ctx.AddClass("ecws-tile")
	}

	box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 2)
	if err != nil {
		return nil, err
	}
	box.SetVAlign(gtk.ALIGN_CENTER)

	if launcher.ShowBadge(tile.Accel, v.config.App.ShowAccelBadge) {
		badge, err := gtk.LabelNew(strconv.Itoa(tile.Accel))
		if err != nil {
			return nil, err
		}
		if ctx, err := badge.GetStyleContext(); err == nil {
			ctx.AddClass("ecws-badge")
		}
		box.PackStart(badge, false, false, 0)
	}

	if img := v.tileIcon(tile.Entry); img != nil {
		box.PackStart(img, false, false, 0)
	}

	label, err := gtk.LabelNew(tile.Entry.Name)
	if err != nil {
		return nil, err
	}
	box.PackStart(label, false, false, 0)

	btn.Add(box)
	btn.Connect("clicked", v.tileHandler(tile))

	return btn, nil
}

// tileIcon returns the entry's icon, or nil when it has none or it cannot be decoded
func (v *View) tileIcon(e config.Entry) *gtk.Image {
	if !e.HasIcon() || v.icons == nil {
		return nil
	}

	pixbuf, err := v.icons.GetIcon(config.ExpandPath(e.Icon), iconSize)
	if err != nil {
		log.Printf("[VIEW] Rendering %s without icon: %v", e.Name, err)
		return nil
	}

	img, err := gtk.ImageNewFromPixbuf(pixbuf)
	if err != nil {
		log.Printf("[VIEW] Rendering %s without icon: %v", e.Name, err)
		return nil
	}
	return img
}

// tileHandler returns the click handler for one tile
func (v *View) tileHandler(tile launcher.Tile) func() {
	return func() {
		v.activate(tile)
	}
}

func (v *View) activate(tile launcher.Tile) {
	log.Printf("[VIEW] Activating %s (%s)", tile.Entry.Name, tile.Entry)
	// Spawn errors are logged by the session; the window closes either way.
	_ = v.session.Activate(tile.Entry)
}

func (v *View) onKeyPress(event *gdk.EventKey) bool {
	key := event.KeyVal()

	if key == gdk.KEY_Escape {
		v.session.Cancel()
		return true
	}

	if n, ok := accelForKey(key); ok {
		if tile, bound := v.accels[n]; bound {
			v.activate(tile)
			return true
		}
	}

	return false
}

// accelForKey maps the digit keys 1-9 of the top row and the keypad to 1-9
func accelForKey(key uint) (int, bool) {
	switch {
	case key >= gdk.KEY_1 && key <= gdk.KEY_9:
		return int(key-gdk.KEY_1) + 1, true
	case key >= gdk.KEY_KP_1 && key <= gdk.KEY_KP_9:
		return int(key-gdk.KEY_KP_1) + 1, true
	}
	return 0, false
}

// Show places the window on the configured screen and presents it
func (v *View) Show() {
	placeWindow(v.window, v.plan, v.config.App.ScreenIndex)
	v.window.ShowAll()
	v.window.Present()
}

func (v *View) close() {
	v.window.Hide()
	glib.IdleAdd(func() {
		v.window.Destroy()
	})
}

// setTransparent gives the window an RGBA visual so that only the rounded
// frame is painted.
func setTransparent(window *gtk.Window) {
	screen, err := window.GetScreen()
	if err != nil {
		log.Printf("[VIEW] No screen for window: %v", err)
		return
	}
	visual, err := screen.GetRGBAVisual()
	if err != nil || visual == nil {
		log.Printf("[VIEW] No RGBA visual, corners stay opaque")
		return
	}
	window.SetVisual(visual)
	window.SetAppPaintable(true)
}

func loadPixbuf(path string, size int) (*gdk.Pixbuf, error) {
	return gdk.PixbufNewFromFileAtScale(path, size, size, true)
}
