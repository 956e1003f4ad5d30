package core

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chess10kp/ecws/internal/config"
	"github.com/chess10kp/ecws/internal/launcher"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

// App is main application
type App struct {
	config  *config.Config
	spawner launcher.Spawner
	running bool
	sigChan chan os.Signal
	view    *View
}

// NewApp creates a new application
func NewApp(cfg *config.Config) (*App, error) {
	return &App{
		config:  cfg,
		spawner: launcher.NewProcessSpawner(),
		running: false,
		sigChan: make(chan os.Signal, 1),
	}, nil
}

// Run shows the launcher and blocks until its window is closed
func (a *App) Run() error {
	a.running = true

	// Handle system signals
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(a.sigChan)
	go func() {
		sig, ok := <-a.sigChan
		if !ok {
			return
		}
		log.Printf("Received signal: %v", sig)
		glib.IdleAdd(func() {
			a.Quit()
		})
	}()

	log.Println("ecws starting...")

	if err := a.initialize(); err != nil {
		return err
	}

	gtk.Main()
	return nil
}

// initialize builds the window on the GTK thread
func (a *App) initialize() error {
	gtk.Init(nil)
	SetupStyles()
	LoadCustomCSS(config.ExpandPath(CustomCSSPath))

	view, err := NewView(a.config, a.spawner, a.Quit)
	if err != nil {
		return err
	}
	a.view = view
	view.Show()

	log.Printf("Showing %d entries", len(a.config.Entries))
	return nil
}

// Quit stops the main loop
func (a *App) Quit() {
	if !a.running {
		return
	}
	a.running = false

	log.Println("Shutting down...")
	gtk.MainQuit()
}
