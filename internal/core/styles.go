package core

import (
	"fmt"
	"log"
	"os"

	"github.com/chess10kp/ecws/internal/launcher"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
)

// CustomCSSPath is loaded on top of the default styles when it exists
const CustomCSSPath = "~/.config/ecws/style.css"

// CornerArc is the arc width, border-radius wants the radius.
var defaultStyles = fmt.Sprintf(`
#ecws-window {
    background-color: transparent;
}

#ecws-frame {
    background-color: white;
    border-radius: %dpx;
}

.ecws-tile {
    padding: 4px;
}

.ecws-tile label {
    color: #1e1e2e;
}

.ecws-badge {
    color: #458588;
    font-weight: bold;
}

#ecws-clean {
    color: #1e1e2e;
    margin-top: 2px;
}
`, launcher.CornerArc/2)

func SetupStyles() {
	screen, err := gdk.ScreenGetDefault()
	if err != nil || screen == nil {
		log.Printf("Warning: Failed to get default screen: %v", err)
		return
	}

	provider, _ := gtk.CssProviderNew()
	if err := provider.LoadFromData(defaultStyles); err != nil {
		log.Printf("Warning: Failed to load default styles: %v", err)
		return
	}

	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}

func LoadCustomCSS(path string) {
	screen, err := gdk.ScreenGetDefault()
	if err != nil || screen == nil {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	provider, _ := gtk.CssProviderNew()
	if err := provider.LoadFromData(string(data)); err != nil {
		log.Printf("Warning: Failed to load %s: %v", path, err)
		return
	}
	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_USER)
	log.Printf("Loaded custom styles from %s", path)
}
