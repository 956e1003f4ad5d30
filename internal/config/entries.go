package config

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
)

const (
	WorkspaceSuffix  = "_workspace"
	ExecutableSuffix = "_eclipse"
	IconSuffix       = "_icon"
)

var ErrMalformedEntry = errors.New("malformed entry")

// Entry is one launchable workspace. Empty strings mean the key was absent.
type Entry struct {
	Name       string
	Workspace  string
	Executable string
	Icon       string
}

func (e Entry) HasIcon() bool {
	return e.Icon != ""
}

// Valid reports whether the entry can be spawned
func (e Entry) Valid() error {
	if e.Executable == "" {
		return fmt.Errorf("%w: %s has no %s%s key", ErrMalformedEntry, e.Name, e.Name, ExecutableSuffix)
	}
	if e.Workspace == "" {
		return fmt.Errorf("%w: %s has an empty workspace", ErrMalformedEntry, e.Name)
	}
	return nil
}

func (e Entry) String() string {
	return fmt.Sprintf("Eclipse: %s, Workspace: %s, Icon: %s", e.Executable, e.Workspace, e.Icon)
}

// AssembleEntries groups <name>_workspace, <name>_eclipse and <name>_icon keys
// into entries sorted by name.
func AssembleEntries(p *Properties) []Entry {
	byName := make(map[string]Entry)

	for _, k := range p.Keys() {
		if !strings.HasSuffix(k, WorkspaceSuffix) {
			continue
		}
		name := strings.TrimSuffix(k, WorkspaceSuffix)
		if name == "" {
			log.Printf("[CONFIG] Skipping key %q: empty entry name", k)
			continue
		}

		workspace, _ := p.Get(k)
		executable, _ := p.Get(name + ExecutableSuffix)
		icon, _ := p.Get(name + IconSuffix)

		byName[name] = Entry{
			Name:       name,
			Workspace:  workspace,
			Executable: executable,
			Icon:       icon,
		}
	}

	entries := make([]Entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}
