package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sahilm/fuzzy"
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is one problem found by Check
type Issue struct {
	Severity Severity
	Key      string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Key, i.Message)
}

var globalKeys = []string{KeyColumns, KeyClean, KeyShowAccelKeyNo, KeyScreen}

// HasErrors reports whether any issue has error severity
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Check inspects a property set for mistakes that would break or degrade the
// launcher. It never modifies p.
func Check(p *Properties) []Issue {
	var issues []Issue

	_, errs := ParseAppConfig(p)
	for _, err := range errs {
		key := ""
		var optErr *OptionError
		if errors.As(err, &optErr) {
			key = optErr.Key
		}
		issues = append(issues, Issue{Severity: SeverityError, Key: key, Message: err.Error()})
	}

	entries := AssembleEntries(p)
	names := make([]string, 0, len(entries))
	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
		known[e.Name] = true
		issues = append(issues, checkEntry(e)...)
	}

	for _, k := range p.Keys() {
		switch {
		case strings.HasSuffix(k, WorkspaceSuffix):
		case strings.HasSuffix(k, ExecutableSuffix), strings.HasSuffix(k, IconSuffix):
			name := entryName(k)
			if known[name] {
				continue
			}
			msg := fmt.Sprintf("no %s%s key, entry is ignored", name, WorkspaceSuffix)
			if s := suggest(name, names); s != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}
			issues = append(issues, Issue{Severity: SeverityWarning, Key: k, Message: msg})
		default:
			if isGlobalKey(k) {
				continue
			}
			msg := "unknown key"
			if s := suggest(k, globalKeys); s != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}
			issues = append(issues, Issue{Severity: SeverityWarning, Key: k, Message: msg})
		}
	}

	return issues
}

func checkEntry(e Entry) []Issue {
	var issues []Issue

	if e.Executable == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Key:      e.Name + ExecutableSuffix,
			Message:  "missing, the tile cannot launch anything",
		})
	} else if _, err := exec.LookPath(ExpandPath(e.Executable)); err != nil {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Key:      e.Name + ExecutableSuffix,
			Message:  fmt.Sprintf("cannot run %s: %v", e.Executable, err),
		})
	}

	if info, err := os.Stat(ExpandPath(e.Workspace)); err == nil && !info.IsDir() {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Key:      e.Name + WorkspaceSuffix,
			Message:  fmt.Sprintf("%s is not a directory", e.Workspace),
		})
	} else if err != nil {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Key:      e.Name + WorkspaceSuffix,
			Message:  fmt.Sprintf("workspace %s does not exist yet", e.Workspace),
		})
	}

	if e.HasIcon() {
		if info, err := os.Stat(ExpandPath(e.Icon)); err != nil || !info.Mode().IsRegular() {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Key:      e.Name + IconSuffix,
				Message:  fmt.Sprintf("icon %s is not a readable file, tile is shown without it", e.Icon),
			})
		}
	}

	return issues
}

// entryName strips the _eclipse or _icon suffix from k
func entryName(k string) string {
	if strings.HasSuffix(k, ExecutableSuffix) {
		return strings.TrimSuffix(k, ExecutableSuffix)
	}
	return strings.TrimSuffix(k, IconSuffix)
}

func isGlobalKey(k string) bool {
	for _, g := range globalKeys {
		if k == g {
			return true
		}
	}
	return false
}

// suggest returns the best fuzzy match for word among candidates, or "".
func suggest(word string, candidates []string) string {
	if word == "" || len(candidates) == 0 {
		return ""
	}
	matches := fuzzy.Find(word, candidates)
	if len(matches) > 0 {
		return matches[0].Str
	}
	// Also try the other direction so that a longer typo still finds a shorter key.
	best := ""
	bestScore := 0
	for _, c := range candidates {
		m := fuzzy.Find(c, []string{word})
		if len(m) > 0 && (best == "" || m[0].Score > bestScore) {
			best, bestScore = c, m[0].Score
		}
	}
	return best
}
