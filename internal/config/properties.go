package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the default config location.
const EnvConfigPath = "ECWS_CONFIG"

const defaultConfigPath = "~/.ecwsrc"

var ErrConfigNotFound = errors.New("no config found")

// Properties is an ordered string map. Keys keep the position of their first
// occurrence; a repeated key replaces the value.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties creates an empty property set
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

func (p *Properties) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// GetDefault returns the value for key or def when the key is absent
func (p *Properties) GetDefault(key, def string) string {
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

// Keys returns the keys in file order
func (p *Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

func (p *Properties) Len() int {
	return len(p.keys)
}

// DefaultPath returns the config path from the environment or ~/.ecwsrc
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return ExpandPath(p)
	}
	return ExpandPath(defaultConfigPath)
}

// ExpandPath expands a leading ~ to the current user's home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		usr, err := user.Current()
		if err == nil {
			return filepath.Join(usr.HomeDir, path[1:])
		}
	}
	return path
}

// Load reads a properties file. Files ending in .toml are read as TOML with
// nested tables flattened using "_" as separator.
func Load(path string) (*Properties, error) {
	expandedPath := ExpandPath(path)

	info, err := os.Stat(expandedPath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w in %s", ErrConfigNotFound, expandedPath)
	}

	if strings.EqualFold(filepath.Ext(expandedPath), ".toml") {
		return loadTOML(expandedPath)
	}
	return loadProperties(expandedPath)
}

func loadProperties(path string) (*Properties, error) {
	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	parsed, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	p := NewProperties()
	for _, k := range parsed.Keys() {
		v, _ := parsed.Get(k)
		p.Set(k, v)
	}
	log.Printf("[CONFIG] Loaded %d keys from %s", p.Len(), path)
	return p, nil
}

func loadTOML(path string) (*Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	p := NewProperties()
	flattenTOML(p, "", doc)
	log.Printf("[CONFIG] Loaded %d keys from %s", p.Len(), path)
	return p, nil
}

func flattenTOML(p *Properties, prefix string, table map[string]interface{}) {
	names := make([]string, 0, len(table))
	for k := range table {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		key := k
		if prefix != "" {
			key = prefix + "_" + k
		}
		switch v := table[k].(type) {
		case map[string]interface{}:
			flattenTOML(p, key, v)
		case string:
			p.Set(key, v)
		case bool:
			p.Set(key, strconv.FormatBool(v))
		case int64:
			p.Set(key, strconv.FormatInt(v, 10))
		case float64:
			p.Set(key, strconv.FormatFloat(v, 'g', -1, 64))
		default:
			log.Printf("[CONFIG] Ignoring key %s: unsupported value type %T", key, v)
		}
	}
}
