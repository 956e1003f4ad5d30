package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseAppConfigDefaults(t *testing.T) {
	cfg, errs := ParseAppConfig(NewProperties())
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if cfg != DefaultConfig {
		t.Errorf("Expected defaults %+v, got %+v", DefaultConfig, cfg)
	}
	if cfg.MaxColumns != 6 || cfg.CleanDefault || !cfg.ShowAccelBadge || cfg.ScreenIndex != 0 {
		t.Errorf("Unexpected default values %+v", cfg)
	}
}

func TestParseAppConfig(t *testing.T) {
	testCases := []struct {
		name    string
		props   *Properties
		want    AppConfig
		wantErr int
	}{
		{
			name:  "all set",
			props: propertiesOf("columns", "3", "clean", "TRUE", "showAccelKeyNo", "false", "screen", "2"),
			want:  AppConfig{MaxColumns: 3, CleanDefault: true, ShowAccelBadge: false, ScreenIndex: 2},
		},
		{
			name:  "non true boolean is false",
			props: propertiesOf("showAccelKeyNo", "yes", "clean", "1"),
			want:  AppConfig{MaxColumns: 6, CleanDefault: false, ShowAccelBadge: false, ScreenIndex: 0},
		},
		{
			name:    "bad numbers keep defaults",
			props:   propertiesOf("columns", "wide", "screen", "-1"),
			want:    DefaultConfig,
			wantErr: 2,
		},
		{
			name:    "zero columns",
			props:   propertiesOf("columns", "0"),
			want:    DefaultConfig,
			wantErr: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, errs := ParseAppConfig(tc.props)
			if cfg != tc.want {
				t.Errorf("Expected %+v, got %+v", tc.want, cfg)
			}
			if len(errs) != tc.wantErr {
				t.Errorf("Expected %d errors, got %v", tc.wantErr, errs)
			}
			for _, err := range errs {
				var optErr *OptionError
				if !errors.As(err, &optErr) {
					t.Errorf("Expected *OptionError, got %T", err)
				}
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".ecwsrc", `a_workspace=/w1
a_eclipse=/bin/a
b_workspace=/w2
b_eclipse=/bin/b
columns=1
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.App.MaxColumns != 1 {
		t.Errorf("Expected 1 column, got %d", cfg.App.MaxColumns)
	}
	if len(cfg.Entries) != 2 || cfg.Entries[0].Name != "a" || cfg.Entries[1].Name != "b" {
		t.Errorf("Unexpected entries %+v", cfg.Entries)
	}
	if cfg.Path != path {
		t.Errorf("Expected path %s, got %s", path, cfg.Path)
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ".ecwsrc"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound, got %v", err)
	}
	if cfg != nil {
		t.Errorf("Expected no config, got %+v", cfg)
	}
}
