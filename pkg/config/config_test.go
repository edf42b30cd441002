package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.MinPrefix != 1 {
		t.Errorf("MinPrefix = %d, want 1", cfg.Server.MinPrefix)
	}
	if cfg.Server.MaxPrefix != 60 {
		t.Errorf("MaxPrefix = %d, want 60", cfg.Server.MaxPrefix)
	}
	if !cfg.Dict.StripPunct {
		t.Error("StripPunct should default to true")
	}
	if cfg.CLI.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want 10", cfg.CLI.DefaultLimit)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Server.MaxPrefix = 40
	cfg.Dict.Path = "/tmp/words.txt"
	cfg.CLI.DefaultLimit = 5

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Server.MaxPrefix != 40 {
		t.Errorf("MaxPrefix = %d, want 40", loaded.Server.MaxPrefix)
	}
	if loaded.Dict.Path != "/tmp/words.txt" {
		t.Errorf("Dict.Path = %q", loaded.Dict.Path)
	}
	if loaded.CLI.DefaultLimit != 5 {
		t.Errorf("DefaultLimit = %d, want 5", loaded.CLI.DefaultLimit)
	}
}

// A file with only some sections keeps defaults for the rest.
func TestLoadPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\nmax_prefix = 30\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MaxPrefix != 30 {
		t.Errorf("MaxPrefix = %d, want 30", cfg.Server.MaxPrefix)
	}
	if cfg.Server.MinPrefix != 1 {
		t.Errorf("MinPrefix = %d, want default 1", cfg.Server.MinPrefix)
	}
	if cfg.CLI.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want default 10", cfg.CLI.DefaultLimit)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Server.MaxPrefix != 60 {
		t.Errorf("MaxPrefix = %d, want default 60", cfg.Server.MaxPrefix)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}

	// A second init must load the same file, not recreate it.
	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("second InitConfig: %v", err)
	}
	if again.Server.MaxPrefix != cfg.Server.MaxPrefix {
		t.Error("reloaded config differs from created one")
	}
}
