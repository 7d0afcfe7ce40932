package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the config path at a temp dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ITEMDECK_CONFIG", filepath.Join(home, "config.yaml"))
	t.Setenv("ITEMDECK_STORE", "")
	t.Setenv("ITEMDECK_STORE_PATH", "")
	t.Setenv("ITEMDECK_THEME", "")
	return home
}

func TestLoad_Default(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Backend != BackendFile {
		t.Errorf("expected backend file, got %q", cfg.Store.Backend)
	}
	if cfg.Store.Path != filepath.Join(home, ".itemdeck") {
		t.Errorf("unexpected store path %q", cfg.Store.Path)
	}
	if cfg.Theme != "classic" {
		t.Errorf("expected theme classic, got %q", cfg.Theme)
	}
}

func TestLoad_File(t *testing.T) {
	home := isolate(t)
	yml := "store:\n  backend: sqlite\n  path: ~/data/deck.db\ntheme: neon\nlog_dir: ~/logs\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("expected sqlite, got %q", cfg.Store.Backend)
	}
	if cfg.SQLitePath() != filepath.Join(home, "data", "deck.db") {
		t.Errorf("unexpected sqlite path %q", cfg.SQLitePath())
	}
	if cfg.Theme != "neon" {
		t.Errorf("expected neon, got %q", cfg.Theme)
	}
	if cfg.LogDir != filepath.Join(home, "logs") {
		t.Errorf("unexpected log dir %q", cfg.LogDir)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolate(t)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("store:\n  backend: sqlite\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ITEMDECK_STORE", "memory")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Errorf("expected memory, got %q", cfg.Store.Backend)
	}
}

func TestLoad_CLIFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ITEMDECK_STORE", "memory")
	t.Setenv("ITEMDECK_THEME", "mono")

	cfg, err := Load(CLIFlags{StoreBackend: "SQLite", StorePath: "/tmp/deck", Theme: "neon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("expected sqlite, got %q", cfg.Store.Backend)
	}
	if cfg.SQLitePath() != "/tmp/deck/itemdeck.db" {
		t.Errorf("unexpected sqlite path %q", cfg.SQLitePath())
	}
	if cfg.Theme != "neon" {
		t.Errorf("expected neon, got %q", cfg.Theme)
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	isolate(t)
	if _, err := Load(CLIFlags{StoreBackend: "redis"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	home := isolate(t)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("store: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(CLIFlags{}); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "nested", "config.yaml")

	if err := EnsureConfigFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := Load(CLIFlags{ConfigPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Backend != BackendFile {
		t.Errorf("expected file backend from written defaults, got %q", cfg.Store.Backend)
	}

	// existing files are left alone
	if err := os.WriteFile(path, []byte("theme: mono\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureConfigFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "theme: mono\n" {
		t.Errorf("config file was overwritten: %q", data)
	}
}
