package crimegame

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "DEBUG"

[save]
path = "empire.db"
key = "slot-2"
autosave_seconds = 10

[sim]
tick_rate_ms = 250
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error = %v", err)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("level = %v, want debug", cfg.Log.Level)
	}
	if cfg.Save.Path != "empire.db" || cfg.Save.Key != "slot-2" {
		t.Errorf("save = %+v", cfg.Save)
	}
	if cfg.Save.AutosaveInterval() != 10*time.Second {
		t.Errorf("autosave = %v, want 10s", cfg.Save.AutosaveInterval())
	}
	if cfg.Sim.TickRate() != 250*time.Millisecond {
		t.Errorf("tick rate = %v, want 250ms", cfg.Sim.TickRate())
	}
	// Unset fields still get defaults.
	if cfg.Save.FallbackPath == "" {
		t.Error("fallback path not defaulted")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadConfig of a missing file returned no error")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Save.Path == "" || cfg.Save.FallbackPath == "" || cfg.Save.Key == "" {
		t.Errorf("save defaults incomplete: %+v", cfg.Save)
	}
	if cfg.Sim.TickRate() <= 0 || cfg.Save.AutosaveInterval() <= 0 {
		t.Errorf("interval defaults incomplete: %+v", cfg)
	}
}
