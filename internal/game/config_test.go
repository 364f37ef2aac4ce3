package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/roomcrawl/internal/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roomcrawl.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
seed = 1234
max_depth = 5
odds_power = 0.5
start_stage = 1
data_dir = "custom"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{Seed: 1234, MaxDepth: 5, OddsPower: 0.5, StartStage: 1, DataDir: "custom"}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "seed = 9\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.MaxDepth != world.DefaultMaxDepth || cfg.OddsPower != world.DefaultOddsPower {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Seed != 9 {
		t.Errorf("Seed = %d, want 9", cfg.Seed)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "seed = 1\nmax_depth = 2\n")
	t.Setenv(EnvSeed, "77")
	t.Setenv(EnvMaxDepth, "4")
	t.Setenv(EnvOddsPower, "2.5")
	t.Setenv(EnvStartStage, "2")
	t.Setenv(EnvDataDir, "/tmp/data")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{Seed: 77, MaxDepth: 4, OddsPower: 2.5, StartStage: 2, DataDir: "/tmp/data"}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		wantErr error
	}{
		{name: "bad seed env", env: map[string]string{EnvSeed: "abc"}},
		{name: "bad depth env", env: map[string]string{EnvMaxDepth: "deep"}},
		{name: "bad power env", env: map[string]string{EnvOddsPower: "x"}},
		{name: "bad stage env", env: map[string]string{EnvStartStage: "one"}},
		{name: "zero depth", body: "max_depth = 0\n", wantErr: world.ErrInvalidConfig},
		{name: "negative power", body: "odds_power = -1.0\n", wantErr: world.ErrInvalidConfig},
		{name: "negative stage", body: "start_stage = -1\n", wantErr: world.ErrInvalidConfig},
		{name: "malformed toml", body: "seed = = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("LoadConfig() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig() of a missing file succeeded")
	}
}

func TestConfigNewRandSeeded(t *testing.T) {
	cfg := Config{Seed: 5}
	a, b := cfg.NewRand(), cfg.NewRand()
	for i := 0; i < 5; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}
