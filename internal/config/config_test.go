package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/marching-squares/pkg/mesh"
	"github.com/Faultbox/marching-squares/pkg/squares"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Mesh.Mode != "rounded" {
		t.Errorf("expected mode rounded, got %s", cfg.Mesh.Mode)
	}
	if cfg.Mesh.RoundSteps != 11 {
		t.Errorf("expected 11 round steps, got %d", cfg.Mesh.RoundSteps)
	}
	if cfg.Mesh.Radius != 0 {
		t.Errorf("expected radius 0, got %f", cfg.Mesh.Radius)
	}
	if cfg.Mesh.Saddle != "center" {
		t.Errorf("expected saddle center, got %s", cfg.Mesh.Saddle)
	}
	if cfg.Mesh.WeldVertices {
		t.Error("expected weld_vertices to be false by default")
	}

	if cfg.Grid.Layer != "walls" {
		t.Errorf("expected layer 'walls', got %s", cfg.Grid.Layer)
	}

	if !cfg.Collision.Enabled {
		t.Error("expected collision to be enabled by default")
	}
	if cfg.Collision.Scale != 16 || cfg.Collision.CellSize != 16 {
		t.Errorf("unexpected collision defaults %+v", cfg.Collision)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
mesh:
  mode: sharp
  round_steps: 4
  radius: 0.25
  saddle: separate
  weld_vertices: true

grid:
  cell_size: 2
  layer: "collision"

collision:
  enabled: false
  scale: 32
  cell_size: 8
  tag: "solid"

logging:
  level: "debug"
  log_file: "meshtool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mesh.Mode != "sharp" {
		t.Errorf("expected mode sharp, got %s", cfg.Mesh.Mode)
	}
	if cfg.Mesh.RoundSteps != 4 {
		t.Errorf("expected 4 round steps, got %d", cfg.Mesh.RoundSteps)
	}
	if cfg.Mesh.Radius != 0.25 {
		t.Errorf("expected radius 0.25, got %f", cfg.Mesh.Radius)
	}
	if cfg.Mesh.Saddle != "separate" {
		t.Errorf("expected saddle separate, got %s", cfg.Mesh.Saddle)
	}
	if !cfg.Mesh.WeldVertices {
		t.Error("expected weld_vertices to be true")
	}
	if cfg.Grid.CellSize != 2 || cfg.Grid.Layer != "collision" {
		t.Errorf("unexpected grid section %+v", cfg.Grid)
	}
	if cfg.Collision.Enabled || cfg.Collision.Scale != 32 || cfg.Collision.CellSize != 8 || cfg.Collision.Tag != "solid" {
		t.Errorf("unexpected collision section %+v", cfg.Collision)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "meshtool.log" {
		t.Errorf("expected log file 'meshtool.log', got %s", cfg.Logging.LogFile)
	}

	// Sections missing from the file keep their defaults.
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("expected default max backups, got %d", cfg.Logging.MaxBackups)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
mesh:
  round_steps: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/meshtool.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Mesh.Mode = "smooth" }},
		{"negative steps", func(c *Config) { c.Mesh.RoundSteps = -2 }},
		{"negative radius", func(c *Config) { c.Mesh.Radius = -0.5 }},
		{"unknown saddle", func(c *Config) { c.Mesh.Saddle = "diagonal" }},
		{"negative cell size", func(c *Config) { c.Grid.CellSize = -1 }},
		{"zero collision scale", func(c *Config) { c.Collision.Scale = 0 }},
		{"zero collision scale while disabled", func(c *Config) {
			c.Collision.Enabled = false
			c.Collision.Scale = 0
		}},
		{"zero collision cell size while disabled", func(c *Config) {
			c.Collision.Enabled = false
			c.Collision.CellSize = 0
		}},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidConfig)
			}
		})
	}

	// A zero radius follows the cell size; collision may be switched off.
	cfg := Default()
	cfg.Mesh.Mode = "sharp"
	cfg.Mesh.Radius = 0
	cfg.Collision.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMeshOptions(t *testing.T) {
	cfg := Default()
	cfg.Mesh.WeldVertices = true

	opts, err := cfg.MeshOptions()
	if err != nil {
		t.Fatalf("MeshOptions failed: %v", err)
	}
	if opts.Mode != mesh.ModeRounded || opts.RoundSteps != 11 || opts.Radius != 0 || !opts.WeldVertices {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.Saddle != squares.SaddleConnectCenter {
		t.Errorf("expected center saddle, got %v", opts.Saddle)
	}

	cfg.Mesh.Saddle = "separate"
	if opts, err = cfg.MeshOptions(); err != nil || opts.Saddle != squares.SaddleSeparate {
		t.Errorf("MeshOptions() = %+v, %v", opts, err)
	}

	co := cfg.ColliderOptions()
	if co.Scale != 16 || co.CellSize != 16 || co.Tag != "wall" {
		t.Errorf("unexpected collider options %+v", co)
	}

	lo := cfg.LoggerOptions()
	if !lo.Console || lo.File.Path != "" {
		t.Errorf("unexpected logger options %+v", lo)
	}
	cfg.Logging.LogFile = "out.log"
	if lo = cfg.LoggerOptions(); lo.File.Path != "out.log" || lo.File.MaxSizeMB != 50 {
		t.Errorf("unexpected file options %+v", lo.File)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(FileName, []byte("mesh:\n  round_steps: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Mesh.Mode = "sharp"
	cfg.Mesh.RoundSteps = 3
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", loaded, cfg)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "mode flag",
			setup: func() { *flagMode = "sharp" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.Mode != "sharp" {
					t.Errorf("expected mode sharp, got %s", cfg.Mesh.Mode)
				}
			},
			teardown: func() { *flagMode = "" },
		},
		{
			name:  "zero steps flag",
			setup: func() { *flagSteps = 0 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.RoundSteps != 0 {
					t.Errorf("expected 0 round steps, got %d", cfg.Mesh.RoundSteps)
				}
			},
			teardown: func() { *flagSteps = -1 },
		},
		{
			name: "radius and weld flags",
			setup: func() {
				*flagRadius = 0.25
				*flagWeld = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.Radius != 0.25 {
					t.Errorf("expected radius 0.25, got %f", cfg.Mesh.Radius)
				}
				if !cfg.Mesh.WeldVertices {
					t.Error("expected weld_vertices with weld flag")
				}
			},
			teardown: func() {
				*flagRadius = 0
				*flagWeld = false
			},
		},
		{
			name: "layer and log flags",
			setup: func() {
				*flagLayer = "collision"
				*flagLog = "run.log"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Grid.Layer != "collision" {
					t.Errorf("expected layer collision, got %s", cfg.Grid.Layer)
				}
				if cfg.Logging.LogFile != "run.log" {
					t.Errorf("expected log file run.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagLayer = ""
				*flagLog = ""
			},
		},
		{
			name:  "saddle flag",
			setup: func() { *flagSaddle = "separate" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.Saddle != "separate" {
					t.Errorf("expected saddle separate, got %s", cfg.Mesh.Saddle)
				}
			},
			teardown: func() { *flagSaddle = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}

	// Unset flags leave the defaults alone.
	cfg := Default()
	applyFlags(cfg)
	if *cfg != *Default() {
		t.Errorf("applyFlags changed defaults: %+v", cfg)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
mesh:
  round_steps: 6
  radius: 0.4
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagSteps = 2
	defer func() {
		*flagConfig = ""
		*flagSteps = -1
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Steps come from the flag, not the file.
	if cfg.Mesh.RoundSteps != 2 {
		t.Errorf("expected 2 round steps from flag, got %d", cfg.Mesh.RoundSteps)
	}
	// Radius comes from the file since no flag overrides it.
	if cfg.Mesh.Radius != 0.4 {
		t.Errorf("expected radius 0.4 from file, got %f", cfg.Mesh.Radius)
	}
	// Mode keeps its default.
	if cfg.Mesh.Mode != "rounded" {
		t.Errorf("expected default mode, got %s", cfg.Mesh.Mode)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("mesh:\n  mode: smooth\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
