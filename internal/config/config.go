// Package config handles meshtool configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/marching-squares/internal/collider"
	"github.com/Faultbox/marching-squares/internal/logger"
	"github.com/Faultbox/marching-squares/pkg/mesh"
	"github.com/Faultbox/marching-squares/pkg/squares"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all meshtool settings.
type Config struct {
	Mesh      MeshConfig      `yaml:"mesh"`
	Grid      GridConfig      `yaml:"grid"`
	Collision CollisionConfig `yaml:"collision"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MeshConfig holds triangulation settings.
type MeshConfig struct {
	Mode         string  `yaml:"mode"`        // sharp or rounded
	RoundSteps   int     `yaml:"round_steps"` // segments per quarter arc
	Radius       float32 `yaml:"radius"`      // zero follows the cell size
	Saddle       string  `yaml:"saddle"`      // center or separate
	WeldVertices bool    `yaml:"weld_vertices"`
}

// GridConfig holds grid input settings.
type GridConfig struct {
	CellSize float32 `yaml:"cell_size"` // overrides the document cell size when > 0
	Layer    string  `yaml:"layer"`     // TMX tile layer holding walls
}

// CollisionConfig holds collider settings.
type CollisionConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Scale    float64 `yaml:"scale"`
	CellSize int     `yaml:"cell_size"`
	Tag      string  `yaml:"tag"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	file := logger.DefaultFileConfig("")
	return &Config{
		Mesh: MeshConfig{
			Mode:       mesh.ModeRounded.String(),
			RoundSteps: mesh.DefaultRoundSteps,
			Saddle:     squares.SaddleConnectCenter.String(),
		},
		Grid: GridConfig{
			Layer: "walls",
		},
		Collision: CollisionConfig{
			Enabled:  true,
			Scale:    collider.DefaultScale,
			CellSize: collider.DefaultCellSize,
			Tag:      collider.DefaultTag,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAgeDays: file.MaxAgeDays,
			Compress:   file.Compress,
		},
	}
}

// Validate checks that every section can be turned into options.
func (c *Config) Validate() error {
	if _, err := c.MeshOptions(); err != nil {
		return fmt.Errorf("%w: mesh: %w", ErrInvalidConfig, err)
	}
	if c.Grid.CellSize < 0 {
		return fmt.Errorf("%w: grid.cell_size %v", ErrInvalidConfig, c.Grid.CellSize)
	}
	if c.Collision.Scale <= 0 || c.Collision.CellSize <= 0 {
		return fmt.Errorf("%w: collision scale %v cell size %d", ErrInvalidConfig, c.Collision.Scale, c.Collision.CellSize)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging: %w", ErrInvalidConfig, err)
	}
	return nil
}

// MeshOptions converts the mesh section to triangulation options.
func (c *Config) MeshOptions() (mesh.Options, error) {
	mode, err := mesh.ParseMode(c.Mesh.Mode)
	if err != nil {
		return mesh.Options{}, err
	}
	saddle, err := squares.ParseSaddlePolicy(c.Mesh.Saddle)
	if err != nil {
		return mesh.Options{}, err
	}
	opts := mesh.Options{
		Mode:         mode,
		RoundSteps:   c.Mesh.RoundSteps,
		Radius:       c.Mesh.Radius,
		Saddle:       saddle,
		WeldVertices: c.Mesh.WeldVertices,
	}
	if err := opts.Validate(); err != nil {
		return mesh.Options{}, err
	}
	return opts, nil
}

// ColliderOptions converts the collision section.
func (c *Config) ColliderOptions() collider.Options {
	return collider.Options{
		Scale:    c.Collision.Scale,
		CellSize: c.Collision.CellSize,
		Tag:      c.Collision.Tag,
	}
}

// LoggerOptions converts the logging section. Console output is always on.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.Options{Level: c.Logging.Level, Console: true}
	if c.Logging.LogFile != "" {
		opts.File = logger.FileConfig{
			Path:       c.Logging.LogFile,
			MaxSizeMB:  c.Logging.MaxSizeMB,
			MaxBackups: c.Logging.MaxBackups,
			MaxAgeDays: c.Logging.MaxAgeDays,
			Compress:   c.Logging.Compress,
		}
	}
	return opts
}
