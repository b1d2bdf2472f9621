// Package pipeline runs one mesh generation request: source grid, square
// grid, triangulation and colliders.
package pipeline

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/marching-squares/internal/collider"
	"github.com/Faultbox/marching-squares/internal/logger"
	"github.com/Faultbox/marching-squares/pkg/mesh"
	"github.com/Faultbox/marching-squares/pkg/squares"
)

// Settings configures a generation request.
type Settings struct {
	Mesh mesh.Options
	// Collision enables the collider stage.
	Collision bool
	Collider  collider.Options
}

// DefaultSettings returns rounded triangulation with colliders.
func DefaultSettings() Settings {
	return Settings{
		Mesh:      mesh.DefaultOptions(),
		Collision: true,
		Collider:  collider.DefaultOptions(),
	}
}

// Timings holds the duration of each stage.
type Timings struct {
	Grid        time.Duration
	Triangulate time.Duration
	Collision   time.Duration
}

// Result is the output of Generate.
type Result struct {
	Grid *squares.Grid
	Mesh *mesh.Mesh
	// Boundaries are the rounded boundary polylines, also in sharp mode
	// when collision is enabled.
	Boundaries []mesh.Polyline
	// World is nil when collision is disabled.
	World   *collider.World
	Timings Timings
}

// Generate builds the grid, mesh and colliders for src.
func Generate(src *squares.SourceGrid, s Settings) (*Result, error) {
	log := logger.Named("pipeline")
	res := &Result{}

	start := time.Now()
	grid, err := squares.BuildGrid(src)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	res.Grid = grid
	res.Timings.Grid = time.Since(start)
	log.Debug("grid built",
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Duration("took", res.Timings.Grid))

	start = time.Now()
	m, err := mesh.Triangulate(grid, s.Mesh)
	if err != nil {
		return nil, fmt.Errorf("triangulate: %w", err)
	}
	res.Mesh = m
	res.Boundaries = m.Boundaries
	res.Timings.Triangulate = time.Since(start)
	log.Debug("mesh triangulated",
		zap.Stringer("mode", s.Mesh.Mode),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("boundaries", len(m.Boundaries)),
		zap.Duration("took", res.Timings.Triangulate))

	if s.Collision {
		start = time.Now()
		if s.Mesh.Mode != mesh.ModeRounded {
			res.Boundaries, err = mesh.ExtractBoundaryPolylines(grid, s.Mesh)
			if err != nil {
				return nil, fmt.Errorf("extract boundaries: %w", err)
			}
		}
		res.World, err = collider.Build(res.Boundaries, s.Collider)
		if err != nil {
			return nil, fmt.Errorf("build colliders: %w", err)
		}
		res.Timings.Collision = time.Since(start)
		log.Debug("colliders built",
			zap.Int("objects", res.World.Len()),
			zap.Duration("took", res.Timings.Collision))
	}

	log.Info("generated",
		zap.Int("squares", grid.Len()),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()))

	return res, nil
}
