// meshtool is a CLI utility that turns wall grids into marching-squares
// meshes and colliders.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/marching-squares/internal/config"
	"github.com/Faultbox/marching-squares/internal/logger"
	"github.com/Faultbox/marching-squares/internal/pipeline"
	"github.com/Faultbox/marching-squares/pkg/formats"
	"github.com/Faultbox/marching-squares/pkg/mesh"
	"github.com/Faultbox/marching-squares/pkg/squares"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	if err := logger.Init(cfg.LoggerOptions()); err != nil {
		fatal(err)
	}
	defer logger.Sync()

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		err = cmdInfo(cfg, args)
	case "mesh", "obj":
		err = cmdMesh(cfg, args)
	case "colliders", "col":
		err = cmdColliders(cfg, args)
	case "config":
		err = cmdConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Sync()
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println(`meshtool - marching squares mesh generator

Usage:
  meshtool [flags] <command> [options]

Commands:
  info <grid>               Show grid size and configuration histogram
  mesh <grid> [out.obj]     Triangulate and write a Wavefront OBJ (stdout if no output)
  colliders <grid>          Extract boundary polylines and build colliders
  config [path]             Print the effective config, or save it to path

Grids are YAML documents (.yaml, .yml) or Tiled maps (.tmx).

Flags:
  -config <path>   Config file (default ./meshtool.yaml)
  -mode <mode>     sharp or rounded
  -steps <n>       Segments per rounded corner
  -radius <r>      Rounded corner radius (0 = half the cell size)
  -saddle <policy> Saddle resolution: center or separate
  -weld            Share vertices across squares
  -layer <name>    TMX tile layer holding walls
  -log <path>      Also log to a rotated file
  -debug           Enable debug logging

Examples:
  meshtool info maps/cave.yaml
  meshtool -mode sharp -weld mesh maps/cave.yaml cave.obj
  meshtool -layer collision colliders maps/level.tmx`)
}

var errCollisionDisabled = errors.New("collision is disabled in the config")

func loadSource(cfg *config.Config, path string) (*squares.SourceGrid, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return formats.LoadSource(os.DirFS(dir), name, cfg.Grid.Layer, cfg.Grid.CellSize)
}

func settings(cfg *config.Config) (pipeline.Settings, error) {
	opts, err := cfg.MeshOptions()
	if err != nil {
		return pipeline.Settings{}, err
	}
	return pipeline.Settings{
		Mesh:      opts,
		Collision: cfg.Collision.Enabled,
		Collider:  cfg.ColliderOptions(),
	}, nil
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: meshtool info <grid>")
	}

	src, err := loadSource(cfg, args[0])
	if err != nil {
		return err
	}
	grid, err := squares.BuildGrid(src)
	if err != nil {
		return err
	}

	fmt.Printf("Grid:    %s\n", args[0])
	fmt.Printf("Cells:   %dx%d (%d walls)\n", src.Width, src.Height, src.Solid())
	fmt.Printf("Squares: %dx%d\n", grid.Width(), grid.Height())
	fmt.Println()
	fmt.Println("Configurations:")

	counts := grid.ConfigurationCounts()
	for c, n := range counts {
		if n == 0 {
			continue
		}
		cfgCode := squares.Configuration(c)
		fmt.Printf("  %-16s %-8s %d\n", cfgCode, cfgCode.Kind(), n)
	}
	return nil
}

func cmdMesh(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: meshtool mesh <grid> [out.obj]")
	}

	src, err := loadSource(cfg, args[0])
	if err != nil {
		return err
	}
	s, err := settings(cfg)
	if err != nil {
		return err
	}
	res, err := pipeline.Generate(src, s)
	if err != nil {
		return err
	}

	if len(args) > 1 {
		err = writeOBJFile(args[1], res.Mesh)
	} else {
		err = formats.WriteOBJ(os.Stdout, res.Mesh)
	}
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.String("grid", args[0]),
		zap.Int("vertices", res.Mesh.VertexCount()),
		zap.Int("triangles", res.Mesh.TriangleCount()),
	}
	if res.World != nil {
		fields = append(fields, zap.Int("colliders", res.World.Len()))
	}
	logger.Info("mesh written", fields...)
	return nil
}

// writeOBJFile writes m to path, reporting close errors.
func writeOBJFile(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := formats.WriteOBJ(f, m); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func cmdColliders(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: meshtool colliders <grid>")
	}

	if !cfg.Collision.Enabled {
		return errCollisionDisabled
	}

	src, err := loadSource(cfg, args[0])
	if err != nil {
		return err
	}
	s, err := settings(cfg)
	if err != nil {
		return err
	}
	res, err := pipeline.Generate(src, s)
	if err != nil {
		return err
	}

	fmt.Printf("Polylines: %d\n", len(res.Boundaries))
	fmt.Printf("Objects:   %d (tag %q)\n", res.World.Len(), s.Collider.Tag)
	for i, line := range res.Boundaries {
		fmt.Printf("  %4d: %d points from (%.3f, %.3f) to (%.3f, %.3f)\n",
			i, len(line), line[0].X, line[0].Y, line[len(line)-1].X, line[len(line)-1].Y)
	}
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Printf("Saved config to %s\n", args[0])
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
