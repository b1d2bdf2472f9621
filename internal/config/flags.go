package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagMode   = flag.String("mode", "", "Triangulation mode: sharp or rounded")
	flagSteps  = flag.Int("steps", -1, "Segments per rounded corner arc")
	flagRadius = flag.Float64("radius", 0, "Rounded corner radius, 0 for half the cell size")
	flagSaddle = flag.String("saddle", "", "Saddle resolution: center or separate")
	flagWeld   = flag.Bool("weld", false, "Share vertices across squares")
	flagLayer  = flag.String("layer", "", "TMX tile layer holding walls")
	flagLog    = flag.String("log", "", "Log file path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMode != "" {
		cfg.Mesh.Mode = *flagMode
	}
	if *flagSteps >= 0 {
		cfg.Mesh.RoundSteps = *flagSteps
	}
	if *flagRadius > 0 {
		cfg.Mesh.Radius = float32(*flagRadius)
	}
	if *flagSaddle != "" {
		cfg.Mesh.Saddle = *flagSaddle
	}
	if *flagWeld {
		cfg.Mesh.WeldVertices = true
	}
	if *flagLayer != "" {
		cfg.Grid.Layer = *flagLayer
	}
	if *flagLog != "" {
		cfg.Logging.LogFile = *flagLog
	}
}
