package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile     = flag.String("log-file", "", "Log file path")
	flagTolerance   = flag.Float64("tolerance", 0, "Override UV transform merge tolerance")
	flagForceBaking = flag.Bool("force-baking", false, "Always bake UV transforms, never share channels")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
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
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagTolerance > 0 {
		cfg.Pipeline.MergeTolerance = float32(*flagTolerance)
	}
	if *flagForceBaking {
		cfg.Pipeline.ForceBaking = true
	}
}
