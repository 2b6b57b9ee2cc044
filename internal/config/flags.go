package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("log-file", "", "Write logs to this file")
	flagNormals = flag.String("normals", "", "Direction transform for bake: corrected or linear")
	flagCenter  = flag.Bool("center", false, "Recenter baked positions on X/Z")
	flagNode    = flag.Uint("node", 0, "Node ID for encoded packets")
	flagDump    = flag.Bool("dump", false, "Dump decoded structures")
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
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagNormals != "" {
		cfg.Bake.Normals = *flagNormals
	}
	if *flagCenter {
		cfg.Bake.CenterXZ = true
	}
	if *flagNode > 0 {
		cfg.Output.NodeID = uint32(*flagNode)
	}
	if *flagDump {
		cfg.Output.Dump = true
	}
}
