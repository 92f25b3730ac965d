package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/haliteviz/config"
	"github.com/lixenwraith/haliteviz/logger"
)

var (
	speedFlag    = flag.Float64("speed", 0, "Play speed multiplier (overrides HALITEVIZ_PLAY_SPEED)")
	pausedFlag   = flag.Bool("paused", false, "Start paused")
	muteFlag     = flag.Bool("mute", false, "Disable audio cues")
	logFileFlag  = flag.String("log", "", "Log file path (overrides HALITEVIZ_LOG_FILE)")
	logLevelFlag = flag.String("log-level", "", "Log level (overrides HALITEVIZ_LOG_LEVEL)")
	convertFlag  = flag.String("convert", "", "Re-encode the replay to this path and exit (.json or .hlt)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <replay>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	logFile, err := logger.Init(cfg.LoggerOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if *convertFlag != "" {
		if err := convert(flag.Arg(0), *convertFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Convert failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "haliteviz: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// applyFlags overlays command-line flags on the environment configuration
func applyFlags(cfg *config.Config) {
	if *speedFlag > 0 {
		cfg.PlaySpeed = *speedFlag
	}
	if *pausedFlag {
		cfg.Autoplay = false
	}
	if *muteFlag {
		cfg.Audio = false
	}
	if *logFileFlag != "" {
		cfg.LogFile = *logFileFlag
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
	}
}
