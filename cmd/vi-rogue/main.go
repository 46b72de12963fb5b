package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/core"
)

var (
	configPath    = flag.String("config", "", "Path to a TOML config file")
	seedFlag      = flag.Int64("seed", 0, "Map seed (0 = random)")
	widthFlag     = flag.Int("width", 0, "Map width")
	heightFlag    = flag.Int("height", 0, "Map height")
	generatorFlag = flag.String("generator", "", "Map generator: maze, scatter")
	realtimeFlag  = flag.Bool("realtime", false, "Advance on a timer as well as on input")
	noSoundFlag   = flag.Bool("nosound", false, "Disable audio")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/vi-rogue.log")
	dumpConfig    = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-rogue: %v\n", err)
		os.Exit(2)
	}

	if *dumpConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "vi-rogue: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log, logFile := setupLogging(cfg.Log)
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterTerminal(screen)

	g, err := newGame(cfg, screen, log)
	if err != nil {
		core.RegisterTerminal(nil)
		screen.Fini()
		fmt.Fprintf(os.Stderr, "vi-rogue: %v\n", err)
		os.Exit(1)
	}

	g.run(screen)

	// Normal exit terminal cleanup
	core.RegisterTerminal(nil)
	screen.Fini()
}

// loadConfig reads the config file when given, then applies explicitly set flags
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Map.Seed = *seedFlag
		case "width":
			cfg.Map.Width = *widthFlag
		case "height":
			cfg.Map.Height = *heightFlag
		case "generator":
			cfg.Map.Generator = *generatorFlag
		case "realtime":
			cfg.Game.Realtime = *realtimeFlag
		case "nosound":
			cfg.Audio.Enabled = !*noSoundFlag
		case "debug":
			cfg.Log.Debug = *debugFlag
			if *debugFlag {
				cfg.Log.Level = "debug"
			}
		}
	})

	return cfg, cfg.Validate()
}
