package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/steer/arena"
	"github.com/lixenwraith/steer/audio"
	"github.com/lixenwraith/steer/config"
	"github.com/lixenwraith/steer/engine"
	"github.com/lixenwraith/steer/logging"
)

var (
	configFlag   = flag.String("config", "", "Path to steer.json (default: ./steer.json if present)")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal UI and log progress to stderr")
	ticksFlag    = flag.Int("ticks", 600, "Ticks to simulate in headless mode")
)

// screen is kept at package level so crash handlers can restore the terminal
var screen tcell.Screen

func crash(r any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSTEER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func main() {
	// Panic Recovery: ensure terminal is reset even if the simulation crashes
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var console io.Writer
	if *headlessFlag {
		console = os.Stderr
	}
	logger, logCloser, err := logging.Setup(cfg.LogsDir, cfg.LogLevel, console)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	a, err := newArena(cfg, logger)
	if err != nil {
		logger.Error("world setup failed", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to set up world: %v\n", err)
		os.Exit(1)
	}

	if *headlessFlag {
		runHeadless(a, cfg.TickRate, *ticksFlag, logger)
		return
	}

	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the simulation runs without sound
			logger.Warn("audio initialization failed", "error", err)
		}
	}
	defer sound.Cleanup()

	screen, err = tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	app := newApp(a, screen, sound, cfg.TickRate, logger)
	app.run()
}

// newArena builds the world from config with a seeded random source
func newArena(cfg *config.Config, logger *slog.Logger) (*arena.Arena, error) {
	ec, err := cfg.Engine()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	logger.Info("simulation seeded", "seed", seed)

	w, err := engine.NewWorld(ec, rng, logger)
	if err != nil {
		return nil, err
	}
	return arena.New(w, logger), nil
}
