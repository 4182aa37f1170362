package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/love-tap/audio"
	"github.com/lixenwraith/love-tap/components"
	"github.com/lixenwraith/love-tap/config"
	"github.com/lixenwraith/love-tap/constants"
	"github.com/lixenwraith/love-tap/core"
	"github.com/lixenwraith/love-tap/engine"
	"github.com/lixenwraith/love-tap/input"
	"github.com/lixenwraith/love-tap/logging"
	"github.com/lixenwraith/love-tap/render"
	"github.com/lixenwraith/love-tap/systems"
)

var (
	configFlag = flag.String("config", "", "path to TOML config (defaults when empty)")
	castFlag   = flag.String("cast", "", "path to YAML cast file, overrides the config's cast")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(*configFlag, *castFlag); err != nil {
		fmt.Fprintf(os.Stderr, "love-tap: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, castPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if castPath == "" {
		castPath = cfg.CastPath
	}
	cast, err := config.LoadCast(castPath)
	if err != nil {
		return err
	}

	keys, err := input.LoadKeyTable(cfg.Keys)
	if err != nil {
		return fmt.Errorf("config keys: %w", err)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game runs silent
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}

	driver := engine.NewFrameDriver(engine.NewMonotonicTimeProvider(), cfg.Frame.Interval.Duration)
	sim := systems.NewGame(cfg, cast, driver, nil, log)
	sim.Resize(screen.Size())

	sim.OnEmit(sound.PlayKiss)
	sim.OnHit(func(_ components.HitEvent, combo int) { sound.PlayHit(combo) })
	sim.OnWin(func(int) { sound.PlayWin() })

	renderer := render.NewRenderer(screen, cast)
	handler := input.NewInputHandler(keys, renderer)

	log.Info("love-tap started",
		zap.Int("target", cfg.Game.TargetHits),
		zap.Duration("frame", driver.Interval()),
		zap.Bool("audio", sound.Initialized()),
	)

	driver.Start()
	defer driver.Stop()

	events := make(chan tcell.Event, constants.EventChannelSize)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	return loop(sim, renderer, handler, screen, driver.Frames(), events, log)
}

// loop runs until the player quits: input events are applied as they arrive and
// each frame ticks the simulation then draws it
func loop(sim *engine.Simulation, renderer *render.Renderer, handler *input.InputHandler,
	screen tcell.Screen, frames <-chan time.Time, events <-chan tcell.Event, log *zap.Logger) error {
	for {
		select {
		case ev := <-events:
			intent := handler.HandleEvent(ev, sim.Won())
			switch intent.Type {
			case input.IntentFire:
				sim.EmitProjectile()
			case input.IntentRestart:
				sim.Restart()
			case input.IntentResize:
				sim.Resize(intent.Cols, intent.Rows)
				screen.Sync()
			case input.IntentQuit:
				log.Info("quit")
				return nil
			}

		case now := <-frames:
			sim.Tick(now)
			renderer.Draw(sim.Snapshot(), now)
		}
	}
}
