package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/steer/arena"
	"github.com/lixenwraith/steer/audio"
	"github.com/lixenwraith/steer/engine"
	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/input"
	"github.com/lixenwraith/steer/render"
	"github.com/lixenwraith/steer/steering"
	"github.com/lixenwraith/steer/vmath"
)

// app drives the interactive loop: drain input, step, cue audio, draw
type app struct {
	arena    *arena.Arena
	screen   tcell.Screen
	sound    *audio.SoundManager
	renderer *render.Renderer
	handler  *input.Handler
	queue    *event.Queue
	clock    *engine.FrameClock
	logger   *slog.Logger

	tickRate int
	cursor   vmath.Vec2
	stats    arena.Stats
}

func newApp(a *arena.Arena, screen tcell.Screen, sound *audio.SoundManager, tickRate int, logger *slog.Logger) *app {
	r := render.NewRenderer(screen, a.World().Bounds)
	q := event.NewQueue()
	return &app{
		arena:    a,
		screen:   screen,
		sound:    sound,
		renderer: r,
		handler:  input.NewHandler(q, nil, r.Camera()),
		queue:    q,
		clock:    engine.NewFrameClock(nil),
		logger:   logger,
		tickRate: tickRate,
		cursor:   a.World().Cursor,
	}
}

func (ap *app) run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(r)
			}
		}()
		ap.handler.Poll(ctx, ap.screen)
	}()

	ticker := time.NewTicker(time.Second / time.Duration(ap.tickRate))
	defer ticker.Stop()

	for range ticker.C {
		sel, quit := ap.drainInput()
		if quit {
			break
		}
		ap.step(sel)
	}

	ap.arena.Close()
	ap.logger.Info("session ended", "ticks", ap.stats.Ticks, "catches", ap.stats.Catches)
}

// drainInput applies queued events; the last selection in a frame wins
func (ap *app) drainInput() (sel *steering.Behavior, quit bool) {
	for _, ev := range ap.queue.Consume() {
		switch ev.Type {
		case event.InputCursor:
			ap.cursor = ev.Cursor
		case event.InputSelect:
			b := ev.Behavior
			sel = &b
		case event.InputToggleDebug:
			w := ap.arena.World()
			w.Debug = !w.Debug
			ap.logger.Info("debug markers toggled", "debug", w.Debug)
		case event.InputPause:
			ap.clock.SetPaused(!ap.clock.Paused())
		case event.InputResize:
			ap.screen.Sync()
			ap.renderer.Resize()
			ap.handler.SetCamera(ap.renderer.Camera())
		case event.InputQuit:
			quit = true
		}
	}
	return sel, quit
}

func (ap *app) step(sel *steering.Behavior) {
	dt := ap.clock.Tick()
	var out engine.TickOutput
	if !ap.clock.Paused() || sel != nil {
		prev := ap.arena.World().Behavior()
		out, ap.stats = ap.arena.Step(dt, ap.cursor, sel)
		ap.cue(prev, out)
	}

	w := ap.arena.World()
	ap.renderer.Draw(render.Frame{
		Agent:     w.Agent,
		Cursor:    ap.cursor,
		Behavior:  w.Behavior(),
		Markers:   ap.arena.Scene().Markers(),
		Offset:    out.Offset,
		HasOffset: out.HasOffset,
		Ticks:     ap.stats.Ticks,
		Catches:   ap.stats.Catches,
		Paused:    ap.clock.Paused(),
		Debug:     w.Debug,
	})
}

func (ap *app) cue(prev steering.Behavior, out engine.TickOutput) {
	if out.Behavior != prev {
		ap.sound.PlaySwitch(out.Behavior)
	}
	if out.Caught > 0 {
		ap.sound.PlayCatch()
	}
	if out.Skipped {
		ap.sound.PlayWarn(time.Now())
	}
}

// runHeadless steps a fixed number of ticks at the nominal rate with the cursor
// orbiting the origin, logging a summary once per simulated second
func runHeadless(a *arena.Arena, tickRate, ticks int, logger *slog.Logger) arena.Stats {
	dt := 1 / float32(tickRate)
	var stats arena.Stats
	for i := 0; i < ticks; i++ {
		theta := float32(i) * dt * 0.5
		cursor := vmath.FromPolar(150, theta)
		var out engine.TickOutput
		out, stats = a.Step(dt, cursor, nil)

		if (i+1)%tickRate == 0 {
			w := a.World()
			logger.Info("tick",
				"tick", stats.Ticks,
				"behavior", out.Behavior.String(),
				"position", w.Agent.Position,
				"speed", out.Velocity.Length(),
				"orientation", out.Orientation,
				"markers", stats.Markers,
				"catches", stats.Catches,
			)
		}
	}
	a.Close()
	logger.Info("headless run complete", "ticks", stats.Ticks, "catches", stats.Catches)
	return stats
}
