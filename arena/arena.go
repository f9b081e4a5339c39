package arena

import (
	"log/slog"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/engine"
	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/physics"
	"github.com/lixenwraith/steer/scene"
	"github.com/lixenwraith/steer/steering"
	"github.com/lixenwraith/steer/vmath"
)

// Arena plays the physics and entity-management collaborators around a World:
// it detects agent/target contact starts, integrates the agent, applies the edge
// rule and feeds world commands into the scene
type Arena struct {
	world    *engine.World
	scene    *scene.Scene
	contacts *physics.ContactTracker
	logger   *slog.Logger

	ticks   uint64
	catches uint64
}

// Stats summarizes the run so far
type Stats struct {
	Ticks    uint64
	Catches  uint64
	Markers  int
	Rejected int // Scene commands rejected on the last step
}

// New wires an arena around w; logger may be nil
func New(w *engine.World, logger *slog.Logger) *Arena {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Arena{
		world:    w,
		scene:    scene.New(logger),
		contacts: physics.NewContactTracker(),
		logger:   logger,
	}
}

// World returns the simulated world
func (a *Arena) World() *engine.World {
	return a.world
}

// Scene returns the marker store
func (a *Arena) Scene() *scene.Scene {
	return a.scene
}

// Step runs one tick: collisions, steering, agent integration, scene update
func (a *Arena) Step(dt float32, cursor vmath.Vec2, sel *steering.Behavior) (engine.TickOutput, Stats) {
	out := a.world.Tick(engine.TickInput{
		Dt:         dt,
		Cursor:     cursor,
		Collisions: a.detect(),
		Select:     sel,
	})

	if !a.world.Closed() {
		agent := &a.world.Agent
		physics.Integrate(&agent.Kinetic, max(dt, 0))
		physics.ApplyEdges(&agent.Kinetic, a.world.Bounds)
	}

	rejected := a.scene.Apply(out.Commands)
	for _, c := range out.Commands {
		if c.Op == event.OpDespawn {
			a.contacts.Forget(uint64(c.ID))
		}
	}

	a.ticks++
	a.catches += uint64(out.Caught)
	return out, Stats{
		Ticks:    a.ticks,
		Catches:  a.catches,
		Markers:  a.scene.Len(),
		Rejected: rejected,
	}
}

// Close tears down the active behavior and clears the scene
func (a *Arena) Close() {
	a.scene.Apply(a.world.Close())
	a.logger.Info("arena closed", "ticks", a.ticks, "catches", a.catches)
}

// detect reports the contact start between agent and pursuit target, if any
func (a *Arena) detect() []event.Collision {
	target := a.world.Pursuit()
	if target == nil {
		return nil
	}
	agent := a.world.Agent
	overlapping := physics.Overlaps(
		physics.Circle{Center: agent.Position, Radius: agent.Radius},
		physics.Circle{Center: target.Kinetic.Position, Radius: target.Radius},
	)
	if !a.contacts.Update(uint64(target.ID), overlapping) {
		return nil
	}
	return []event.Collision{{A: core.EntityAgent, B: target.ID}}
}
