package engine

import (
	"time"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/physics"
	"github.com/lixenwraith/steer/steering"
	"github.com/lixenwraith/steer/vmath"
)

// TickInput is the per-tick snapshot supplied by the collaborators
type TickInput struct {
	Dt         float32 // Elapsed seconds, negative values are treated as zero
	Cursor     vmath.Vec2
	Collisions []event.Collision
	// Select requests a behavior switch applied before evaluation, nil keeps the current one
	Select *steering.Behavior
}

// TickOutput is what the tick produced for the physics and render collaborators
type TickOutput struct {
	Behavior    steering.Behavior
	Velocity    vmath.Vec2
	Orientation float32
	Steer       vmath.Vec2 // Raw steering vector before dt scaling
	Offset      vmath.Vec2 // Pursue/Evade intercept point
	HasOffset   bool
	Skipped     bool // Steering skipped because an auxiliary entity was missing
	Caught      int  // Collision-start events that reset the pursuit target
	Commands    []event.Command
}

// frameScratch carries update-action results back to Tick
type frameScratch struct {
	dt        float32
	steer     vmath.Vec2
	offset    vmath.Vec2
	hasOffset bool
	skipped   bool
}

// Tick evaluates one simulation step
// Order: selection, collision resets, pursuit target motion, behavior, velocity, orientation
// A closed world does not step; the output reports the frozen agent as skipped
func (w *World) Tick(in TickInput) TickOutput {
	if w.closed {
		return TickOutput{
			Behavior:    w.last,
			Velocity:    w.Agent.Velocity,
			Orientation: w.Agent.Orientation,
			Skipped:     true,
		}
	}
	dt := max(in.Dt, 0)
	w.Cursor = in.Cursor
	w.frame = frameScratch{dt: dt}

	if in.Select != nil {
		if err := w.Select(*in.Select); err != nil {
			w.logger.Warn("behavior selection rejected", "error", err)
		}
	}

	caught := w.handleCollisions(in.Collisions)
	w.advancePursuit(dt)

	w.machine.Update(w, time.Duration(float64(dt)*float64(time.Second)))

	b := w.Behavior()
	if !w.frame.skipped {
		impulse := w.frame.steer.Scale(dt)
		if b == steering.BehaviorArrive && w.Profile.ArriveUnscaled {
			impulse = w.frame.steer
		}
		physics.ApplyImpulse(&w.Agent.Kinetic, impulse)
	} else {
		w.metrics.skip(b)
	}
	steering.Orient(&w.Agent, dt)
	w.metrics.tick(b)

	return TickOutput{
		Behavior:    b,
		Velocity:    w.Agent.Velocity,
		Orientation: w.Agent.Orientation,
		Steer:       w.frame.steer,
		Offset:      w.frame.offset,
		HasOffset:   w.frame.hasOffset,
		Skipped:     w.frame.skipped,
		Caught:      caught,
		Commands:    w.drainCommands(),
	}
}

// handleCollisions applies the catch-and-reset rule for every agent/target contact start
func (w *World) handleCollisions(collisions []event.Collision) int {
	caught := 0
	for _, c := range collisions {
		if w.pursuit == nil {
			break
		}
		if !c.Involves(core.EntityAgent, w.pursuit.ID) {
			continue
		}
		w.resetPursuit()
		caught++
		w.metrics.catch()
		w.logger.Info("caught", "target", uint64(w.pursuit.ID), "position", w.pursuit.Kinetic.Position)
	}
	return caught
}

// advancePursuit moves the target at constant velocity under its own cap and edge rule
func (w *World) advancePursuit(dt float32) {
	if w.pursuit == nil {
		return
	}
	k := &w.pursuit.Kinetic
	physics.CapSpeed(k, w.pursuit.MaxSpeed)
	physics.Integrate(k, dt)
	physics.BounceEdges(k, w.Bounds)
	w.moveEntity(w.pursuit.ID, k.Position)
}

// steerAction is the update action shared by every state; args carries the behavior
func steerAction(w *World, args any) {
	b, _ := args.(steering.Behavior)
	a := &w.Agent
	p := &w.Profile

	switch b {
	case steering.BehaviorSeek:
		w.frame.steer = steering.Seek(w.Cursor, a.Velocity, a.MaxLinearSpeed, a.Position)

	case steering.BehaviorFlee:
		w.frame.steer = steering.Flee(w.Cursor, a.Velocity, a.MaxLinearSpeed, a.Position)

	case steering.BehaviorArrive:
		w.frame.steer = steering.Arrive(w.Cursor, a.Velocity, a.MaxLinearSpeed, a.Position, p)

	case steering.BehaviorWander:
		res := steering.Wander(&w.wander, a.Velocity, a.Position, a.MaxLinearSpeed, p, w.rng)
		w.frame.steer = res.Steer
		w.syncWanderMarkers()
		if w.wanderMarkers {
			w.moveEntity(w.wanderCircle, res.Circle)
			w.moveEntity(w.wanderTarget, res.Target)
		}

	case steering.BehaviorPursue, steering.BehaviorEvade:
		if w.pursuit == nil {
			w.missing(b, "pursuit target")
			return
		}
		fn := steering.Pursue
		if b == steering.BehaviorEvade {
			fn = steering.Evade
		}
		t := w.pursuit.Kinetic
		steer, intercept := fn(t.Position, t.Velocity, a.Velocity, a.MaxLinearSpeed, a.Position, p)
		w.frame.steer = steer
		w.frame.offset = intercept
		w.frame.hasOffset = true
		w.moveEntity(w.pursuitOffset, intercept)

	case steering.BehaviorPathFollow:
		res := steering.PathFollow(&w.path, a.Velocity, a.Position, a.MaxLinearSpeed, p)
		if res.Steering {
			w.frame.steer = res.Steer
		}
	}
}

func (w *World) missing(b steering.Behavior, what string) {
	w.frame.skipped = true
	w.frame.steer = vmath.Vec2{}
	w.logger.Warn("steering skipped, auxiliary entity missing", "behavior", b.String(), "entity", what)
}
