package engine

import (
	"fmt"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/engine/fsm"
	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/parameter"
	"github.com/lixenwraith/steer/steering"
	"github.com/lixenwraith/steer/vmath"
)

// Registered action names
const (
	actionSteer       = "steer"
	actionEnterWander = "wander.enter"
	actionExitWander  = "wander.exit"
	actionEnterChase  = "chase.enter"
	actionExitChase   = "chase.exit"
	actionEnterPath   = "path.enter"
	actionExitPath    = "path.exit"
)

// stateOf maps a behavior to its machine state, offset past StateNone
func stateOf(b steering.Behavior) fsm.StateID {
	return fsm.StateID(b) + 1
}

// behaviorOf is the inverse of stateOf
func behaviorOf(id fsm.StateID) steering.Behavior {
	return steering.Behavior(id - 1)
}

// newBehaviorMachine builds one state per behavior, wiring the update action to all
// and the spawn/despawn hooks to the behaviors that own auxiliary entities
func newBehaviorMachine(initial steering.Behavior) (*fsm.Machine[*World], error) {
	m := fsm.NewMachine[*World]()

	m.RegisterAction(actionSteer, steerAction)
	m.RegisterAction(actionEnterWander, enterWander)
	m.RegisterAction(actionExitWander, exitWander)
	m.RegisterAction(actionEnterChase, enterChase)
	m.RegisterAction(actionExitChase, exitChase)
	m.RegisterAction(actionEnterPath, enterPath)
	m.RegisterAction(actionExitPath, exitPath)

	for _, b := range steering.All() {
		id := stateOf(b)
		m.AddState(id, b.String())
		if err := m.AddAction(id, fsm.PhaseUpdate, actionSteer, b); err != nil {
			return nil, fmt.Errorf("wire %s: %w", b, err)
		}

		var enter, exit string
		switch b {
		case steering.BehaviorWander:
			enter, exit = actionEnterWander, actionExitWander
		case steering.BehaviorPursue, steering.BehaviorEvade:
			enter, exit = actionEnterChase, actionExitChase
		case steering.BehaviorPathFollow:
			enter, exit = actionEnterPath, actionExitPath
		default:
			continue
		}
		if err := m.AddAction(id, fsm.PhaseEnter, enter, nil); err != nil {
			return nil, fmt.Errorf("wire %s enter: %w", b, err)
		}
		if err := m.AddAction(id, fsm.PhaseExit, exit, nil); err != nil {
			return nil, fmt.Errorf("wire %s exit: %w", b, err)
		}
	}

	m.InitialStateID = stateOf(initial)
	return m, nil
}

// --- Wander ---

func enterWander(w *World, _ any) {
	w.wander.Theta = parameter.WanderInitialTheta
	if w.Debug {
		w.showWanderMarkers()
	}
}

func exitWander(w *World, _ any) {
	w.hideWanderMarkers()
}

// syncWanderMarkers follows a debug toggle made while Wander is active
func (w *World) syncWanderMarkers() {
	switch {
	case w.Debug && !w.wanderMarkers:
		w.showWanderMarkers()
	case !w.Debug && w.wanderMarkers:
		w.hideWanderMarkers()
	}
}

func (w *World) showWanderMarkers() {
	pos := w.Agent.Position
	w.wanderCircle = w.createEntity(event.MarkerWanderCircle, pos, parameter.WanderCircleMarkerRadius)
	w.wanderTarget = w.createEntity(event.MarkerWanderTarget, pos, parameter.WanderTargetMarkerRadius)
	w.wanderMarkers = true
}

func (w *World) hideWanderMarkers() {
	if !w.wanderMarkers {
		return
	}
	w.destroyEntity(w.wanderCircle)
	w.destroyEntity(w.wanderTarget)
	w.wanderCircle, w.wanderTarget = core.EntityNone, core.EntityNone
	w.wanderMarkers = false
}

// --- Pursue / Evade ---

// enterChase spawns the pursuit target at the origin with a random heading and
// raises the agent's speed cap, remembering the prior value
func enterChase(w *World, _ any) {
	target := &PursuitTarget{
		Kinetic: core.Kinetic{
			Velocity: w.randomTargetVelocity(),
		},
		Radius:   parameter.PursueTargetRadius,
		MaxSpeed: parameter.PursueTargetMaxSpeed,
	}
	target.ID = w.createEntity(event.MarkerPursueTarget, target.Kinetic.Position, target.Radius)
	w.pursuit = target
	w.pursuitOffset = w.createEntity(event.MarkerPursueOffset, target.Kinetic.Position, parameter.PursueOffsetRadius)

	if !w.speedOverride {
		w.savedMaxSpeed = w.Agent.MaxLinearSpeed
		w.speedOverride = true
	}
	w.Agent.MaxLinearSpeed = w.Profile.PursueMaxSpeed
	w.logger.Debug("pursuit target spawned", "id", uint64(target.ID), "velocity", target.Kinetic.Velocity)
}

// exitChase tolerates entities already removed by Despawn
func exitChase(w *World, _ any) {
	if w.pursuit != nil {
		w.destroyEntity(w.pursuit.ID)
		w.pursuit = nil
	}
	if w.pursuitOffset != core.EntityNone {
		w.destroyEntity(w.pursuitOffset)
		w.pursuitOffset = core.EntityNone
	}
	if w.speedOverride {
		w.Agent.MaxLinearSpeed = w.savedMaxSpeed
		w.speedOverride = false
	}
}

func (w *World) randomTargetVelocity() vmath.Vec2 {
	r := float32(parameter.PursueVelocityRange)
	return vmath.V2(
		w.randRange(-r, r)*parameter.PursueVelocityScale,
		w.randRange(-r, r)*parameter.PursueVelocityScale,
	)
}

// resetPursuit re-randomizes the target's position within bounds and its velocity
func (w *World) resetPursuit() {
	if w.pursuit == nil {
		return
	}
	w.pursuit.Kinetic.Velocity = w.randomTargetVelocity()
	w.pursuit.Kinetic.Position = vmath.V2(
		w.randRange(-w.Bounds.HalfWidth, w.Bounds.HalfWidth),
		w.randRange(-w.Bounds.HalfHeight, w.Bounds.HalfHeight),
	)
	w.moveEntity(w.pursuit.ID, w.pursuit.Kinetic.Position)
}

// --- PathFollow ---

func enterPath(w *World, _ any) {
	w.path = steering.DefaultPath()
	w.pathMarkers = w.pathMarkers[:0]
	for _, pt := range w.path.Points {
		id := w.createEntity(event.MarkerPathPoint, pt, parameter.PathPointRadius)
		w.pathMarkers = append(w.pathMarkers, id)
	}
}

// exitPath removes the markers; the path resource stays installed
func exitPath(w *World, _ any) {
	for _, id := range w.pathMarkers {
		w.destroyEntity(id)
	}
	w.pathMarkers = w.pathMarkers[:0]
}
