package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/engine/fsm"
	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/parameter"
	"github.com/lixenwraith/steer/steering"
	"github.com/lixenwraith/steer/vmath"
)

// Config seeds a World
type Config struct {
	Agent   core.Agent
	Cursor  vmath.Vec2
	Bounds  core.Bounds
	Profile steering.Profile
	Initial steering.Behavior
	// Debug spawns wander circle/target markers while Wander is active
	Debug bool
}

// DefaultConfig returns the stock ship, play area and tuning
func DefaultConfig() Config {
	return Config{
		Agent: core.Agent{
			Kinetic: core.Kinetic{
				Position: vmath.V2(parameter.ShipStartX, parameter.ShipStartY),
			},
			MaxLinearSpeed:  parameter.ShipMaxLinearSpeed,
			MaxAngularSpeed: parameter.ShipMaxAngularSpeed,
			Radius:          parameter.ShipRadius,
		},
		Cursor: vmath.V2(parameter.CursorStartX, parameter.CursorStartY),
		Bounds: core.Bounds{
			HalfWidth:  parameter.WorldHalfWidth,
			HalfHeight: parameter.WorldHalfHeight,
			Mode:       core.EdgeWrap,
		},
		Profile: steering.DefaultProfile(),
		Initial: steering.BehaviorSeek,
	}
}

// PursuitTarget is the moving point chased in Pursue and avoided in Evade
type PursuitTarget struct {
	ID       core.EntityID
	Kinetic  core.Kinetic
	Radius   float32
	MaxSpeed float32
}

// World is the simulation context: one agent, the behavior state machine,
// and the auxiliary state owned by the active behavior
// Single-threaded; all mutation happens in Select, Tick, Despawn and Close
type World struct {
	Agent   core.Agent
	Cursor  vmath.Vec2
	Bounds  core.Bounds
	Profile steering.Profile
	Debug   bool

	machine *fsm.Machine[*World]
	rng     steering.Rand
	logger  *slog.Logger
	metrics *metrics

	// Wander
	wander        steering.WanderState
	wanderCircle  core.EntityID
	wanderTarget  core.EntityID
	wanderMarkers bool

	// Pursue / Evade
	pursuit       *PursuitTarget
	pursuitOffset core.EntityID
	savedMaxSpeed float32
	speedOverride bool

	// PathFollow
	path        steering.Path
	pathMarkers []core.EntityID

	// Entity bookkeeping
	nextEntityID core.EntityID
	live         map[core.EntityID]event.MarkerKind
	pending      []event.Command

	// Per-tick scratch written by update actions
	frame frameScratch

	// Set by Close; last holds the behavior that was active
	closed bool
	last   steering.Behavior
}

// ErrClosed is returned by Select after Close
var ErrClosed = errors.New("world closed")

// NewWorld builds the state machine, registers lifecycle hooks and enters the initial behavior
// rng drives wander jitter and pursuit randomization; logger may be nil
func NewWorld(cfg Config, rng steering.Rand, logger *slog.Logger) (*World, error) {
	if rng == nil {
		return nil, fmt.Errorf("world requires a random source")
	}
	if !cfg.Initial.Valid() {
		return nil, fmt.Errorf("invalid initial behavior %s", cfg.Initial)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &World{
		Agent:        cfg.Agent,
		Cursor:       cfg.Cursor,
		Bounds:       cfg.Bounds,
		Profile:      cfg.Profile,
		Debug:        cfg.Debug,
		rng:          rng,
		logger:       logger,
		metrics:      newMetrics(),
		wander:       steering.WanderState{Theta: parameter.WanderInitialTheta},
		path:         steering.Path{Radius: parameter.PathInitialRadius},
		nextEntityID: core.EntityAgent + 1,
		live:         make(map[core.EntityID]event.MarkerKind),
	}

	machine, err := newBehaviorMachine(cfg.Initial)
	if err != nil {
		return nil, err
	}
	w.machine = machine

	if err := w.machine.Init(w); err != nil {
		return nil, fmt.Errorf("init behavior machine: %w", err)
	}
	w.logger.Info("world initialized", "behavior", cfg.Initial.String(), "edges", w.Bounds.Mode.String())
	return w, nil
}

// Behavior returns the active behavior
func (w *World) Behavior() steering.Behavior {
	if w.closed {
		return w.last
	}
	return behaviorOf(w.machine.ActiveState())
}

// Select switches the active behavior, running the old exit hook then the new enter hook
// Selecting the active behavior is a no-op
func (w *World) Select(b steering.Behavior) error {
	if w.closed {
		return fmt.Errorf("select %s: %w", b, ErrClosed)
	}
	if !b.Valid() {
		return fmt.Errorf("select: invalid behavior %s", b)
	}
	from := w.Behavior()
	if from == b {
		return nil
	}
	if err := w.machine.Transition(w, stateOf(b)); err != nil {
		return fmt.Errorf("select %s: %w", b, err)
	}
	w.metrics.transition(b)
	w.logger.Info("behavior switched", "from", from.String(), "to", b.String())
	return nil
}

// Closed reports whether Close has run
func (w *World) Closed() bool {
	return w.closed
}

// Pursuit returns the live pursuit target, nil outside Pursue/Evade
func (w *World) Pursuit() *PursuitTarget {
	return w.pursuit
}

// Path returns the path resource
func (w *World) Path() steering.Path {
	return w.path
}

// WanderTheta returns the current wander angle
func (w *World) WanderTheta() float32 {
	return w.wander.Theta
}

// LiveEntities returns the number of auxiliary entities currently spawned
func (w *World) LiveEntities() int {
	return len(w.live)
}

// Despawn records that an auxiliary entity was torn down externally
// Exit hooks later skip it. Returns false if id was not live
func (w *World) Despawn(id core.EntityID) bool {
	if _, ok := w.live[id]; !ok {
		return false
	}
	delete(w.live, id)

	switch {
	case w.pursuit != nil && w.pursuit.ID == id:
		w.pursuit = nil
	case w.pursuitOffset == id:
		w.pursuitOffset = core.EntityNone
	case w.wanderCircle == id:
		w.wanderCircle = core.EntityNone
	case w.wanderTarget == id:
		w.wanderTarget = core.EntityNone
	default:
		for i, pid := range w.pathMarkers {
			if pid == id {
				w.pathMarkers = append(w.pathMarkers[:i], w.pathMarkers[i+1:]...)
				break
			}
		}
	}
	w.logger.Debug("entity despawned externally", "id", uint64(id))
	return true
}

// Close runs the active behavior's exit hook and returns the resulting commands
// Safe to call more than once; Behavior keeps reporting the last active behavior
func (w *World) Close() []event.Command {
	if !w.closed {
		w.last = w.Behavior()
		w.closed = true
		w.machine.Shutdown(w)
	}
	return w.drainCommands()
}

// createEntity reserves a new entity ID and queues its spawn command
func (w *World) createEntity(marker event.MarkerKind, pos vmath.Vec2, radius float32) core.EntityID {
	id := w.nextEntityID
	w.nextEntityID++
	w.live[id] = marker
	w.pending = append(w.pending, event.Spawn(id, marker, pos, radius))
	return id
}

// destroyEntity queues a despawn if id is still live, tolerating missing entities
func (w *World) destroyEntity(id core.EntityID) {
	marker, ok := w.live[id]
	if !ok {
		return
	}
	delete(w.live, id)
	w.pending = append(w.pending, event.Despawn(id, marker))
}

// moveEntity queues a position update if id is live
func (w *World) moveEntity(id core.EntityID, pos vmath.Vec2) {
	if marker, ok := w.live[id]; ok {
		w.pending = append(w.pending, event.Move(id, marker, pos))
	}
}

func (w *World) drainCommands() []event.Command {
	if len(w.pending) == 0 {
		return nil
	}
	out := w.pending
	w.pending = nil
	return out
}

// randRange draws uniformly from [lo, hi)
func (w *World) randRange(lo, hi float32) float32 {
	return lo + w.rng.Float32()*(hi-lo)
}
