package scene

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/vmath"
)

// Marker is a visual auxiliary entity as the renderer sees it
type Marker struct {
	ID       core.EntityID
	Kind     event.MarkerKind
	Position vmath.Vec2
	Radius   float32
}

// Scene is the entity-management collaborator: it applies spawn/despawn/move
// commands emitted by the world and serves markers to the renderer
type Scene struct {
	markers *Store[Marker]
	logger  *slog.Logger
}

// New creates an empty scene; logger may be nil
func New(logger *slog.Logger) *Scene {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scene{
		markers: NewStore[Marker](),
		logger:  logger,
	}
}

// Apply executes commands in order
// Commands referring to unknown entities are skipped and reported in the returned count
func (s *Scene) Apply(cmds []event.Command) (rejected int) {
	for _, c := range cmds {
		if err := s.apply(c); err != nil {
			rejected++
			s.logger.Debug("scene command rejected", "op", c.Op.String(), "id", uint64(c.ID), "error", err)
		}
	}
	return rejected
}

func (s *Scene) apply(c event.Command) error {
	switch c.Op {
	case event.OpSpawn:
		if s.markers.Has(c.ID) {
			return fmt.Errorf("entity %d already spawned", c.ID)
		}
		s.markers.Set(c.ID, Marker{ID: c.ID, Kind: c.Marker, Position: c.Position, Radius: c.Radius})
	case event.OpDespawn:
		if !s.markers.Remove(c.ID) {
			return fmt.Errorf("entity %d not found", c.ID)
		}
	case event.OpMove:
		if !s.markers.Update(c.ID, func(m *Marker) { m.Position = c.Position }) {
			return fmt.Errorf("entity %d not found", c.ID)
		}
	default:
		return fmt.Errorf("unknown op %d", c.Op)
	}
	return nil
}

// Remove tears down a marker outside the command flow, as an abrupt external despawn would
func (s *Scene) Remove(id core.EntityID) bool {
	return s.markers.Remove(id)
}

// Marker returns the marker with id
func (s *Scene) Marker(id core.EntityID) (Marker, bool) {
	return s.markers.Get(id)
}

// Markers returns a snapshot in spawn order
func (s *Scene) Markers() []Marker {
	out := make([]Marker, 0, s.markers.Len())
	s.markers.Each(func(_ core.EntityID, m Marker) {
		out = append(out, m)
	})
	return out
}

// ByKind returns the first marker of kind
func (s *Scene) ByKind(kind event.MarkerKind) (Marker, bool) {
	var (
		found Marker
		ok    bool
	)
	s.markers.Each(func(_ core.EntityID, m Marker) {
		if !ok && m.Kind == kind {
			found, ok = m, true
		}
	})
	return found, ok
}

// Len returns the number of live markers
func (s *Scene) Len() int {
	return s.markers.Len()
}

// Reset drops every marker
func (s *Scene) Reset() {
	s.markers.Clear()
}
