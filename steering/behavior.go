package steering

import (
	"fmt"
	"strings"
)

// Behavior tags the active steering algorithm
type Behavior uint8

const (
	BehaviorSeek Behavior = iota
	BehaviorArrive
	BehaviorWander
	BehaviorPursue
	BehaviorFlee
	BehaviorEvade
	BehaviorPathFollow

	behaviorCount
)

var behaviorNames = [behaviorCount]string{
	BehaviorSeek:       "seek",
	BehaviorArrive:     "arrive",
	BehaviorWander:     "wander",
	BehaviorPursue:     "pursue",
	BehaviorFlee:       "flee",
	BehaviorEvade:      "evade",
	BehaviorPathFollow: "path-follow",
}

func (b Behavior) String() string {
	if b < behaviorCount {
		return behaviorNames[b]
	}
	return fmt.Sprintf("Behavior(%d)", b)
}

// Valid reports whether b is one of the defined behaviors
func (b Behavior) Valid() bool {
	return b < behaviorCount
}

// All returns every behavior in declaration order
func All() []Behavior {
	out := make([]Behavior, 0, behaviorCount)
	for b := BehaviorSeek; b < behaviorCount; b++ {
		out = append(out, b)
	}
	return out
}

// ParseBehavior resolves a behavior name, case-insensitive
// "pathfollow", "path_follow" and "path-follow" are accepted
func ParseBehavior(s string) (Behavior, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	for b := BehaviorSeek; b < behaviorCount; b++ {
		if strings.ReplaceAll(behaviorNames[b], "-", "") == key {
			return b, nil
		}
	}
	return BehaviorSeek, fmt.Errorf("unknown behavior %q", s)
}
