package steering

import "github.com/lixenwraith/steer/parameter"

// Profile holds the tuning knobs shared by the behavior functions
// Profiles are plain values; DefaultProfile mirrors the parameter package
type Profile struct {
	ArrivalRadius       float32 // Arrive taper begins inside this distance
	ArrivalSpeedCeiling float32 // Arrive taper output upper bound

	WanderDistance float32 // Wander circle center distance ahead of the agent
	WanderRadius   float32 // Wander circle radius
	WanderJitter   float32 // Max |Δtheta| per tick

	PursueDistance float32 // Intercept lookahead along target velocity
	PursueMaxSpeed float32 // Agent max speed override while chasing

	PathLookahead float32 // Future position and target lookahead

	// ArriveUnscaled adds Arrive's steer without dt scaling, as the first iteration did
	ArriveUnscaled bool
}

// DefaultProfile returns the stock tuning
func DefaultProfile() Profile {
	return Profile{
		ArrivalRadius:       parameter.ArrivalRadius,
		ArrivalSpeedCeiling: parameter.ArrivalSpeedCeiling,
		WanderDistance:      parameter.WanderDistance,
		WanderRadius:        parameter.WanderRadius,
		WanderJitter:        parameter.WanderJitter,
		PursueDistance:      parameter.PursueDistanceAhead,
		PursueMaxSpeed:      parameter.PursueAgentMaxSpeed,
		PathLookahead:       parameter.PathLookahead,
	}
}
