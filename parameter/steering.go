package parameter

// Steering - Arrive
const (
	// ArrivalRadius is the distance inside which Arrive tapers desired speed
	ArrivalRadius = 60.0

	// ArrivalSpeedCeiling is the upper bound of the taper output range
	ArrivalSpeedCeiling = 100.0
)

// Steering - Wander
const (
	// WanderDistance projects the wander circle center along velocity
	WanderDistance = 100.0

	// WanderRadius is the wander circle radius
	WanderRadius = 50.0

	// WanderJitter bounds the per-tick theta perturbation to [-WanderJitter, WanderJitter)
	WanderJitter = 0.3

	// WanderInitialTheta is the wander angle on entering Wander (π/2)
	WanderInitialTheta = 1.5707963267948966
)

// Steering - Pursue/Evade
const (
	// PursueDistanceAhead projects the intercept point along target velocity
	PursueDistanceAhead = 25.0

	// PursueAgentMaxSpeed overrides agent max linear speed while chasing
	PursueAgentMaxSpeed = 300.0

	// PursueTargetRadius is the pursuit target collider radius
	PursueTargetRadius = 15.0

	// PursueTargetMaxSpeed caps the pursuit target's own speed
	PursueTargetMaxSpeed = 200.0

	// PursueOffsetRadius is the intercept marker size
	PursueOffsetRadius = 5.0

	// PursueVelocityRange and PursueVelocityScale randomize target velocity per axis
	// as U[-range, range) * scale
	PursueVelocityRange = 20.0
	PursueVelocityScale = 10.0
)

// Steering - Path Follow
const (
	// PathLookahead projects future position and the target along the winning segment
	PathLookahead = 15.0

	// PathInitialRadius is the tolerance of the empty path before PathFollow installs its loop
	PathInitialRadius = 10.0

	// PathDefaultRadius is the tolerance of the default loop
	PathDefaultRadius = 20.0

	// PathPointRadius is the waypoint marker size
	PathPointRadius = 10.0
)

// DefaultPathPoints is the closed waypoint loop installed on entering PathFollow
var DefaultPathPoints = [4][2]float32{
	{-161, -160},
	{162, -160},
	{163, 160},
	{-164, 160},
}
