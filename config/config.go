package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/engine"
	"github.com/lixenwraith/steer/logging"
	"github.com/lixenwraith/steer/parameter"
	"github.com/lixenwraith/steer/steering"
	"github.com/lixenwraith/steer/vmath"
)

const (
	// FileName is looked up in the working directory when no explicit path is given
	FileName  = "steer.json"
	envPrefix = "STEER"
)

// Config is the typed view of steer.json plus STEER_* overrides
type Config struct {
	LogLevel string `json:"logLevel" mapstructure:"logLevel"`
	LogsDir  string `json:"logsDir" mapstructure:"logsDir"`
	Debug    bool   `json:"debug" mapstructure:"debug"`
	Seed     uint64 `json:"seed" mapstructure:"seed"`
	TickRate int    `json:"tickRate" mapstructure:"tickRate"`
	Behavior string `json:"behavior" mapstructure:"behavior"`

	Audio    AudioConfig    `json:"audio" mapstructure:"audio"`
	World    WorldConfig    `json:"world" mapstructure:"world"`
	Ship     ShipConfig     `json:"ship" mapstructure:"ship"`
	Steering SteeringConfig `json:"steering" mapstructure:"steering"`
}

// AudioConfig toggles sound cues
type AudioConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// WorldConfig sizes the play area
type WorldConfig struct {
	HalfWidth  float32 `json:"halfWidth" mapstructure:"halfWidth"`
	HalfHeight float32 `json:"halfHeight" mapstructure:"halfHeight"`
	EdgeMode   string  `json:"edgeMode" mapstructure:"edgeMode"`
}

// ShipConfig holds agent limits
type ShipConfig struct {
	MaxLinearSpeed  float32 `json:"maxLinearSpeed" mapstructure:"maxLinearSpeed"`
	MaxAngularSpeed float32 `json:"maxAngularSpeed" mapstructure:"maxAngularSpeed"`
	Radius          float32 `json:"radius" mapstructure:"radius"`
}

// SteeringConfig overrides behavior tuning
type SteeringConfig struct {
	ArrivalRadius  float32 `json:"arrivalRadius" mapstructure:"arrivalRadius"`
	WanderDistance float32 `json:"wanderDistance" mapstructure:"wanderDistance"`
	WanderRadius   float32 `json:"wanderRadius" mapstructure:"wanderRadius"`
	WanderJitter   float32 `json:"wanderJitter" mapstructure:"wanderJitter"`
	PursueDistance float32 `json:"pursueDistance" mapstructure:"pursueDistance"`
	PursueMaxSpeed float32 `json:"pursueMaxSpeed" mapstructure:"pursueMaxSpeed"`
	PathLookahead  float32 `json:"pathLookahead" mapstructure:"pathLookahead"`
	ArriveUnscaled bool    `json:"arriveUnscaled" mapstructure:"arriveUnscaled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logsDir", "./logs")
	v.SetDefault("debug", false)
	v.SetDefault("seed", 0)
	v.SetDefault("tickRate", parameter.DefaultTickRate)
	v.SetDefault("behavior", steering.BehaviorSeek.String())

	v.SetDefault("audio.enabled", true)

	v.SetDefault("world.halfWidth", parameter.WorldHalfWidth)
	v.SetDefault("world.halfHeight", parameter.WorldHalfHeight)
	v.SetDefault("world.edgeMode", core.EdgeWrap.String())

	v.SetDefault("ship.maxLinearSpeed", parameter.ShipMaxLinearSpeed)
	v.SetDefault("ship.maxAngularSpeed", parameter.ShipMaxAngularSpeed)
	v.SetDefault("ship.radius", parameter.ShipRadius)

	v.SetDefault("steering.arrivalRadius", parameter.ArrivalRadius)
	v.SetDefault("steering.wanderDistance", parameter.WanderDistance)
	v.SetDefault("steering.wanderRadius", parameter.WanderRadius)
	v.SetDefault("steering.wanderJitter", parameter.WanderJitter)
	v.SetDefault("steering.pursueDistance", parameter.PursueDistanceAhead)
	v.SetDefault("steering.pursueMaxSpeed", parameter.PursueAgentMaxSpeed)
	v.SetDefault("steering.pathLookahead", parameter.PathLookahead)
	v.SetDefault("steering.arriveUnscaled", false)
}

// Load reads configuration and applies defaults and STEER_* environment overrides
// An empty path looks for steer.json in the working directory and tolerates its absence;
// an explicit path must exist
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("json")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".json"))
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tickRate must be positive, got %d", c.TickRate))
	}
	if c.World.HalfWidth <= 0 || c.World.HalfHeight <= 0 {
		errs = append(errs, fmt.Errorf("world half extents must be positive, got %gx%g",
			c.World.HalfWidth, c.World.HalfHeight))
	}
	if c.Ship.MaxLinearSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ship.maxLinearSpeed must be positive, got %g", c.Ship.MaxLinearSpeed))
	}
	if c.Ship.MaxAngularSpeed < 0 || c.Ship.Radius < 0 {
		errs = append(errs, fmt.Errorf("ship angular speed and radius must not be negative"))
	}
	if c.Steering.WanderJitter < 0 {
		errs = append(errs, fmt.Errorf("steering.wanderJitter must not be negative, got %g", c.Steering.WanderJitter))
	}
	if _, err := core.ParseEdgeMode(c.World.EdgeMode); err != nil {
		errs = append(errs, fmt.Errorf("world.edgeMode: %w", err))
	}
	if _, err := steering.ParseBehavior(c.Behavior); err != nil {
		errs = append(errs, fmt.Errorf("behavior: %w", err))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("logLevel: %w", err))
	}
	return errors.Join(errs...)
}

// Profile returns the steering tuning, ceiling fixed by the parameter package
func (c *Config) Profile() steering.Profile {
	return steering.Profile{
		ArrivalRadius:       c.Steering.ArrivalRadius,
		ArrivalSpeedCeiling: parameter.ArrivalSpeedCeiling,
		WanderDistance:      c.Steering.WanderDistance,
		WanderRadius:        c.Steering.WanderRadius,
		WanderJitter:        c.Steering.WanderJitter,
		PursueDistance:      c.Steering.PursueDistance,
		PursueMaxSpeed:      c.Steering.PursueMaxSpeed,
		PathLookahead:       c.Steering.PathLookahead,
		ArriveUnscaled:      c.Steering.ArriveUnscaled,
	}
}

// Engine converts the configuration into a world seed
func (c *Config) Engine() (engine.Config, error) {
	mode, err := core.ParseEdgeMode(c.World.EdgeMode)
	if err != nil {
		return engine.Config{}, err
	}
	initial, err := steering.ParseBehavior(c.Behavior)
	if err != nil {
		return engine.Config{}, err
	}

	ec := engine.DefaultConfig()
	ec.Bounds = core.Bounds{HalfWidth: c.World.HalfWidth, HalfHeight: c.World.HalfHeight, Mode: mode}
	ec.Agent.MaxLinearSpeed = c.Ship.MaxLinearSpeed
	ec.Agent.MaxAngularSpeed = c.Ship.MaxAngularSpeed
	ec.Agent.Radius = c.Ship.Radius
	ec.Agent.Position = clampStart(ec.Agent.Position, ec.Bounds)
	ec.Cursor = clampStart(ec.Cursor, ec.Bounds)
	ec.Profile = c.Profile()
	ec.Initial = initial
	ec.Debug = c.Debug
	return ec, nil
}

// clampStart keeps default start positions inside a shrunken play area
func clampStart(p vmath.Vec2, b core.Bounds) vmath.Vec2 {
	return vmath.V2(
		vmath.Constrain(p.X, -b.HalfWidth, b.HalfWidth),
		vmath.Constrain(p.Y, -b.HalfHeight, b.HalfHeight),
	)
}
