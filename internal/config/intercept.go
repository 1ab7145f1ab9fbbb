package config

// InterceptConfig tunes the reach table. LoadAll starts from
// DefaultIntercept, so keys missing from the file keep their defaults while
// an explicit field_margin or min_cache_steps of 0 is honoured.
type InterceptConfig struct {
	MaxStep            int     `yaml:"max_step"`
	Sentinel           int     `yaml:"sentinel"`
	TeammateStaleCount int     `yaml:"teammate_stale_count"`
	OpponentStaleCount int     `yaml:"opponent_stale_count"`
	SlowBallSpeed      float64 `yaml:"slow_ball_speed"`
	MinCacheSteps      int     `yaml:"min_cache_steps"`
	FieldMargin        float64 `yaml:"field_margin"`
	PosCountBonusMax   int     `yaml:"pos_count_bonus_max"`
	MinTurnTolerance   float64 `yaml:"min_turn_tolerance"`
	Logging            Logging `yaml:"logging"`
}

type Logging struct {
	Sinks       []string       `yaml:"sinks"`
	MinSeverity string         `yaml:"min_severity"`
	JSONPath    string         `yaml:"json_path"`
	Fields      map[string]any `yaml:"fields"`
}

func DefaultIntercept() InterceptConfig {
	return InterceptConfig{
		MaxStep:            50,
		Sentinel:           1000,
		TeammateStaleCount: 10,
		OpponentStaleCount: 15,
		SlowBallSpeed:      0.005,
		MinCacheSteps:      10,
		FieldMargin:        5.0,
		PosCountBonusMax:   5,
		MinTurnTolerance:   12.5,
		Logging: Logging{
			Sinks:       []string{"console"},
			MinSeverity: "info",
		},
	}
}

func (c *InterceptConfig) applyDefaults() {
	d := DefaultIntercept()
	if c.MaxStep <= 0 {
		c.MaxStep = d.MaxStep
	}
	if c.Sentinel <= 0 {
		c.Sentinel = d.Sentinel
	}
	if c.TeammateStaleCount <= 0 {
		c.TeammateStaleCount = d.TeammateStaleCount
	}
	if c.OpponentStaleCount <= 0 {
		c.OpponentStaleCount = d.OpponentStaleCount
	}
	if c.SlowBallSpeed <= 0 {
		c.SlowBallSpeed = d.SlowBallSpeed
	}
	if c.MinCacheSteps < 0 {
		c.MinCacheSteps = 0
	}
	if c.PosCountBonusMax < 0 {
		c.PosCountBonusMax = 0
	}
	if c.MinTurnTolerance <= 0 {
		c.MinTurnTolerance = d.MinTurnTolerance
	}
	if len(c.Logging.Sinks) == 0 {
		c.Logging.Sinks = d.Logging.Sinks
	}
	if c.Logging.MinSeverity == "" {
		c.Logging.MinSeverity = d.Logging.MinSeverity
	}
}
