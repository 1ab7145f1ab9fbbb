package config

type PlayerTypesConfig struct {
	Types []PlayerType `yaml:"types"`
}

type PlayerType struct {
	ID             int     `yaml:"id"`
	PlayerSpeedMax float64 `yaml:"player_speed_max"`
	PlayerDecay    float64 `yaml:"player_decay"`
	PlayerSize     float64 `yaml:"player_size"`
	DashPowerRate  float64 `yaml:"dash_power_rate"`
	KickableMargin float64 `yaml:"kickable_margin"`
	InertiaMoment  float64 `yaml:"inertia_moment"`
	EffortMax      float64 `yaml:"effort_max"`
	EffortMin      float64 `yaml:"effort_min"`
	StaminaIncMax  float64 `yaml:"stamina_inc_max"`
	ExtraStamina   float64 `yaml:"extra_stamina"`
	Note           string  `yaml:"note"`
}

// DefaultPlayerType is the standard (type 0) player.
func DefaultPlayerType() PlayerType {
	return PlayerType{
		PlayerSpeedMax: 1.05,
		PlayerDecay:    0.4,
		PlayerSize:     0.3,
		DashPowerRate:  0.006,
		KickableMargin: 0.7,
		InertiaMoment:  5.0,
		EffortMax:      1.0,
		EffortMin:      0.6,
		StaminaIncMax:  45.0,
	}
}

// Lookup returns the type with the given id, falling back to the default
// type for ids the config does not describe.
func (c *PlayerTypesConfig) Lookup(id int) PlayerType {
	if c != nil {
		for _, t := range c.Types {
			if t.ID == id {
				return t
			}
		}
	}
	t := DefaultPlayerType()
	t.ID = id
	return t
}

func (c *PlayerTypesConfig) applyDefaults() {
	d := DefaultPlayerType()
	for i := range c.Types {
		t := &c.Types[i]
		if t.PlayerSpeedMax == 0 {
			t.PlayerSpeedMax = d.PlayerSpeedMax
		}
		if t.PlayerDecay == 0 {
			t.PlayerDecay = d.PlayerDecay
		}
		if t.PlayerSize == 0 {
			t.PlayerSize = d.PlayerSize
		}
		if t.DashPowerRate == 0 {
			t.DashPowerRate = d.DashPowerRate
		}
		if t.KickableMargin == 0 {
			t.KickableMargin = d.KickableMargin
		}
		if t.InertiaMoment == 0 {
			t.InertiaMoment = d.InertiaMoment
		}
		if t.EffortMax == 0 {
			t.EffortMax = d.EffortMax
		}
		if t.EffortMin == 0 {
			t.EffortMin = d.EffortMin
		}
		if t.StaminaIncMax == 0 {
			t.StaminaIncMax = d.StaminaIncMax
		}
	}
}
