package config

import "math"

type ServerConfig struct {
	PitchHalfLength float64 `yaml:"pitch_half_length"`
	PitchHalfWidth  float64 `yaml:"pitch_half_width"`
	PenaltyLength   float64 `yaml:"penalty_area_length"`
	PenaltyWidth    float64 `yaml:"penalty_area_width"`

	KeepawayMode   bool    `yaml:"keepaway_mode"`
	KeepawayLength float64 `yaml:"keepaway_length"`
	KeepawayWidth  float64 `yaml:"keepaway_width"`

	BallDecay    float64 `yaml:"ball_decay"`
	BallSize     float64 `yaml:"ball_size"`
	BallSpeedMax float64 `yaml:"ball_speed_max"`

	MaxDashPower  float64 `yaml:"max_dash_power"`
	MaxMoment     float64 `yaml:"max_moment"`
	StaminaMax    float64 `yaml:"stamina_max"`
	RecoverDecThr float64 `yaml:"recover_dec_thr"`

	CatchAreaL float64 `yaml:"catch_area_l"`
	CatchAreaW float64 `yaml:"catch_area_w"`
}

func DefaultServer() ServerConfig {
	return ServerConfig{
		PitchHalfLength: 52.5,
		PitchHalfWidth:  34.0,
		PenaltyLength:   16.5,
		PenaltyWidth:    40.32,
		KeepawayLength:  20.0,
		KeepawayWidth:   20.0,
		BallDecay:       0.94,
		BallSize:        0.085,
		BallSpeedMax:    3.0,
		MaxDashPower:    100.0,
		MaxMoment:       180.0,
		StaminaMax:      8000.0,
		RecoverDecThr:   0.3,
		CatchAreaL:      1.2,
		CatchAreaW:      1.0,
	}
}

// CatchableArea is the radius inside which a goalie's catch always succeeds.
func (s *ServerConfig) CatchableArea() float64 {
	return math.Hypot(s.CatchAreaW*0.5, s.CatchAreaL)
}

// RecoverThreshold is the absolute stamina below which recovery starts to decay.
func (s *ServerConfig) RecoverThreshold() float64 {
	return s.StaminaMax * s.RecoverDecThr
}

// BallBounds returns the half extents a ball may travel before it is
// considered gone: the keep-away box, or the pitch plus a margin.
func (s *ServerConfig) BallBounds(margin float64) (maxX, maxY float64) {
	if s.KeepawayMode {
		return s.KeepawayLength * 0.5, s.KeepawayWidth * 0.5
	}
	return s.PitchHalfLength + margin, s.PitchHalfWidth + margin
}

func (s *ServerConfig) applyDefaults() {
	d := DefaultServer()
	fill := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&s.PitchHalfLength, d.PitchHalfLength)
	fill(&s.PitchHalfWidth, d.PitchHalfWidth)
	fill(&s.PenaltyLength, d.PenaltyLength)
	fill(&s.PenaltyWidth, d.PenaltyWidth)
	fill(&s.KeepawayLength, d.KeepawayLength)
	fill(&s.KeepawayWidth, d.KeepawayWidth)
	fill(&s.BallDecay, d.BallDecay)
	fill(&s.BallSize, d.BallSize)
	fill(&s.BallSpeedMax, d.BallSpeedMax)
	fill(&s.MaxDashPower, d.MaxDashPower)
	fill(&s.MaxMoment, d.MaxMoment)
	fill(&s.StaminaMax, d.StaminaMax)
	fill(&s.RecoverDecThr, d.RecoverDecThr)
	fill(&s.CatchAreaL, d.CatchAreaL)
	fill(&s.CatchAreaW, d.CatchAreaW)
}

// InPenaltyArea reports whether (x, y) lies in our penalty area (the goal at
// -x) or, with ours=false, in the opponents' one.
func (s *ServerConfig) InPenaltyArea(ours bool, x, y float64) bool {
	if ours {
		x = -x
	}
	return x >= s.PitchHalfLength-s.PenaltyLength &&
		x <= s.PitchHalfLength &&
		math.Abs(y) <= s.PenaltyWidth*0.5
}
