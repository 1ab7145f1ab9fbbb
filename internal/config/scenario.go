package config

// Scenario is one recorded world snapshot plus the reach reports heard
// during that cycle.
type Scenario struct {
	ID        string        `yaml:"id"`
	Note      string        `yaml:"note"`
	Time      TimeDef       `yaml:"time"`
	Mode      string        `yaml:"mode"`
	Ball      BallDef       `yaml:"ball"`
	Self      SelfDef       `yaml:"self"`
	Teammates []PlayerDef   `yaml:"teammates"`
	Opponents []PlayerDef   `yaml:"opponents"`
	Heard     []HeardReport `yaml:"heard"`
}

type TimeDef struct {
	Cycle   int64 `yaml:"cycle"`
	Stopped int64 `yaml:"stopped"`
}

type Vec2Def struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BallDef struct {
	Pos      Vec2Def `yaml:"pos"`
	Vel      Vec2Def `yaml:"vel"`
	PosCount int     `yaml:"pos_count"`
	VelCount int     `yaml:"vel_count"`
}

type PlayerDef struct {
	Unum     int     `yaml:"unum"`
	Type     int     `yaml:"type"`
	Pos      Vec2Def `yaml:"pos"`
	Vel      Vec2Def `yaml:"vel"`
	Body     float64 `yaml:"body"`
	PosCount int     `yaml:"pos_count"`
	Goalie   bool    `yaml:"goalie"`
	Kickable bool    `yaml:"kickable"`
}

type SelfDef struct {
	PlayerDef `yaml:",inline"`
	Stamina   float64 `yaml:"stamina"`
	Effort    float64 `yaml:"effort"`
	Recovery  float64 `yaml:"recovery"`
}

type HeardReport struct {
	Side string `yaml:"side"` // teammate | opponent
	Unum int    `yaml:"unum"`
	Step int    `yaml:"step"`
}
