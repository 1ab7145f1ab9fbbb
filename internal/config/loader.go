package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidHeard    = errors.New("invalid heard report")
	ErrInvalidScenario = errors.New("invalid scenario")
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadAll reads server.yaml, player_types.yaml and intercept.yaml from dir.
// Fields left out of a file keep their default values.
func LoadAll(dir string) (*ServerConfig, *PlayerTypesConfig, *InterceptConfig, error) {
	sc := DefaultServer()
	var pc PlayerTypesConfig
	ic := DefaultIntercept()
	if err := loadYAML(filepath.Join(dir, "server.yaml"), &sc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "player_types.yaml"), &pc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "intercept.yaml"), &ic); err != nil {
		return nil, nil, nil, err
	}
	sc.applyDefaults()
	pc.applyDefaults()
	ic.applyDefaults()
	return &sc, &pc, &ic, nil
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	var s Scenario
	if err := loadYAML(path, &s); err != nil {
		return nil, err
	}
	if s.Mode == "" {
		s.Mode = "play_on"
	}
	if s.Self.Stamina == 0 {
		s.Self.Stamina = DefaultServer().StaminaMax
	}
	if s.Self.Effort == 0 {
		s.Self.Effort = 1.0
	}
	if s.Self.Recovery == 0 {
		s.Self.Recovery = 1.0
	}
	if err := s.checkFinite(); err != nil {
		return nil, err
	}
	for i, h := range s.Heard {
		if h.Side != "teammate" && h.Side != "opponent" {
			return nil, fmt.Errorf("heard[%d] side %q: %w", i, h.Side, ErrInvalidHeard)
		}
		if h.Unum <= 0 || h.Step < 0 {
			return nil, fmt.Errorf("heard[%d] unum=%d step=%d: %w", i, h.Unum, h.Step, ErrInvalidHeard)
		}
	}
	return &s, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (d PlayerDef) isFinite() bool {
	return finite(d.Pos.X, d.Pos.Y, d.Vel.X, d.Vel.Y, d.Body)
}

// checkFinite rejects NaN and infinite coordinates, velocities, body angles
// and stamina values.
func (s *Scenario) checkFinite() error {
	b := s.Ball
	if !finite(b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y) {
		return fmt.Errorf("scenario %q ball: %w", s.ID, ErrInvalidScenario)
	}
	if !s.Self.isFinite() || !finite(s.Self.Stamina, s.Self.Effort, s.Self.Recovery) {
		return fmt.Errorf("scenario %q self: %w", s.ID, ErrInvalidScenario)
	}
	for i, p := range s.Teammates {
		if !p.isFinite() {
			return fmt.Errorf("scenario %q teammates[%d]: %w", s.ID, i, ErrInvalidScenario)
		}
	}
	for i, p := range s.Opponents {
		if !p.isFinite() {
			return fmt.Errorf("scenario %q opponents[%d]: %w", s.ID, i, ErrInvalidScenario)
		}
	}
	return nil
}
