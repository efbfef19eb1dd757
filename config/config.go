// Package config loads the optional YAML balance file
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/star-defense/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Seed        uint64      `yaml:"seed"`
	Mute        bool        `yaml:"mute"`
	Difficulty  Difficulty  `yaml:"difficulty"`
	Progression Progression `yaml:"progression"`
	Combat      Combat      `yaml:"combat"`
}

type Difficulty struct {
	RampSeconds   float64       `yaml:"ramp_seconds"`
	EnemyBaseHP   float64       `yaml:"enemy_base_hp"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	GodDropAfter  time.Duration `yaml:"god_drop_after"`
}

type Progression struct {
	InitialThreshold int `yaml:"initial_threshold"`
	ThresholdStep    int `yaml:"threshold_step"`
	Offers           int `yaml:"offers"`
}

type Combat struct {
	DropChance    float64 `yaml:"drop_chance"`
	ContactDamage float64 `yaml:"contact_damage"`
	ContactFloor  float64 `yaml:"contact_floor"`
}

// Default mirrors the parameter package
func Default() Config {
	return Config{
		Difficulty: Difficulty{
			RampSeconds:   parameter.DifficultyRampSeconds,
			EnemyBaseHP:   parameter.EnemyBaseHP,
			SpawnInterval: parameter.EnemySpawnInterval,
			GodDropAfter:  parameter.GodDropTime,
		},
		Progression: Progression{
			InitialThreshold: parameter.EnergyInitialThreshold,
			ThresholdStep:    parameter.EnergyThresholdStep,
			Offers:           parameter.UpgradeChoiceCount,
		},
		Combat: Combat{
			DropChance:    parameter.CombatDropChance,
			ContactDamage: parameter.CombatContactDamage,
			ContactFloor:  parameter.CombatContactDamageFloor,
		},
	}
}

// Load reads path over the defaults; fields absent from the file keep their default
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(b []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"difficulty.ramp_seconds", c.Difficulty.RampSeconds > 0},
		{"difficulty.enemy_base_hp", c.Difficulty.EnemyBaseHP > 0},
		{"difficulty.spawn_interval", c.Difficulty.SpawnInterval > 0},
		{"difficulty.god_drop_after", c.Difficulty.GodDropAfter > 0},
		{"progression.initial_threshold", c.Progression.InitialThreshold > 0},
		{"progression.threshold_step", c.Progression.ThresholdStep > 0},
		{"progression.offers", c.Progression.Offers > 0},
		{"combat.drop_chance", c.Combat.DropChance > 0 && c.Combat.DropChance <= 1},
		{"combat.contact_damage", c.Combat.ContactDamage > 0},
		{"combat.contact_floor", c.Combat.ContactFloor > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, chk.name)
		}
	}
	if c.Combat.ContactFloor > c.Combat.ContactDamage {
		return fmt.Errorf("%w: combat.contact_floor exceeds combat.contact_damage", ErrInvalid)
	}
	return nil
}
