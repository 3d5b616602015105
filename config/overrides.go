package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the YAML document that patches tunable values at startup
type Overrides struct {
	Difficulty *int                        `yaml:"difficulty"`
	LevelTime  *float64                    `yaml:"level_time"`
	Gravity    *float64                    `yaml:"gravity"`
	ArenaFile  *string                     `yaml:"arena_file"`
	Munitions  map[string]MunitionOverride `yaml:"munitions"`
	Weapons    map[string]WeaponOverride   `yaml:"weapons"`
}

// MunitionOverride patches one munition kind, keyed by its name
type MunitionOverride struct {
	Speed     *float64 `yaml:"speed"`
	Damage    *int     `yaml:"damage"`
	MaxRange  *float64 `yaml:"max_range"`
	DyingTime *float64 `yaml:"dying_time"`
}

// WeaponOverride patches one weapon kind, keyed by its name
type WeaponOverride struct {
	Capacity    *int     `yaml:"capacity"`
	ReloadDelay *float64 `yaml:"reload_delay"`
	ShotDelay   *float64 `yaml:"shot_delay"`
}

// LoadOverrides reads path and applies it to the global configuration.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	o, err := ParseOverrides(data)
	if err != nil {
		return fmt.Errorf("parse overrides %s: %w", path, err)
	}
	return o.Apply()
}

// ParseOverrides decodes a YAML document, rejecting unknown keys.
func ParseOverrides(data []byte) (*Overrides, error) {
	var o Overrides
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &o, nil
}

// Apply validates every value first and only then patches the globals, so
// a bad document leaves the configuration untouched.
func (o *Overrides) Apply() error {
	if o.Difficulty != nil && (*o.Difficulty < 0 || *o.Difficulty >= Arena.Difficulties) {
		return fmt.Errorf("difficulty %d out of range [0, %d)", *o.Difficulty, Arena.Difficulties)
	}
	if o.LevelTime != nil && *o.LevelTime <= 0 {
		return fmt.Errorf("level_time must be positive, got %v", *o.LevelTime)
	}
	if o.Gravity != nil && *o.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", *o.Gravity)
	}

	munitions := make(map[MunitionKind]MunitionConfig, len(o.Munitions))
	for name, mo := range o.Munitions {
		kind, ok := munitionByName(name)
		if !ok {
			return fmt.Errorf("unknown munition %q", name)
		}
		m := Munitions[kind]
		if mo.Speed != nil {
			if m.Trajectory != TrajectoryStraight {
				return fmt.Errorf("munition %q has no fixed speed", name)
			}
			if *mo.Speed <= 0 || *mo.Speed > Physics.MaxProjectileSpeed {
				return fmt.Errorf("munition %q speed %v out of range (0, %v]", name, *mo.Speed, Physics.MaxProjectileSpeed)
			}
			m.Speed = *mo.Speed
		}
		if mo.Damage != nil {
			if *mo.Damage < 0 {
				return fmt.Errorf("munition %q damage must not be negative", name)
			}
			m.Damage = *mo.Damage
		}
		if mo.MaxRange != nil {
			if *mo.MaxRange < 0 {
				return fmt.Errorf("munition %q max_range must not be negative", name)
			}
			m.MaxRange = *mo.MaxRange
		}
		if mo.DyingTime != nil {
			if *mo.DyingTime <= 0 {
				return fmt.Errorf("munition %q dying_time must be positive", name)
			}
			m.DyingTime = *mo.DyingTime
		}
		munitions[kind] = m
	}

	weapons := make(map[WeaponKind]WeaponConfig, len(o.Weapons))
	for name, wo := range o.Weapons {
		kind, ok := weaponByName(name)
		if !ok {
			return fmt.Errorf("unknown weapon %q", name)
		}
		w := Weapons[kind]
		if wo.Capacity != nil {
			if *wo.Capacity < 1 {
				return fmt.Errorf("weapon %q capacity must be at least 1", name)
			}
			w.Capacity = *wo.Capacity
		}
		if wo.ReloadDelay != nil {
			if *wo.ReloadDelay < 0 {
				return fmt.Errorf("weapon %q reload_delay must not be negative", name)
			}
			w.ReloadDelay = *wo.ReloadDelay
		}
		if wo.ShotDelay != nil {
			if w.Throwing {
				return fmt.Errorf("weapon %q is thrown and has no shot delay", name)
			}
			if *wo.ShotDelay < 0 {
				return fmt.Errorf("weapon %q shot_delay must not be negative", name)
			}
			w.ShotDelay = *wo.ShotDelay
		}
		weapons[kind] = w
	}

	if o.Difficulty != nil {
		Arena.Difficulty = *o.Difficulty
	}
	if o.LevelTime != nil {
		Arena.LevelTime = *o.LevelTime
	}
	if o.Gravity != nil {
		Physics.Gravity = *o.Gravity
	}
	if o.ArenaFile != nil {
		Arena.ArenaFile = *o.ArenaFile
	}
	for k, m := range munitions {
		Munitions[k] = m
	}
	for k, w := range weapons {
		Weapons[k] = w
	}
	return nil
}

func munitionByName(name string) (MunitionKind, bool) {
	for k, m := range Munitions {
		if m.Name == name {
			return k, true
		}
	}
	return 0, false
}

func weaponByName(name string) (WeaponKind, bool) {
	for k, w := range Weapons {
		if w.Name == name {
			return k, true
		}
	}
	return 0, false
}
