// Package upgrade defines the upgrade catalog and rarity-weighted offer selection
package upgrade

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyID       = errors.New("upgrade id is empty")
	ErrDuplicateID   = errors.New("duplicate upgrade id")
	ErrInvalidWeight = errors.New("upgrade weight must be positive and finite")
	ErrEmptyEffect   = errors.New("upgrade effect is empty")
	ErrInvalidTier   = errors.New("unknown upgrade tier")
)

// Tier is upgrade rarity, T1 common through Curse
type Tier int

const (
	TierT1 Tier = iota
	TierT2
	TierT3
	TierCurse
)

func (t Tier) String() string {
	switch t {
	case TierT1:
		return "T1"
	case TierT2:
		return "T2"
	case TierT3:
		return "T3"
	case TierCurse:
		return "CURSE"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Label is the player-facing badge
func (t Tier) Label() string {
	switch t {
	case TierT1:
		return "TIER 1"
	case TierT2:
		return "TIER 2"
	case TierT3:
		return "TIER 3"
	case TierCurse:
		return "ANOMALY"
	}
	return "?"
}

// Definition is one immutable catalog entry
type Definition struct {
	ID          string
	Name        string
	Description string
	Tier        Tier
	Weight      float64
	Effect      Effect
}

// Catalog is the fixed, validated set of upgrades for the process lifetime
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// NewCatalog validates definitions and builds the id index
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if d.ID == "" {
			return nil, ErrEmptyID
		}
		if _, dup := c.index[d.ID]; dup {
			return nil, fmt.Errorf("%q: %w", d.ID, ErrDuplicateID)
		}
		if d.Weight <= 0 || math.IsNaN(d.Weight) || math.IsInf(d.Weight, 0) {
			return nil, fmt.Errorf("%q weight %v: %w", d.ID, d.Weight, ErrInvalidWeight)
		}
		if d.Tier < TierT1 || d.Tier > TierCurse {
			return nil, fmt.Errorf("%q: %w", d.ID, ErrInvalidTier)
		}
		if err := d.Effect.validate(); err != nil {
			return nil, fmt.Errorf("%q: %w", d.ID, err)
		}
		// Effects are stored by value so callers cannot mutate the catalog through their slice
		d.Effect = append(Effect(nil), d.Effect...)
		c.index[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c, nil
}

// Lookup resolves an id
func (c *Catalog) Lookup(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// Len returns the number of definitions
func (c *Catalog) Len() int {
	return len(c.defs)
}

// All returns a copy of every definition in definition order
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	for i, d := range c.defs {
		d.Effect = append(Effect(nil), d.Effect...)
		out[i] = d
	}
	return out
}
