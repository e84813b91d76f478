package gamedata

import (
	"errors"
	"math/rand"
)

// ErrNoMobs is returned when a registry would be built from an empty list.
var ErrNoMobs = errors.New("no mobs loaded from mobs.json")

// MobRegistry holds loaded monster definitions and provides spawning utilities.
type MobRegistry struct {
	mobs        []MobDef
	totalWeight int
}

// NewMobRegistry creates a registry from loaded monster definitions.
func NewMobRegistry(mobs []MobDef) *MobRegistry {
	totalWeight := 0
	for _, m := range mobs {
		totalWeight += max(m.SpawnWeight, 0)
	}
	return &MobRegistry{
		mobs:        mobs,
		totalWeight: totalWeight,
	}
}

// LoadMobRegistry loads and creates a registry from the embedded mobs.json.
func LoadMobRegistry() (*MobRegistry, error) {
	mobs, err := LoadMobs()
	if err != nil {
		return nil, err
	}
	if len(mobs) == 0 {
		return nil, ErrNoMobs
	}
	return NewMobRegistry(mobs), nil
}

// SpawnRandom selects a random monster definition using weighted probability.
// It returns nil if the registry has no spawnable monsters.
func (r *MobRegistry) SpawnRandom(rng *rand.Rand) *MobDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.mobs {
		cumulative += max(r.mobs[i].SpawnWeight, 0)
		if roll < cumulative {
			return &r.mobs[i]
		}
	}
	return nil
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MobRegistry) GetByID(id string) *MobDef {
	for i := range r.mobs {
		if r.mobs[i].ID == id {
			return &r.mobs[i]
		}
	}
	return nil
}

// All returns all monster definitions.
func (r *MobRegistry) All() []MobDef {
	return r.mobs
}

// Count returns the number of monster types in the registry.
func (r *MobRegistry) Count() int {
	return len(r.mobs)
}
