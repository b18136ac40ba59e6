package component

import (
	"fmt"

	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/levels"
)

// Pickup is a collectible of the round's target colour.
type Pickup struct {
	ID        string
	Color     levels.Color
	Position  common.Vec3
	Collected bool
}

func PickupID(c levels.Color, index int) string {
	return fmt.Sprintf("%s-%d", c, index)
}

// Registry holds every pickup of one round in spawn order. It is built once
// per round and replaced, never patched, on a new round or reset.
type Registry struct {
	color     levels.Color
	pickups   []Pickup
	byID      map[string]int
	collected int
}

func NewRegistry(c levels.Color, spawns []common.Vec3) *Registry {
	r := &Registry{
		color:   c,
		pickups: make([]Pickup, len(spawns)),
		byID:    make(map[string]int, len(spawns)),
	}
	for i, p := range spawns {
		id := PickupID(c, i)
		r.pickups[i] = Pickup{ID: id, Color: c, Position: p}
		r.byID[id] = i
	}
	return r
}

func (r *Registry) Color() levels.Color {
	if r == nil {
		return 0
	}
	return r.color
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.pickups)
}

// CollectedCount is kept in step with Collect, the only writer.
func (r *Registry) CollectedCount() int {
	if r == nil {
		return 0
	}
	return r.collected
}

func (r *Registry) Get(id string) (Pickup, bool) {
	if r == nil {
		return Pickup{}, false
	}
	i, ok := r.byID[id]
	if !ok {
		return Pickup{}, false
	}
	return r.pickups[i], true
}

// Pickups returns a copy of every pickup in spawn order.
func (r *Registry) Pickups() []Pickup {
	if r == nil {
		return nil
	}
	return append([]Pickup(nil), r.pickups...)
}

// Collect marks id collected. It reports false for unknown or already
// collected ids.
func (r *Registry) Collect(id string) bool {
	if r == nil {
		return false
	}
	i, ok := r.byID[id]
	if !ok || r.pickups[i].Collected {
		return false
	}
	r.pickups[i].Collected = true
	r.collected++
	return true
}

// NearestUncollected returns the closest uncollected pickup whose planar
// distance to p is strictly below maxDistance. Ties go to the earlier spawn.
func (r *Registry) NearestUncollected(p common.Vec3, maxDistance float64) (string, bool) {
	if r == nil {
		return "", false
	}
	best := -1
	bestDist := maxDistance
	for i, pk := range r.pickups {
		if pk.Collected {
			continue
		}
		if d := p.PlanarDistance(pk.Position); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return "", false
	}
	return r.pickups[best].ID, true
}
