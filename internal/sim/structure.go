package sim

import (
	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
)

// Structure is a static world object: megastructures, crystal formations and
// debris. Structures never move and are never removed; a depleted structure
// stays in the world as a wreck that no longer interacts.
type Structure struct {
	ID         int
	Kind       catalog.StructureKind
	Spec       catalog.StructureSpec
	Pos        core.Vec2
	Radius     float64
	Mass       float64
	Health     float64
	MaxHealth  float64
	Discovered bool
}

// Depleted reports whether the structure has no health left.
func (s *Structure) Depleted() bool {
	return s.Health <= 0
}

// damage subtracts amount and reports whether this hit depleted it.
func (s *Structure) damage(amount float64) bool {
	if s.Depleted() {
		return false
	}
	s.Health -= amount
	if s.Health <= 0 {
		s.Health = 0
		return true
	}
	return false
}

// Megastructure reports whether the structure is one of the large kinds.
func (s *Structure) Megastructure() bool {
	for _, k := range catalog.Megastructures {
		if s.Kind == k {
			return true
		}
	}
	return false
}

func (w *World) addStructure(kind catalog.StructureKind, pos core.Vec2) *Structure {
	spec := catalog.Structure(kind)
	w.nextID++
	st := &Structure{
		ID:        w.nextID,
		Kind:      kind,
		Spec:      spec,
		Pos:       pos,
		Radius:    spec.Radius,
		Mass:      spec.Mass,
		Health:    spec.Health,
		MaxHealth: spec.Health,
	}
	w.structures = append(w.structures, st)
	return st
}

func (w *World) structureByID(id int) *Structure {
	for _, st := range w.structures {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (w *World) enemyByID(id int) *Enemy {
	for _, e := range w.enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
