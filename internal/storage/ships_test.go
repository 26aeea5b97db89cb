package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/jakobmina/quasar-pro/internal/catalog"
)

func TestShipsSeededWithDefaults(t *testing.T) {
	store := openTestStore(t)

	ships, err := store.Ships()
	if err != nil {
		t.Fatalf("Ships() failed: %v", err)
	}
	defaults := catalog.DefaultShips()
	if len(ships) != len(defaults) {
		t.Fatalf("Ships() returned %d, expected %d", len(ships), len(defaults))
	}
	for i, want := range defaults {
		if ships[i] != want {
			t.Errorf("ships[%d] = %+v, expected %+v", i, ships[i], want)
		}
	}
}

func TestSaveCustomShip(t *testing.T) {
	store := openTestStore(t)

	custom := catalog.ShipConfig{
		Model:       catalog.HullVortex,
		Name:        "Nightjar",
		Color:       "#123456",
		Thrust:      0.45,
		Defense:     1.1,
		AttackPower: 1.4,
	}
	id, err := store.SaveShip(custom)
	if err != nil {
		t.Fatalf("SaveShip() failed: %v", err)
	}
	if !strings.HasPrefix(id, "custom_") {
		t.Errorf("SaveShip() id = %q, expected custom_ prefix", id)
	}

	got, err := store.Ship(id)
	if err != nil {
		t.Fatalf("Ship() failed: %v", err)
	}
	if got.Name != "Nightjar" || !got.IsCustom || got.Model != catalog.HullVortex {
		t.Errorf("Ship() = %+v, expected custom Nightjar vortex", got)
	}

	ships, _ := store.Ships()
	if last := ships[len(ships)-1]; last.ID != id {
		t.Errorf("custom ships should list after defaults, last = %q", last.ID)
	}

	got.Thrust = 0.5
	if _, err := store.SaveShip(got); err != nil {
		t.Fatalf("SaveShip() update failed: %v", err)
	}
	updated, _ := store.Ship(id)
	if updated.Thrust != 0.5 {
		t.Errorf("updated Thrust = %v, expected 0.5", updated.Thrust)
	}
}

func TestSaveShipRejectsUnknownModel(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveShip(catalog.ShipConfig{Model: "ZEPPELIN", Name: "x"}); err == nil {
		t.Error("SaveShip() with unknown model should fail")
	}
}

func TestDeleteShip(t *testing.T) {
	store := openTestStore(t)

	if err := store.DeleteShip("default_TITAN"); !errors.Is(err, ErrDefaultShip) {
		t.Errorf("DeleteShip(default) = %v, expected ErrDefaultShip", err)
	}
	if err := store.DeleteShip("nope"); !errors.Is(err, ErrShipNotFound) {
		t.Errorf("DeleteShip(missing) = %v, expected ErrShipNotFound", err)
	}

	id, err := store.SaveShip(catalog.ShipConfig{Model: catalog.HullTank, Name: "Brick", Thrust: 0.3, Defense: 1})
	if err != nil {
		t.Fatalf("SaveShip() failed: %v", err)
	}
	if err := store.DeleteShip(id); err != nil {
		t.Fatalf("DeleteShip() failed: %v", err)
	}
	if _, err := store.Ship(id); !errors.Is(err, ErrShipNotFound) {
		t.Errorf("Ship() after delete = %v, expected ErrShipNotFound", err)
	}
}
