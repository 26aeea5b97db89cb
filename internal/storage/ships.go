package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jakobmina/quasar-pro/internal/catalog"
)

// ErrShipNotFound is returned when a ship id is not in the catalog.
var ErrShipNotFound = errors.New("storage: ship not found")

// ErrDefaultShip is returned when trying to delete a built-in hull.
var ErrDefaultShip = errors.New("storage: default ships cannot be deleted")

// seedShips inserts the built-in hulls when the catalog is empty.
func (s *Store) seedShips() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM ships").Scan(&count); err != nil {
		return fmt.Errorf("storage: cannot count ships: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot seed ships: %w", err)
	}
	for _, ship := range catalog.DefaultShips() {
		if err := insertShip(tx, ship); err != nil {
			tx.Rollback() //nolint:errcheck
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot seed ships: %w", err)
	}
	return nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertShip(db execer, ship catalog.ShipConfig) error {
	_, err := db.Exec(
		`INSERT INTO ships (id, model, name, color, thrust, health_bonus, defense, attack_power, is_custom)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   model = excluded.model, name = excluded.name, color = excluded.color,
		   thrust = excluded.thrust, health_bonus = excluded.health_bonus,
		   defense = excluded.defense, attack_power = excluded.attack_power,
		   is_custom = excluded.is_custom`,
		ship.ID, string(ship.Model), ship.Name, ship.Color, ship.Thrust,
		ship.HealthBonus, ship.Defense, ship.AttackPower, ship.IsCustom,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save ship %s: %w", ship.ID, err)
	}
	return nil
}

// NewShipID returns a fresh id for a custom ship.
func NewShipID() string {
	return "custom_" + uuid.NewString()
}

// SaveShip inserts or replaces a ship. Custom ships without an id get one.
// Returns the stored id.
func (s *Store) SaveShip(ship catalog.ShipConfig) (string, error) {
	if ship.ID == "" {
		ship.ID = NewShipID()
		ship.IsCustom = true
	}
	if _, err := catalog.ParseModel(string(ship.Model)); err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}
	if err := insertShip(s.db, ship); err != nil {
		return "", err
	}
	return ship.ID, nil
}

// Ships returns the whole catalog: built-in hulls first, then custom ships by name.
func (s *Store) Ships() ([]catalog.ShipConfig, error) {
	rows, err := s.db.Query(
		`SELECT id, model, name, color, thrust, health_bonus, defense, attack_power, is_custom
		 FROM ships
		 ORDER BY is_custom ASC, rowid ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ships: %w", err)
	}
	defer rows.Close()

	var ships []catalog.ShipConfig
	for rows.Next() {
		ship, err := scanShip(rows)
		if err != nil {
			return nil, err
		}
		ships = append(ships, ship)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ships, nil
}

// Ship returns a single ship by id.
func (s *Store) Ship(id string) (catalog.ShipConfig, error) {
	row := s.db.QueryRow(
		`SELECT id, model, name, color, thrust, health_bonus, defense, attack_power, is_custom
		 FROM ships WHERE id = ?`,
		id,
	)
	ship, err := scanShip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.ShipConfig{}, ErrShipNotFound
	}
	return ship, err
}

// DeleteShip removes a custom ship.
func (s *Store) DeleteShip(id string) error {
	ship, err := s.Ship(id)
	if err != nil {
		return err
	}
	if !ship.IsCustom {
		return ErrDefaultShip
	}
	if _, err := s.db.Exec("DELETE FROM ships WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete ship: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanShip(row scanner) (catalog.ShipConfig, error) {
	var ship catalog.ShipConfig
	var model string
	err := row.Scan(&ship.ID, &model, &ship.Name, &ship.Color, &ship.Thrust,
		&ship.HealthBonus, &ship.Defense, &ship.AttackPower, &ship.IsCustom)
	if errors.Is(err, sql.ErrNoRows) {
		return ship, err
	}
	if err != nil {
		return ship, fmt.Errorf("storage: cannot scan ship: %w", err)
	}
	ship.Model = catalog.Model(model)
	return ship, nil
}
