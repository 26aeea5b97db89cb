package catalog

import "github.com/jakobmina/quasar-pro/internal/core"

// EnemyKind is the archetype tag of a hostile ship.
type EnemyKind string

const (
	EnemyScout       EnemyKind = "SCOUT"
	EnemyInterceptor EnemyKind = "INTERCEPTOR"
	EnemyKamikaze    EnemyKind = "KAMIKAZE"
	EnemyMothership  EnemyKind = "MOTHERSHIP"
)

// EnemySpec is the stat line of an enemy archetype.
type EnemySpec struct {
	Kind   EnemyKind
	Speed  float64
	Health float64
	Score  int
	Radius float64
	Color  string
	Term   core.Color
	Glyph  rune
}

var enemies = map[EnemyKind]EnemySpec{
	EnemyScout:       {EnemyScout, 3.5, 1, 250, 10, "#94a3b8", core.ColorGray, 'v'},
	EnemyInterceptor: {EnemyInterceptor, 5.0, 3, 800, 15, "#38bdf8", core.ColorBrightCyan, 'W'},
	EnemyKamikaze:    {EnemyKamikaze, 8.5, 1, 1200, 12, "#facc15", core.ColorBrightYellow, '!'},
	EnemyMothership:  {EnemyMothership, 0.8, 80, 10000, 65, "#f43f5e", core.ColorBrightRed, 'M'},
}

// Enemy returns the stat line of kind; unknown kinds get the scout line.
func Enemy(kind EnemyKind) EnemySpec {
	if s, ok := enemies[kind]; ok {
		return s
	}
	return enemies[EnemyScout]
}

// StructureKind tags static world objects.
type StructureKind string

const (
	StructureStation   StructureKind = "STATION"
	StructureDerelict  StructureKind = "DERELICT"
	StructureCrystal   StructureKind = "CRYSTAL"
	StructureFormation StructureKind = "FORMATION"
	StructureDebris    StructureKind = "DEBRIS"
)

// StructureSpec is the stat line of a structure kind.
type StructureSpec struct {
	Kind   StructureKind
	Mass   float64
	Radius float64
	Health float64
	Color  string
	Term   core.Color
	Glyph  rune
}

var structures = map[StructureKind]StructureSpec{
	StructureStation:   {StructureStation, 2000, 600, 1000, "#0ea5e9", core.ColorBlue, 'S'},
	StructureDerelict:  {StructureDerelict, 1500, 400, 1000, "#ef4444", core.ColorRed, 'D'},
	StructureCrystal:   {StructureCrystal, 1000, 300, 1000, "#22c55e", core.ColorGreen, 'C'},
	StructureFormation: {StructureFormation, 0, 80, 100, "#a855f7", core.ColorMagenta, '◆'},
	StructureDebris:    {StructureDebris, 0, 30, 20, "#64748b", core.ColorGray, '▪'},
}

// Megastructures lists the structure kinds scattered on the open-world ring.
var Megastructures = []StructureKind{StructureStation, StructureDerelict, StructureCrystal}

// Structure returns the stat line of kind; unknown kinds get debris.
func Structure(kind StructureKind) StructureSpec {
	if s, ok := structures[kind]; ok {
		return s
	}
	return structures[StructureDebris]
}
