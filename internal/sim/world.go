// Package sim is the real-time simulation core: the player ship, its AI
// companion, enemies, projectiles, structures and wormholes, advanced once
// per frame on a single goroutine.
//
// The world owns only entity positions. Run-level state (score, lives,
// integrity, mission) lives in a gamestate.Sink; Step reads a snapshot of it
// at frame start and submits one merged Update at frame end.
package sim

import (
	"math"
	"math/rand"

	"github.com/jakobmina/quasar-pro/internal/audio"
	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/config"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
	"github.com/jakobmina/quasar-pro/internal/pool"
)

// Mode selects the world layout and rules.
type Mode int

const (
	// ModeStory is the combat run: spawning, missions, hubs.
	ModeStory Mode = iota
	// ModeOpenWorld is the exploration sandbox: gravity, fog of war, no enemies.
	ModeOpenWorld
)

// String returns the mode id.
func (m Mode) String() string {
	if m == ModeOpenWorld {
		return "openworld"
	}
	return "story"
}

// Options configures a new World.
type Options struct {
	Mode       Mode
	Config     config.SimConfig
	Hull       catalog.ShipConfig
	Seed       int64
	TickRate   int
	Sink       gamestate.Sink
	Cues       audio.Cues
	Difficulty *config.DifficultyManager
}

// World is one running simulation.
type World struct {
	cfg        config.SimConfig
	mode       Mode
	size       float64
	rng        *rand.Rand
	sink       gamestate.Sink
	cues       audio.Cues
	difficulty *config.DifficultyManager
	msPerTick  float64

	tick int
	now  float64 // sim clock ms

	ship       Ship
	companion  Companion
	camera     Camera
	beam       Beam
	enemies    []*Enemy
	structures []*Structure
	blackholes []*Blackhole
	hubs       []*GoldenHub
	fog        *Fog

	lasers    *pool.Pool[Laser]
	particles *pool.Pool[Particle]
	shards    *pool.Pool[Shard]
	waves     *pool.Pool[Wave]

	nextID           int
	spawnSlot        int
	lastMissionCheck float64
	flash            int
	thrusting        bool
	thrustLevel      float64
	publishedTemp    float64
	boost            float64
	boostFrames      int

	frame   gamestate.State // snapshot taken at frame start
	pending gamestate.Update
}

// NewWorld builds and populates a world. Missing collaborators get
// defaults: a fresh Holder, silent cues, the config's difficulty curve.
func NewWorld(opts Options) *World {
	if opts.Sink == nil {
		opts.Sink = gamestate.NewHolder()
	}
	if opts.Cues == nil {
		opts.Cues = audio.Nop{}
	}
	if opts.Difficulty == nil {
		opts.Difficulty = config.NewDifficultyManager(opts.Config.Difficulty)
	}
	if opts.Hull.Model == "" {
		opts.Hull, _ = catalog.Hull(catalog.HullInterceptor)
	}
	rt := core.RuntimeConfig{TickRate: opts.TickRate}

	w := &World{
		cfg:        opts.Config,
		mode:       opts.Mode,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		sink:       opts.Sink,
		cues:       opts.Cues,
		difficulty: opts.Difficulty,
		msPerTick:  rt.MillisPerTick(),
		lasers:     pool.New[Laser](64, 0),
		particles:  pool.New[Particle](512, opts.Config.Combat.ParticleLimit),
		shards:     pool.New[Shard](16, 0),
		waves:      pool.New[Wave](2, 0),
	}

	switch opts.Mode {
	case ModeOpenWorld:
		w.size = opts.Config.World.OpenWorldSize
		w.fog = NewFog(opts.Config.World.ChunkSize)
		center := core.V(w.size/2, w.size/2)
		w.ship = newShip(opts.Hull, center, 0)
		w.populateOpenWorld(center)
	default:
		w.size = opts.Config.World.StorySize
		start := core.V(opts.Config.World.StartX, opts.Config.World.StartY)
		w.ship = newShip(opts.Hull, start, math.Pi/2)
		w.populateStory(start)
	}

	w.companion = Companion{Pos: w.ship.Pos, Mode: CompanionFollow}
	w.camera = Camera{Pos: w.ship.Pos, Zoom: opts.Config.Camera.Zoom}
	if w.fog != nil {
		w.fog.Explore(w.ship.Pos)
	}
	return w
}

func (w *World) randomPoint(margin float64) core.Vec2 {
	span := w.size - 2*margin
	return core.V(margin+w.rng.Float64()*span, margin+w.rng.Float64()*span)
}

// wormholePoint picks a point inside the margin that keeps clear of avoid.
func (w *World) wormholePoint(margin float64, avoid core.Vec2, clearance float64) core.Vec2 {
	p := w.randomPoint(margin)
	for i := 0; i < 16 && p.Dist(avoid) < clearance; i++ {
		p = w.randomPoint(margin)
	}
	return p
}

func (w *World) populateStory(start core.Vec2) {
	wc := w.cfg.World
	kinds := catalog.Megastructures
	for i := 0; i < wc.StoryStructures; i++ {
		w.addStructure(kinds[w.rng.Intn(len(kinds))], w.randomPoint(0))
	}
	for i := 0; i < wc.Formations; i++ {
		w.addStructure(catalog.StructureFormation, w.randomPoint(0))
	}
	for i := 0; i < wc.Debris; i++ {
		w.addStructure(catalog.StructureDebris, w.randomPoint(0))
	}

	hz := w.cfg.Hazards
	margin := math.Min(hz.Margin, w.size/10)
	clearance := hz.BlackholeRadius * hz.CaptureFactor
	for i := 0; i < hz.StoryPairs; i++ {
		a := w.wormholePoint(margin, start, clearance)
		b := w.wormholePoint(margin, start, clearance)
		w.addBlackholePair(a, b)
	}
}

func (w *World) populateOpenWorld(center core.Vec2) {
	wc := w.cfg.World
	kinds := catalog.Megastructures
	for i := 0; i < wc.Megastructures; i++ {
		ang := 2 * math.Pi / float64(wc.Megastructures) * float64(i)
		dist := wc.RingMin + w.rng.Float64()*(wc.RingMax-wc.RingMin)
		pos := center.Add(core.V(math.Cos(ang), math.Sin(ang)).Scale(dist))
		w.addStructure(kinds[w.rng.Intn(len(kinds))], pos)
	}

	hz := w.cfg.Hazards
	clearance := hz.BlackholeRadius * hz.CaptureFactor
	for i := 0; i < hz.OpenWorldPairs; i++ {
		a := w.wormholePoint(hz.Margin, center, clearance)
		b := w.wormholePoint(hz.Margin, center, clearance)
		w.addBlackholePair(a, b)
	}
}

// Mode returns the world mode.
func (w *World) Mode() Mode { return w.mode }

// Config returns the tunables the world was built with.
func (w *World) Config() config.SimConfig { return w.cfg }

// Size returns the side of the square world.
func (w *World) Size() float64 { return w.size }

// Tick returns the number of frames advanced.
func (w *World) Tick() int { return w.tick }

// Now returns the sim clock in milliseconds.
func (w *World) Now() float64 { return w.now }

// Ship returns the player ship.
func (w *World) Ship() *Ship { return &w.ship }

// Companion returns the wingman.
func (w *World) Companion() *Companion { return &w.companion }

// Camera returns the camera.
func (w *World) Camera() *Camera { return &w.camera }

// Beam returns the ray weapon state.
func (w *World) Beam() Beam { return w.beam }

// Enemies returns the live enemies.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Structures returns every structure, depleted ones included.
func (w *World) Structures() []*Structure { return w.structures }

// Blackholes returns both ends of every wormhole pair.
func (w *World) Blackholes() []*Blackhole { return w.blackholes }

// Hubs returns the spawned golden hubs.
func (w *World) Hubs() []*GoldenHub { return w.hubs }

// Fog returns the fog of war, or nil outside the open world.
func (w *World) Fog() *Fog { return w.fog }

// Flash returns the frames of hit flash left.
func (w *World) Flash() int { return w.flash }

// Lasers returns the live projectiles.
func (w *World) Lasers() []*Laser { return w.lasers.Active() }

// Particles returns the live particles.
func (w *World) Particles() []*Particle { return w.particles.Active() }

// Shards returns the uncollected shards.
func (w *World) Shards() []*Shard { return w.shards.Active() }

// Waves returns the live purge waves.
func (w *World) Waves() []*Wave { return w.waves.Active() }

// Discovered counts discovered megastructures.
func (w *World) Discovered() (found, total int) {
	for _, st := range w.structures {
		if !st.Megastructure() {
			continue
		}
		total++
		if st.Discovered {
			found++
		}
	}
	return found, total
}

func (w *World) emit(u gamestate.Update) {
	w.pending.Merge(u)
}

// flush submits the frame's merged update.
func (w *World) flush() {
	if w.pending.Empty() {
		return
	}
	w.sink.Apply(w.pending)
	w.pending = gamestate.Update{}
}

func scoreUpdate(score int, charge float64) gamestate.Update {
	return gamestate.Update{Score: score, SpecialCharge: charge}
}

// burst spawns amount particles at pos. Large bursts also trigger an
// explosion cue.
func (w *World) burst(pos core.Vec2, color string, term core.Color, amount int, atomize, data bool) {
	for i := 0; i < amount; i++ {
		p := w.particles.Acquire(func(p *Particle) {
			p.spawn(w.rng, pos, color, term, atomize, data)
		})
		if p == nil {
			break
		}
	}
	if amount >= 30 {
		w.cues.PlayExplosion(amount > 45)
	}
}

// Silence stops the continuous thrust cue. The frame controller calls it
// whenever the run is not advancing.
func (w *World) Silence() {
	if w.thrusting {
		w.cues.SetThrust(false, 0)
		w.thrusting = false
		w.thrustLevel = 0
	}
}

func (w *World) setThrust(active bool, intensity float64) {
	if active == w.thrusting && math.Abs(intensity-w.thrustLevel) < 0.05 {
		return
	}
	w.thrusting = active
	w.thrustLevel = intensity
	w.cues.SetThrust(active, intensity)
}

// Boost multiplies thrust by factor for the given number of frames.
func (w *World) Boost(factor float64, frames int) {
	w.boost = factor
	w.boostFrames = frames
}

// Boosted reports whether a thrust boost is running.
func (w *World) Boosted() bool {
	return w.boostFrames > 0
}

// ClearField destroys every live enemy within radius of the ship, paying
// out their score. The rewards are submitted with the next frame.
func (w *World) ClearField(radius float64) int {
	n := 0
	for _, e := range w.enemies {
		if e.Dead() || e.Pos.Dist(w.ship.Pos) >= radius {
			continue
		}
		w.destroyEnemy(e, 0, w.cfg.Combat.DeathBurst, "#ffffff", core.ColorBrightWhite, false)
		n++
	}
	if n > 0 {
		w.camera.kick(w.cfg.Combat.ContactShake)
	}
	return n
}
