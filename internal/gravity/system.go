package gravity

import "fmt"

const (
	DefaultInterval = 1.0
	DefaultLimit    = 100

	// minSeparation is the floor below which two bodies are treated as
	// coincident and the pairwise force is undefined.
	minSeparation = 1e-12
)

// Config holds the engine construction parameters. Zero values for the
// interval and unit names fall back to the SI defaults; Limit and
// NoHistory are taken as given.
type Config struct {
	BaseInterval float64
	TimeUnits    string
	SpaceUnits   string
	MassUnits    string
	Limit        int
	NoHistory    bool
}

func DefaultConfig() Config {
	return Config{
		BaseInterval: DefaultInterval,
		TimeUnits:    "secs",
		SpaceUnits:   "m",
		MassUnits:    "kg",
		Limit:        DefaultLimit,
	}
}

// System simulates a fixed set of point masses under mutual Newtonian
// gravity with semi-implicit Euler time discretization. Persistent
// state changes only through the explicit update operations; the
// Frames iteration pathway works on an independent copy.
type System struct {
	bodies    *bodies
	dt        float64
	gEff      float64
	limit     int
	stepCount int
	noHist    bool
	hist      *History
	cfg       Config
}

// New builds a System from canonical initial-condition data. The data
// map is not retained.
func New(data map[string]BodyData, cfg Config) (*System, error) {
	if cfg.BaseInterval == 0 {
		cfg.BaseInterval = DefaultInterval
	}
	if cfg.TimeUnits == "" {
		cfg.TimeUnits = "secs"
	}
	if cfg.SpaceUnits == "" {
		cfg.SpaceUnits = "m"
	}
	if cfg.MassUnits == "" {
		cfg.MassUnits = "kg"
	}

	if cfg.BaseInterval < 0 {
		return nil, ConfigurationError{
			Param:   "base_interval",
			Value:   fmt.Sprintf("%g", cfg.BaseInterval),
			Message: "must be positive",
		}
	}
	if cfg.Limit < 0 {
		return nil, ConfigurationError{
			Param:   "limit",
			Value:   fmt.Sprintf("%d", cfg.Limit),
			Message: "must not be negative",
		}
	}

	gEff, err := ScaleG(cfg.TimeUnits, cfg.SpaceUnits, cfg.MassUnits)
	if err != nil {
		return nil, err
	}

	b, err := newBodies(data)
	if err != nil {
		return nil, err
	}

	return &System{
		bodies: b,
		dt:     cfg.BaseInterval,
		gEff:   gEff,
		limit:  cfg.Limit,
		noHist: cfg.NoHistory,
		hist:   newHistory(b.count()),
		cfg:    cfg,
	}, nil
}

func (s *System) BodyCount() int  { return s.bodies.count() }
func (s *System) Dt() float64     { return s.dt }
func (s *System) G() float64      { return s.gEff }
func (s *System) Limit() int      { return s.limit }
func (s *System) StepCount() int  { return s.stepCount }
func (s *System) Tracking() bool  { return !s.noHist }
func (s *System) Config() Config  { return s.cfg }
func (s *System) Labels() []string {
	return append([]string(nil), s.bodies.labels...)
}

func (s *System) Positions() []Vec2     { return cloneVecs(s.bodies.pos) }
func (s *System) Velocities() []Vec2    { return cloneVecs(s.bodies.vel) }
func (s *System) Accelerations() []Vec2 { return cloneVecs(s.bodies.acc) }
func (s *System) Masses() []float64 {
	return append([]float64(nil), s.bodies.mass...)
}

// History exposes the persistent trajectory log.
func (s *System) History() *History { return s.hist }

// DisableHistory stops trajectory tracking and clears everything
// recorded so far. The buffer stays empty from then on; tracking
// cannot be re-enabled without constructing a new System.
func (s *System) DisableHistory() {
	s.noHist = true
	s.hist.clear()
}

// UpdateAccelerations recomputes every body's acceleration from the
// current positions. It is one phase of the explicit pathway and does
// not commit a step on its own.
func (s *System) UpdateAccelerations() error {
	return accelerate(s.bodies, s.gEff, s.stepCount)
}

// UpdateVelocities applies v += a*dt for all bodies simultaneously,
// from the acceleration snapshot of the last UpdateAccelerations call.
func (s *System) UpdateVelocities() {
	integrateVelocities(s.bodies, s.dt)
}

// UpdatePositions applies p += v*dt for all bodies simultaneously,
// using the current (post velocity update) velocities.
func (s *System) UpdatePositions() {
	integratePositions(s.bodies, s.dt)
}

// Step runs one full acceleration -> velocity -> position cycle on the
// persistent state and commits it: the step counter increments by one
// and, when tracking is enabled, the new positions are appended to the
// history. The phase methods above may be called individually for
// manual experimentation, but only Step commits.
func (s *System) Step() error {
	if err := s.UpdateAccelerations(); err != nil {
		return err
	}
	s.UpdateVelocities()
	s.UpdatePositions()
	s.stepCount++
	if !s.noHist {
		s.hist.Record(s.bodies.pos)
	}
	return nil
}

// accelerate is the pairwise gravity kernel shared by the explicit and
// iteration pathways. Contributions are accumulated symmetrically over
// i<j pairs.
func accelerate(b *bodies, gEff float64, step int) error {
	n := b.count()
	for i := range b.acc {
		b.acc[i] = Vec2{}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := b.pos[j].Sub(b.pos[i])
			d := r.Norm()
			if d < minSeparation {
				return DegeneracyError{BodyA: b.labels[i], BodyB: b.labels[j], Step: step}
			}
			inv3 := 1.0 / (d * d * d)
			b.acc[i] = b.acc[i].Add(r.Scale(gEff * b.mass[j] * inv3))
			b.acc[j] = b.acc[j].Sub(r.Scale(gEff * b.mass[i] * inv3))
		}
	}
	return nil
}

func integrateVelocities(b *bodies, dt float64) {
	vel := cloneVecs(b.vel)
	for i := range vel {
		vel[i] = vel[i].Add(b.acc[i].Scale(dt))
	}
	b.setVelocities(vel)
}

func integratePositions(b *bodies, dt float64) {
	pos := cloneVecs(b.pos)
	for i := range pos {
		pos[i] = pos[i].Add(b.vel[i].Scale(dt))
	}
	b.setPositions(pos)
}
