package gravity

import "context"

// Frame is a read-only snapshot of the working state after one kernel
// cycle of the iteration pathway.
type Frame struct {
	Step       int
	Time       float64
	Labels     []string
	Positions  []Vec2
	Velocities []Vec2
	Trails     [][]Vec2
	Dt         float64
	TimeUnits  string
	SpaceUnits string
}

// Frames iterates the system forward without touching its persistent
// state. The iterator owns a deep working copy captured when it was
// created, so the sequence is restartable: calling Frames again on the
// same System replays the identical sequence.
//
// Usage follows the scanner pattern:
//
//	it := sys.Frames()
//	for it.Next() {
//	    frame := it.Current()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
type Frames struct {
	work   *bodies
	trail  *History
	labels []string
	gEff   float64
	dt     float64
	limit  int
	track  bool
	cfg    Config

	index int
	cur   Frame
	err   error
}

// Frames starts a fresh iteration from the system's current persistent
// state. Multiple iterations may run at the same time; each owns its
// working copy and trail.
func (s *System) Frames() *Frames {
	return &Frames{
		work:   s.bodies.clone(),
		trail:  newHistory(s.bodies.count()),
		labels: s.bodies.labels,
		gEff:   s.gEff,
		dt:     s.dt,
		limit:  s.limit,
		track:  !s.noHist,
		cfg:    s.cfg,
	}
}

// Next advances the working copy by one full kernel cycle. It returns
// false when the limit is reached or a cycle fails; Err distinguishes
// the two.
func (it *Frames) Next() bool {
	if it.err != nil || it.index >= it.limit {
		return false
	}

	if err := accelerate(it.work, it.gEff, it.index); err != nil {
		it.err = err
		return false
	}
	integrateVelocities(it.work, it.dt)
	integratePositions(it.work, it.dt)
	it.index++

	var trails [][]Vec2
	if it.track {
		it.trail.Record(it.work.pos)
		trails = it.trail.Tracks()
	}

	it.cur = Frame{
		Step:       it.index,
		Time:       float64(it.index) * it.dt,
		Labels:     it.labels,
		Positions:  cloneVecs(it.work.pos),
		Velocities: cloneVecs(it.work.vel),
		Trails:     trails,
		Dt:         it.dt,
		TimeUnits:  it.cfg.TimeUnits,
		SpaceUnits: it.cfg.SpaceUnits,
	}
	return true
}

// Current returns the frame produced by the last successful Next.
func (it *Frames) Current() Frame { return it.cur }

// Err returns the error that stopped iteration, if any.
func (it *Frames) Err() error { return it.err }

// Result collects a fully drained iteration.
type Result struct {
	Frames     []Frame
	Times      []float64
	StepsTaken int
	Metrics    map[string]float64
}

// Run drains the iteration pathway into a Result. Like Frames it never
// mutates the system's persistent state. The context is only checked
// between cycles.
func (s *System) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		Frames:  make([]Frame, 0, s.limit),
		Times:   make([]float64, 0, s.limit),
		Metrics: make(map[string]float64),
	}

	it := s.Frames()
	for it.Next() {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}
		f := it.Current()
		result.Frames = append(result.Frames, f)
		result.Times = append(result.Times, f.Time)
		result.StepsTaken++
	}
	if err := it.Err(); err != nil {
		return result, err
	}
	return result, nil
}
