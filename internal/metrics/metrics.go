// Package metrics computes conserved quantities over simulation
// frames. Metrics observe the iteration pathway, so collecting them
// never perturbs the system under study.
package metrics

import (
	"math"

	"github.com/san-kum/orbital/internal/gravity"
)

type Metric interface {
	Name() string
	Observe(f gravity.Frame)
	Value() float64
	Reset()
}

// Energy tracks the total mechanical energy (kinetic + pairwise
// gravitational potential) of the latest observed frame.
type Energy struct {
	masses []float64
	gEff   float64
	value  float64
}

func NewEnergy(sys *gravity.System) *Energy {
	return &Energy{masses: sys.Masses(), gEff: sys.G()}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(f gravity.Frame) {
	e.value = Total(f.Positions, f.Velocities, e.masses, e.gEff)
}

func (e *Energy) Value() float64 { return e.value }
func (e *Energy) Reset()         { e.value = 0 }

// Total computes kinetic plus pairwise potential energy.
func Total(pos, vel []gravity.Vec2, masses []float64, gEff float64) float64 {
	ke := 0.0
	pe := 0.0
	for i := range pos {
		ke += 0.5 * masses[i] * vel[i].NormSq()
		for j := i + 1; j < len(pos); j++ {
			r := pos[j].Sub(pos[i]).Norm()
			if r > 0 {
				pe -= gEff * masses[i] * masses[j] / r
			}
		}
	}
	return ke + pe
}

// EnergyDrift tracks the maximum relative deviation of total energy
// from its value at the first observed frame.
type EnergyDrift struct {
	masses  []float64
	gEff    float64
	initial float64
	max     float64
	samples int
}

func NewEnergyDrift(sys *gravity.System) *EnergyDrift {
	return &EnergyDrift{masses: sys.Masses(), gEff: sys.G()}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(f gravity.Frame) {
	energy := Total(f.Positions, f.Velocities, e.masses, e.gEff)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++
	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.max = math.Max(e.max, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.max }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.max = 0
	e.samples = 0
}

// Momentum tracks the magnitude of total linear momentum of the latest
// observed frame.
type Momentum struct {
	masses []float64
	value  float64
}

func NewMomentum(sys *gravity.System) *Momentum {
	return &Momentum{masses: sys.Masses()}
}

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(f gravity.Frame) {
	var p gravity.Vec2
	for i, v := range f.Velocities {
		p = p.Add(v.Scale(m.masses[i]))
	}
	m.value = p.Norm()
}

func (m *Momentum) Value() float64 { return m.value }
func (m *Momentum) Reset()         { m.value = 0 }

// AngularMomentum tracks the total angular momentum about the origin
// of the latest observed frame.
type AngularMomentum struct {
	masses []float64
	value  float64
}

func NewAngularMomentum(sys *gravity.System) *AngularMomentum {
	return &AngularMomentum{masses: sys.Masses()}
}

func (a *AngularMomentum) Name() string { return "angular_momentum" }

func (a *AngularMomentum) Observe(f gravity.Frame) {
	L := 0.0
	for i := range f.Positions {
		L += a.masses[i] * (f.Positions[i].X*f.Velocities[i].Y - f.Positions[i].Y*f.Velocities[i].X)
	}
	a.value = L
}

func (a *AngularMomentum) Value() float64 { return a.value }
func (a *AngularMomentum) Reset()         { a.value = 0 }

// Default returns the standard metric set for a system.
func Default(sys *gravity.System) []Metric {
	return []Metric{
		NewEnergy(sys),
		NewEnergyDrift(sys),
		NewMomentum(sys),
		NewAngularMomentum(sys),
	}
}
