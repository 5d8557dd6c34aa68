package scenario

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/orbital/internal/gravity"
)

// Range is an inclusive lower/upper bound pair.
type Range struct {
	Min, Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Randomizer generates random initial conditions within configured
// ranges. The same seed always produces the same scenario.
type Randomizer struct {
	MinBodies int
	MaxBodies int
	PositionX Range
	PositionY Range
	VelocityX Range
	VelocityY Range
	Mass      Range

	rng *rand.Rand
}

func NewRandomizer(seed int64) *Randomizer {
	return &Randomizer{
		MinBodies: 2,
		MaxBodies: 10,
		PositionX: Range{-200, 200},
		PositionY: Range{-200, 200},
		VelocityX: Range{-100, 100},
		VelocityY: Range{-100, 100},
		Mass:      Range{1e10, 1e17},
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Generate produces canonical initial-condition data, one body per
// generated label ("body0", "body1", ...).
func (r *Randomizer) Generate() map[string]gravity.BodyData {
	count := r.MinBodies
	if r.MaxBodies > r.MinBodies {
		count += r.rng.Intn(r.MaxBodies - r.MinBodies + 1)
	}

	data := make(map[string]gravity.BodyData, count)
	for i := 0; i < count; i++ {
		data[fmt.Sprintf("body%d", i)] = gravity.BodyData{
			Position: []float64{r.PositionX.sample(r.rng), r.PositionY.sample(r.rng)},
			Velocity: []float64{r.VelocityX.sample(r.rng), r.VelocityY.sample(r.rng)},
			Mass:     r.Mass.sample(r.rng),
		}
	}
	return data
}

// System is a shorthand for generating data and constructing an engine
// from it in one call.
func (r *Randomizer) System(cfg gravity.Config) (*gravity.System, error) {
	return gravity.New(r.Generate(), cfg)
}
