package gravity

import (
	"errors"
	"math"
	"testing"
)

func twoBodyData() map[string]BodyData {
	return map[string]BodyData{
		"a": {Position: []float64{-1, 0}, Velocity: []float64{0, 0}, Mass: 1},
		"b": {Position: []float64{1, 0}, Velocity: []float64{0, 0}, Mass: 1},
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		data map[string]BodyData
	}{
		{"empty map", map[string]BodyData{}},
		{"single body", map[string]BodyData{
			"a": {Position: []float64{0, 0}, Velocity: []float64{0, 0}, Mass: 1},
		}},
		{"zero mass", map[string]BodyData{
			"a": {Position: []float64{0, 0}, Velocity: []float64{0, 0}, Mass: 0},
			"b": {Position: []float64{1, 0}, Velocity: []float64{0, 0}, Mass: 1},
		}},
		{"negative mass", map[string]BodyData{
			"a": {Position: []float64{0, 0}, Velocity: []float64{0, 0}, Mass: -5},
			"b": {Position: []float64{1, 0}, Velocity: []float64{0, 0}, Mass: 1},
		}},
		{"short position", map[string]BodyData{
			"a": {Position: []float64{0}, Velocity: []float64{0, 0}, Mass: 1},
			"b": {Position: []float64{1, 0}, Velocity: []float64{0, 0}, Mass: 1},
		}},
		{"long velocity", map[string]BodyData{
			"a": {Position: []float64{0, 0}, Velocity: []float64{0, 0, 0}, Mass: 1},
			"b": {Position: []float64{1, 0}, Velocity: []float64{0, 0}, Mass: 1},
		}},
		{"empty label", map[string]BodyData{
			"":  {Position: []float64{0, 0}, Velocity: []float64{0, 0}, Mass: 1},
			"b": {Position: []float64{1, 0}, Velocity: []float64{0, 0}, Mass: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.data, DefaultConfig())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var valErr ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative interval", Config{BaseInterval: -0.1, TimeUnits: "secs", SpaceUnits: "m", MassUnits: "kg"}},
		{"negative limit", Config{BaseInterval: 1, TimeUnits: "secs", SpaceUnits: "m", MassUnits: "kg", Limit: -1}},
		{"bad unit", Config{BaseInterval: 1, TimeUnits: "eons", SpaceUnits: "m", MassUnits: "kg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(twoBodyData(), tt.cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var cfgErr ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigurationError, got %T", err)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	sys, err := New(twoBodyData(), Config{})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if sys.Dt() != 1 {
		t.Errorf("expected default dt 1, got %g", sys.Dt())
	}
	if sys.G() != G {
		t.Errorf("expected SI G, got %g", sys.G())
	}
	if !sys.Tracking() {
		t.Error("tracking should default to enabled")
	}
}

func TestLabelsSorted(t *testing.T) {
	data := map[string]BodyData{
		"zeta":  {Position: []float64{0, 0}, Velocity: []float64{0, 0}, Mass: 1},
		"alpha": {Position: []float64{1, 0}, Velocity: []float64{0, 0}, Mass: 1},
		"mid":   {Position: []float64{2, 0}, Velocity: []float64{0, 0}, Mass: 1},
	}
	sys, err := New(data, DefaultConfig())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	labels := sys.Labels()
	expected := []string{"alpha", "mid", "zeta"}
	for i, l := range expected {
		if labels[i] != l {
			t.Errorf("label %d: expected %s, got %s", i, l, labels[i])
		}
	}
}

// A symmetric two-body cycle must produce equal and opposite velocity
// changes, and both bodies must move strictly toward each other.
func TestSymmetricTwoBodyCycle(t *testing.T) {
	sys, err := New(twoBodyData(), DefaultConfig())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	sys.gEff = 1 // unit-strength gravity for an exactly checkable cycle

	if err := sys.Step(); err != nil {
		t.Fatalf("step failed: %v", err)
	}

	vel := sys.Velocities()
	if vel[0].X != -vel[1].X || vel[0].Y != -vel[1].Y {
		t.Errorf("velocity changes not equal and opposite: %v vs %v", vel[0], vel[1])
	}
	if vel[0].X <= 0 {
		t.Errorf("left body should accelerate right, got vx=%g", vel[0].X)
	}

	pos := sys.Positions()
	if pos[0].X <= -1 {
		t.Errorf("left body should move right, got x=%g", pos[0].X)
	}
	if pos[1].X >= 1 {
		t.Errorf("right body should move left, got x=%g", pos[1].X)
	}
	sep := pos[1].Sub(pos[0]).Norm()
	if sep >= 2 {
		t.Errorf("bodies should move strictly toward each other, separation %g", sep)
	}
}

// Expected magnitudes for a single cycle with gEff=1, m=1, r=2:
// a = 1/4, dv = a*dt = 0.25, dp = v*dt = 0.25.
func TestSymmetricTwoBodyCycleValues(t *testing.T) {
	sys, err := New(twoBodyData(), DefaultConfig())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	sys.gEff = 1

	if err := sys.Step(); err != nil {
		t.Fatalf("step failed: %v", err)
	}

	vel := sys.Velocities()
	if math.Abs(vel[0].X-0.25) > 1e-15 {
		t.Errorf("expected dv 0.25, got %g", vel[0].X)
	}
	pos := sys.Positions()
	if math.Abs(pos[0].X-(-0.75)) > 1e-15 {
		t.Errorf("expected position -0.75, got %g", pos[0].X)
	}
}

func TestStepCountAndHistory(t *testing.T) {
	sys, err := New(twoBodyData(), DefaultConfig())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := sys.Step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if sys.StepCount() != i+1 {
			t.Errorf("expected step count %d, got %d", i+1, sys.StepCount())
		}
		if sys.History().Len() != sys.StepCount() {
			t.Errorf("history length %d != step count %d", sys.History().Len(), sys.StepCount())
		}
	}

	for i := 0; i < sys.BodyCount(); i++ {
		if len(sys.History().Track(i)) != 5 {
			t.Errorf("body %d track length %d, expected 5", i, len(sys.History().Track(i)))
		}
	}
}

func TestPhaseMethodsDoNotCommit(t *testing.T) {
	sys, err := New(twoBodyData(), DefaultConfig())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if err := sys.UpdateAccelerations(); err != nil {
		t.Fatalf("accelerations failed: %v", err)
	}
	sys.UpdateVelocities()
	sys.UpdatePositions()

	if sys.StepCount() != 0 {
		t.Errorf("phase methods must not commit, step count %d", sys.StepCount())
	}
	if sys.History().Len() != 0 {
		t.Errorf("phase methods must not record history, length %d", sys.History().Len())
	}
}

func TestNoHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoHistory = true
	sys, err := New(twoBodyData(), cfg)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		if err := sys.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
	if sys.History().Len() != 0 {
		t.Errorf("history should stay empty with NoHistory, length %d", sys.History().Len())
	}
}

func TestDisableHistory(t *testing.T) {
	sys, err := New(twoBodyData(), DefaultConfig())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := sys.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
	sys.DisableHistory()
	if sys.History().Len() != 0 {
		t.Error("disabling tracking should clear the buffer")
	}

	if err := sys.Step(); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if sys.History().Len() != 0 {
		t.Error("buffer should stay frozen at empty after disabling")
	}
}

func TestCoincidentBodies(t *testing.T) {
	data := map[string]BodyData{
		"a": {Position: []float64{3, 4}, Velocity: []float64{0, 0}, Mass: 1},
		"b": {Position: []float64{3, 4}, Velocity: []float64{0, 0}, Mass: 1},
	}
	sys, err := New(data, DefaultConfig())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	err = sys.UpdateAccelerations()
	if err == nil {
		t.Fatal("expected degeneracy error, got nil")
	}
	var degErr DegeneracyError
	if !errors.As(err, &degErr) {
		t.Fatalf("expected DegeneracyError, got %T", err)
	}
	if degErr.BodyA != "a" || degErr.BodyB != "b" {
		t.Errorf("error should name both bodies, got %q %q", degErr.BodyA, degErr.BodyB)
	}
}

// A light body on a circular orbit around a heavy one must stay on a
// bounded orbit over many small steps.
func TestBoundedOrbit(t *testing.T) {
	data := map[string]BodyData{
		"sun":    {Position: []float64{0, 0}, Velocity: []float64{0, 0}, Mass: 1},
		"planet": {Position: []float64{1, 0}, Velocity: []float64{0, 1}, Mass: 1e-9},
	}
	cfg := DefaultConfig()
	cfg.BaseInterval = 0.001
	sys, err := New(data, cfg)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	sys.gEff = 1 // circular orbit speed is then exactly 1 at r=1

	// ~1.6 orbital periods
	for i := 0; i < 10_000; i++ {
		if err := sys.Step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		pos := sys.Positions()
		r := pos[0].Sub(pos[1]).Norm()
		if r < 0.8 || r > 1.2 {
			t.Fatalf("orbit unbounded at step %d: r=%g", i, r)
		}
	}
}
