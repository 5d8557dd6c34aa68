package gravity

import "sort"

// BodyData is the canonical initial-condition record for one body, as
// produced by the scenario loader or the randomizer.
type BodyData struct {
	Position []float64 `json:"position"`
	Velocity []float64 `json:"velocity"`
	Mass     float64   `json:"mass"`
}

// bodies holds the per-body state owned by a System. Labels are sorted
// at construction so body order is deterministic regardless of map
// iteration order.
type bodies struct {
	labels []string
	pos    []Vec2
	vel    []Vec2
	acc    []Vec2
	mass   []float64
}

func newBodies(data map[string]BodyData) (*bodies, error) {
	if len(data) == 0 {
		return nil, ValidationError{Message: "no bodies given"}
	}
	if len(data) == 1 {
		return nil, ValidationError{Message: "at least two bodies required"}
	}

	labels := make([]string, 0, len(data))
	for label := range data {
		if label == "" {
			return nil, ValidationError{Message: "empty body label"}
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)

	b := &bodies{
		labels: labels,
		pos:    make([]Vec2, len(labels)),
		vel:    make([]Vec2, len(labels)),
		acc:    make([]Vec2, len(labels)),
		mass:   make([]float64, len(labels)),
	}

	for i, label := range labels {
		d := data[label]
		if len(d.Position) != 2 {
			return nil, ValidationError{Body: label, Message: "position must have exactly 2 components"}
		}
		if len(d.Velocity) != 2 {
			return nil, ValidationError{Body: label, Message: "velocity must have exactly 2 components"}
		}
		if d.Mass <= 0 {
			return nil, ValidationError{Body: label, Message: "mass must be positive"}
		}
		b.pos[i] = Vec2{d.Position[0], d.Position[1]}
		b.vel[i] = Vec2{d.Velocity[0], d.Velocity[1]}
		b.mass[i] = d.Mass
	}

	return b, nil
}

func (b *bodies) count() int { return len(b.labels) }

func (b *bodies) clone() *bodies {
	c := &bodies{
		labels: b.labels, // immutable after construction
		pos:    cloneVecs(b.pos),
		vel:    cloneVecs(b.vel),
		acc:    cloneVecs(b.acc),
		mass:   b.mass, // immutable after construction
	}
	return c
}

// setPositions replaces the full position array in one operation.
func (b *bodies) setPositions(pos []Vec2) {
	copy(b.pos, pos)
}

// setVelocities replaces the full velocity array in one operation.
func (b *bodies) setVelocities(vel []Vec2) {
	copy(b.vel, vel)
}
