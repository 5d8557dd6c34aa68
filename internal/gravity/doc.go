// Package gravity simulates the planar motion of point masses under
// mutual Newtonian gravity with semi-implicit (symplectic) Euler
// time discretization.
//
//   - [System]: a fixed set of bodies plus time step, scaled
//     gravitational constant, step counter and trajectory history
//   - [Frames]: lazy, bounded, non-mutating iteration over future
//     states, for rendering
//   - [History]: append-only per-body trajectory log
//   - [ScaleG]: unit scaling for the gravitational constant
//
// # Two state-advancement pathways
//
// Explicit stepping mutates the system and commits to its counter and
// history:
//
//	sys, _ := gravity.New(data, gravity.DefaultConfig())
//	if err := sys.Step(); err != nil { ... }
//
// Iteration works on an independent copy and leaves the system
// untouched, so a renderer can replay the same sequence any number of
// times:
//
//	it := sys.Frames()
//	for it.Next() {
//	    draw(it.Current())
//	}
//
// The kernel order inside one step is acceleration, then velocity,
// then position using the updated velocity. This ordering is what
// keeps long orbits bounded; plain explicit Euler is not equivalent.
package gravity
