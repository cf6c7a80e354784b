// Package dynamo provides the numerical primitives shared by the reactor
// model and its integrators.
//
// The package defines the fundamental types for marching a system of
// first-order ODEs along an independent coordinate:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dz = f(X, z))
//   - [Integrator]: fixed-step numerical integrator interface
//
// In this repository the independent coordinate is the reactor axis z, not
// time; nothing here assumes either.
//
// # Example
//
//	model := reactor.NewModel(req, params)
//	integ := integrators.NewEuler()
//	next := integ.Step(model, x, z, dz)
//
// # Thread Safety
//
// State values are plain slices and must not be shared between goroutines
// while being written. Integrators that keep scratch buffers (RK4) are not
// safe for concurrent use; create one per goroutine.
package dynamo
