// Package reactor models a tubular plug-flow reactor at steady state.
//
// Two pieces do the work:
//
//   - [RateConstant]: the Arrhenius rate law, k = k0·exp(−Ea/(Rg·T))
//   - [Integrate]: forward Euler march of the coupled mass and energy
//     balances from the inlet (z = 0) to the outlet (z = L)
//
// [Summarize] reduces a [Profile] to final conversion and peak temperature.
//
// # Preconditions
//
// Integrate does not validate its inputs. Callers at a transport boundary
// use [Request.Validate] (or [Simulate], which does it for them) so that a
// zero velocity or inlet temperature never reaches the balances.
//
// # Example
//
//	req := reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}
//	prof := reactor.Integrate(req, reactor.DefaultParams())
//	sum := reactor.Summarize(prof, reactor.DefaultParams())
package reactor
