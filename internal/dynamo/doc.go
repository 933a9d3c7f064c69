// Package dynamo provides the numerical primitives used to cross-check the
// analytic bounce formulas:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator
//   - [Hamiltonian]: systems with a conserved energy
package dynamo
