// Package dynamics provides core primitives for numerical simulation of
// ordinary differential equations:
//
//   - [State]: flattened vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Stepper] and [AdaptiveStepper]: numerical integrator interfaces
//
// # Example
//
//	sys := gravity.NewSystem(reg, orbit.GravitationalConstant)
//	step := solver.NewRK45()
//	x, dtNext, _ := step.StepAdaptive(sys, x0, 0, 0.01, 1e-9)
package dynamics
