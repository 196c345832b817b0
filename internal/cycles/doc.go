// Package cycles computes the turning points of a Coulomb-damped oscillator
// in closed form. Each half swing balances the spring energy released against
// the work done by kinetic friction, which yields a quadratic in the next
// turning-point magnitude. The resulting Record is the reference the
// numerical integrator is checked against.
package cycles
