// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Cubic Hermite shape functions for the transverse (v, θ) DOFs of a 2D
// Euler-Bernoulli beam of length L, in the local coordinate ξ = x/L, and
// their x-derivatives. Point loads on a beam (spec §4.1: "use the same
// Hermite shape functions evaluated at t") and trapezoidal distributed
// loads (integrated against the same functions) both go through these.
func hermiteV(xi, L float64) (h1, h2, h3, h4 float64) {
	x2, x3 := xi*xi, xi*xi*xi
	h1 = 1 - 3*x2 + 2*x3
	h2 = L * (xi - 2*x2 + x3)
	h3 = 3*x2 - 2*x3
	h4 = L * (-x2 + x3)
	return
}

func hermiteVPrimeX(xi, L float64) (dh1, dh2, dh3, dh4 float64) {
	dh1 = (-6*xi + 6*xi*xi) / L
	dh2 = 1 - 4*xi + 3*xi*xi
	dh3 = (6*xi - 6*xi*xi) / L
	dh4 = -2*xi + 3*xi*xi
	return
}

// linearN returns the two linear (axial/truss) shape functions at ξ.
func linearN(xi float64) (n1, n2 float64) { return 1 - xi, xi }

// gauss5 are abscissae/weights of the 5-point Gauss-Legendre rule on
// [-1,1], exact for polynomials up to degree 9 — comfortably exact for the
// degree-4 integrands (cubic Hermite × linear load) this engine needs
// (spec §4.1: "exact Euler-Bernoulli fixed-end forces... by closed-form
// integration"; quadrature of sufficient order reproduces the closed form
// to machine precision for these low-degree integrands).
var gauss5 = []struct{ x, w float64 }{
	{-0.9061798459386640, 0.2369268850561891},
	{-0.5384693101056831, 0.4786286704993665},
	{0, 0.5688888888888889},
	{0.5384693101056831, 0.4786286704993665},
	{0.9061798459386640, 0.2369268850561891},
}

// integrateOverRange integrates f(x) over [a,b] (a,b in metres along the
// beam) using the 5-point Gauss rule, mapping [-1,1] -> [a,b].
func integrateOverRange(a, b float64, f func(x float64) float64) float64 {
	if b <= a {
		return 0
	}
	half := (b - a) / 2
	mid := (b + a) / 2
	var sum float64
	for _, g := range gauss5 {
		x := mid + half*g.x
		sum += g.w * f(x)
	}
	return sum * half
}

// linearLoadAt returns the load intensity at x given a trapezoidal profile
// q1 at x=a to q2 at x=b, zero outside [a,b].
func linearLoadAt(x, a, b, q1, q2 float64) float64 {
	if x < a || x > b || b <= a {
		return 0
	}
	s := (x - a) / (b - a)
	return q1 + s*(q2-q1)
}
