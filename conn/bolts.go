// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conn

import "math"

// BoltTensionResistance implements 3.6.1 Table 3.4: F_t,Rd = 0.9·f_ub·A_s/γ_M2.
func BoltTensionResistance(fub, as, gammaM2 float64) float64 {
	return 0.9 * fub * as / gammaM2
}

// BoltShearResistance implements Table 3.4 for shear planes through the
// unthreaded (alphaV=0.6) or threaded (alphaV=0.6 for 8.8, 0.5 for 10.9)
// portion: F_v,Rd = α_v·f_ub·A/γ_M2.
func BoltShearResistance(alphaV, fub, a, gammaM2 float64) float64 {
	return alphaV * fub * a / gammaM2
}

// BoltBearingResistance implements Table 3.4's bearing check:
// F_b,Rd = k1·α_b·f_u·d·t/γ_M2, with α_b the minimum of e1/(3·d0),
// p1/(3·d0) − 0.25, f_ub/f_u, and 1.0, and k1 the minimum of 2.8·e2/d0 −
// 1.7 and 2.5 (edge bolts in the direction perpendicular to load transfer).
func BoltBearingResistance(e1, p1, d0, d, t, fub, fu, e2, gammaM2 float64) float64 {
	alphaB := math.Min(math.Min(e1/(3*d0), p1/(3*d0)-0.25), math.Min(fub/fu, 1.0))
	if alphaB < 0 {
		alphaB = 0
	}
	k1 := math.Min(2.8*e2/d0-1.7, 2.5)
	if k1 < 0 {
		k1 = 0
	}
	return k1 * alphaB * fu * d * t / gammaM2
}

// ShearResistance implements spec §4.7's "combines bolt shear and bearing"
// requirement: the governing per-bolt shear capacity across a bolt group,
// taken as the minimum of shear and bearing, summed over all bolts.
func ShearResistance(nBolts int, shearPerBolt, bearingPerBolt float64) float64 {
	return float64(nBolts) * math.Min(shearPerBolt, bearingPerBolt)
}
