// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conn

import "math"

// ColumnWebPanelShear implements 6.2.6.1: V_wp,Rd = 0.9·f_y·A_vc/(√3·γ_M0).
func ColumnWebPanelShear(avc, fy, gammaM0 float64) float64 {
	return 0.9 * fy * avc / (math.Sqrt(3) * gammaM0)
}

// ColumnWebTension implements 6.2.6.3: F_t,wc,Rd = ω·b_eff·t_w·f_y/γ_M0,
// with the panel-shear interaction reduction ω = 1/√(1 + 1.3·(b_eff·t_w/A_vc)²).
func ColumnWebTension(beff, tw, fy, gammaM0, avc float64) (resistance, omega float64) {
	ratio := beff * tw / avc
	omega = 1 / math.Sqrt(1+1.3*ratio*ratio)
	resistance = omega * beff * tw * fy / gammaM0
	return resistance, omega
}

// ColumnWebCompression implements 6.2.6.2, the same b_eff·t_w·f_y/γ_M0
// form as tension but without the panel-shear interaction reduction (the
// compression zone is stiffened by the compression flange bearing
// directly against the web, not governed by shear lag).
func ColumnWebCompression(beff, tw, fy, gammaM0 float64) float64 {
	return beff * tw * fy / gammaM0
}

// FlangeWebCompression implements 6.2.6.7: the beam flange/web in
// compression is idealised as the flange force at yield over the lever
// arm to the compression centre, F_c,fb,Rd = M_c,Rd/(h − t_fb).
func FlangeWebCompression(mcRd, h, tfb float64) float64 {
	return mcRd / (h - tfb)
}
