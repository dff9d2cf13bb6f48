// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steel

import (
	"math"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
)

// BucklingCurve selects the imperfection factor of Table 6.1/6.2.
type BucklingCurve int

const (
	CurveA0 BucklingCurve = iota
	CurveA
	CurveB
	CurveC
	CurveD
)

func (c BucklingCurve) alpha() float64 {
	switch c {
	case CurveA0:
		return 0.13
	case CurveA:
		return 0.21
	case CurveB:
		return 0.34
	case CurveC:
		return 0.49
	default:
		return 0.76
	}
}

// SelectBucklingCurve picks the Table 6.2 curve for a rolled I/H section
// buckling about the strong (aboutY=true) or weak axis, per the h/b ≤ 1.2
// split the table encodes for t_f ≤ 40 mm sections.
func SelectBucklingCurve(sec catalog.Section, aboutY bool) BucklingCurve {
	if sec.H <= 0 || sec.B <= 0 {
		return CurveC
	}
	ratio := sec.H / sec.B
	if ratio > 1.2 {
		if aboutY {
			return CurveA
		}
		return CurveB
	}
	if aboutY {
		return CurveB
	}
	return CurveC
}

// BucklingCheck is the member (flexural) buckling verification of 6.3.1.
type BucklingCheck struct {
	Curve     BucklingCurve
	LambdaBar float64 // non-dimensional slenderness
	Chi       float64 // reduction factor
	NcrEuler  float64 // Pa·m² Euler critical load, N
	NbRd      float64 // buckling resistance, N
	UC        float64
}

// CheckMemberBuckling implements 6.3.1: N_cr = π²·E·I/L_buck², λ̄ =
// √(A·f_y/N_cr), reduction χ from the imperfection factor α and λ̄.
func CheckMemberBuckling(sec catalog.Section, grade catalog.Grade, i float64, lBuck float64, nEd float64, curve BucklingCurve) BucklingCheck {
	ncr := math.Pi * math.Pi * SteelE * i / (lBuck * lBuck)
	lambdaBar := math.Sqrt(sec.A * grade.Fy / ncr)
	alpha := curve.alpha()
	phi := 0.5 * (1 + alpha*(lambdaBar-0.2) + lambdaBar*lambdaBar)
	chi := 1.0
	if lambdaBar > 0.2 {
		chi = 1 / (phi + math.Sqrt(phi*phi-lambdaBar*lambdaBar))
		if chi > 1 {
			chi = 1
		}
	}
	nbRd := chi * sec.A * grade.Fy / grade.GammaM1
	return BucklingCheck{
		Curve:     curve,
		LambdaBar: lambdaBar,
		Chi:       chi,
		NcrEuler:  ncr,
		NbRd:      nbRd,
		UC:        math.Abs(nEd) / nbRd,
	}
}

// LTBCheck is the lateral-torsional buckling verification of 6.3.2.
type LTBCheck struct {
	LambdaLT float64
	ChiLT    float64
	Mcr      float64
	MbRd     float64
	UC       float64
}

// CheckLTB implements the general method of 6.3.2: M_b,Rd = χ_LT·W_y·f_y/
// γ_M1. M_cr is the elastic critical moment for lateral-torsional buckling
// under (approximately) uniform moment, computed from the section's
// St Venant torsional constant (thin-rectangle sum) and warping constant
// (I_z·h'²/4 for a doubly symmetric I-section) since the catalog does not
// carry I_t/I_w directly — an explicit, documented approximation, not a
// table lookup.
func CheckLTB(sec catalog.Section, grade catalog.Grade, lCr, mEd float64, curveLT BucklingCurve) LTBCheck {
	it := torsionalConstant(sec)
	iw := warpingConstant(sec)
	g := SteelE / (2 * 1.3) // ν≈0.3 -> G = E/(2(1+ν))

	c1 := 1.0 // uniform-moment case; conservative default for the general method
	term := iw/sec.Iz + (lCr*lCr*g*it)/(math.Pi*math.Pi*SteelE*sec.Iz)
	mcr := c1 * (math.Pi * math.Pi * SteelE * sec.Iz / (lCr * lCr)) * math.Sqrt(math.Max(term, 0))

	w := sec.WelY
	if sec.Class >= 1 && sec.Class <= 2 && sec.WplY > 0 {
		w = sec.WplY
	}
	lambdaLT := math.Sqrt(w * grade.Fy / mcr)
	alpha := curveLT.alpha()
	phi := 0.5 * (1 + alpha*(lambdaLT-0.2) + lambdaLT*lambdaLT)
	chi := 1.0
	if lambdaLT > 0.2 {
		chi = 1 / (phi + math.Sqrt(phi*phi-lambdaLT*lambdaLT))
		if chi > 1 {
			chi = 1
		}
	}
	mbRd := chi * w * grade.Fy / grade.GammaM1
	return LTBCheck{
		LambdaLT: lambdaLT,
		ChiLT:    chi,
		Mcr:      mcr,
		MbRd:     mbRd,
		UC:       math.Abs(mEd) / mbRd,
	}
}

func torsionalConstant(sec catalog.Section) float64 {
	if sec.Tf <= 0 || sec.Tw <= 0 || sec.B <= 0 || sec.H <= 0 {
		return 0
	}
	hw := sec.H - 2*sec.Tf
	return (2*sec.B*sec.Tf*sec.Tf*sec.Tf + hw*sec.Tw*sec.Tw*sec.Tw) / 3
}

func warpingConstant(sec catalog.Section) float64 {
	if sec.Tf <= 0 || sec.H <= 0 {
		return 0
	}
	hPrime := sec.H - sec.Tf
	return sec.Iz * hPrime * hPrime / 4
}
