// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package steel implements spec component C8: per-station cross-section
// verification of a beam's recovered internal forces against NEN-EN
// 1993-1-1 §6.2.4–6.2.10, §6.3.1/§6.3.2 and SLS deflection. Grounded on
// the teacher's ele/solid beam stress recovery (CalcMoment2d/
// CalcShearForce2d fed a UC-style reduction), generalised here from a
// continuum stress state to a resistance/demand unity check.
package steel

import (
	"math"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/errs"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/fem"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// StationCheck is one sampled station's demand/resistance state.
type StationCheck struct {
	Station float64 // fractional position 0..1 along the beam
	N, V, M float64

	NcRd, McRd, VcRd float64
	UC_N, UC_M, UC_V float64

	// UC_NM is the combined bending+axial unity (6.2.8). For I-sections it
	// already includes the n/a reduction when n > 0.5·a.
	UC_NM float64

	// BendingShearReduced is true when V_Ed exceeded half of V_c,Rd and the
	// bending resistance had to be reduced per 6.2.10.
	BendingShearReduced bool
	UC_MV               float64

	// UC is the governing unity check at this station (max of the above).
	UC float64
}

// CheckResult is the full per-beam verification (spec §4.6 "check_steel").
type CheckResult struct {
	Beam      mesh.BeamID
	Grade     catalog.Grade
	Stations  []StationCheck
	UCMax     float64
	Governing string // name of the governing check, e.g. "bending (6.2.5)"

	// GoverningLocation is UCMax's location: one of {start, quarter, mid,
	// max, end} when a cross-section station governs (spec §4.6), or
	// "member" when 6.3.1/6.3.2 governs instead (those are member-length
	// checks, not tied to a single station).
	GoverningLocation string

	Buckling *BucklingCheck // nil if member buckling was not requested (L_buck <= 0)
	LTB      *LTBCheck      // nil if LTB was not requested (L_buck <= 0)

	MaxDeflection float64
	DeflectionOK  bool
}

// CheckBeam verifies a single beam's recovered internal forces against its
// cross-section resistance, resampled at checkIntervalMM spacing (spec
// §4.6, check_interval_mm), plus member buckling (6.3.1) and LTB (6.3.2)
// when lBuck is positive. length is the member span in metres; limitDivisor
// is the SLS deflection limit's denominator (e.g. 250 for L/250); lBuck is
// the unbraced length in metres for the 6.3.1/6.3.2 checks, or <= 0 to skip
// them (no intermediate restraint data is available to assume one).
func CheckBeam(beam mesh.Beam, forces fem.BeamForces, grade catalog.Grade, length, limitDivisor, checkIntervalMM, lBuck float64) (CheckResult, error) {
	if length <= 0 {
		return CheckResult{}, errs.New(errs.InvalidInput, "beam %d: length must be positive, got %v", beam.ID, length)
	}
	sec := beam.Section
	if sec.A <= 0 || sec.WelY <= 0 {
		return CheckResult{}, errs.New(errs.InvalidInput, "beam %d: section has no usable area/modulus", beam.ID)
	}

	res := CheckResult{Beam: beam.ID, Grade: grade}

	fracs, ns, vs, ms := resampleStations(forces, length, checkIntervalMM)
	for i, frac := range fracs {
		sc := evalStation(frac, ns[i], vs[i], ms[i], sec, grade)
		res.Stations = append(res.Stations, sc)
		if sc.UC > res.UCMax {
			res.UCMax = sc.UC
			res.Governing = sc.governingName()
			res.GoverningLocation = stationLocation(sc.Station)
		}
	}

	if lBuck > 0 {
		bucklingCurve := SelectBucklingCurve(sec, false) // weak-axis flexural buckling governs absent bracing data
		buckling := CheckMemberBuckling(sec, grade, sec.Iz, lBuck, forces.NMax, bucklingCurve)
		res.Buckling = &buckling
		if buckling.UC > res.UCMax {
			res.UCMax = buckling.UC
			res.Governing = "member buckling (6.3.1)"
			res.GoverningLocation = "member"
		}

		ltbCurve := SelectBucklingCurve(sec, true)
		ltb := CheckLTB(sec, grade, lBuck, forces.MMax, ltbCurve)
		res.LTB = &ltb
		if ltb.UC > res.UCMax {
			res.UCMax = ltb.UC
			res.Governing = "lateral-torsional buckling (6.3.2)"
			res.GoverningLocation = "member"
		}
	}

	res.MaxDeflection = maxAbs(deflectionSeries(forces, length, sec.Iy))
	if limitDivisor > 0 {
		limit := length / limitDivisor
		res.DeflectionOK = res.MaxDeflection <= limit
	} else {
		res.DeflectionOK = true
	}

	return res, nil
}

// CheckAllBeams runs CheckBeam for every beam the mesh store carries,
// matching each against the solved result's recovered forces and a single
// shared grade (spec §4.6 "check_all_beams"). lBuck is applied uniformly to
// every beam; pass <= 0 to skip 6.3.1/6.3.2 for the whole model.
func CheckAllBeams(m *mesh.Store, res *fem.Result, grade catalog.Grade, limitDivisor, checkIntervalMM, lBuck float64) ([]CheckResult, error) {
	var out []CheckResult
	for _, id := range m.SortedBeamIDs() {
		b, ok := m.Beam(id)
		if !ok {
			continue
		}
		bf, ok := res.BeamForces[id]
		if !ok {
			continue
		}
		n1, _ := m.Node(b.N1)
		n2, _ := m.Node(b.N2)
		length := math.Hypot(n2.X-n1.X, n2.Y-n1.Y)
		cr, err := CheckBeam(b, bf, grade, length, limitDivisor, checkIntervalMM, lBuck)
		if err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, nil
}

// resampleStations resamples the recovered N/V/M series at roughly
// checkIntervalMM spacing along the member (spec §4.6's check_interval_mm),
// always including both ends, by linearly interpolating onto forces' fixed
// sampling grid. checkIntervalMM <= 0 evaluates at forces' own stations
// unchanged.
func resampleStations(forces fem.BeamForces, length, checkIntervalMM float64) (fracs, n, v, m []float64) {
	if checkIntervalMM <= 0 || len(forces.Stations) == 0 {
		return forces.Stations, forces.N, forces.V, forces.M
	}
	count := int(math.Ceil(length*1000/checkIntervalMM)) + 1
	if count < 2 {
		count = 2
	}
	fracs = make([]float64, count)
	n = make([]float64, count)
	v = make([]float64, count)
	m = make([]float64, count)
	for i := 0; i < count; i++ {
		frac := float64(i) / float64(count-1)
		fracs[i] = frac
		n[i] = interpolateSeries(forces.Stations, forces.N, frac)
		v[i] = interpolateSeries(forces.Stations, forces.V, frac)
		m[i] = interpolateSeries(forces.Stations, forces.M, frac)
	}
	return
}

// interpolateSeries linearly interpolates ys sampled at ascending xs
// (fractional positions in [0,1]) at frac, clamping to the nearest endpoint
// outside the sampled range.
func interpolateSeries(xs, ys []float64, frac float64) float64 {
	last := len(xs) - 1
	if frac <= xs[0] {
		return ys[0]
	}
	if frac >= xs[last] {
		return ys[last]
	}
	for i := 1; i <= last; i++ {
		if frac <= xs[i] {
			span := xs[i] - xs[i-1]
			if span <= 0 {
				return ys[i]
			}
			t := (frac - xs[i-1]) / span
			return ys[i-1] + t*(ys[i]-ys[i-1])
		}
	}
	return ys[last]
}

func evalStation(frac, n, v, m float64, sec catalog.Section, grade catalog.Grade) StationCheck {
	sc := StationCheck{Station: frac, N: n, V: v, M: m}

	// 6.2.4 axial resistance
	sc.NcRd = sec.A * grade.Fy / grade.GammaM0
	sc.UC_N = math.Abs(n) / sc.NcRd

	// 6.2.5 bending resistance (elastic; plastic when class 1/2 data present)
	w := sec.WelY
	if sec.Class >= 1 && sec.Class <= 2 && sec.WplY > 0 {
		w = sec.WplY
	}
	sc.McRd = w * grade.Fy / grade.GammaM0
	sc.UC_M = math.Abs(m) / sc.McRd

	// 6.2.6 shear resistance
	av := sec.ShearArea()
	sc.VcRd = av * (grade.Fy / math.Sqrt(3)) / grade.GammaM0
	sc.UC_V = math.Abs(v) / sc.VcRd

	// 6.2.8 bending + axial: linear interaction, with the I-section n/a
	// reduction when n_Ed > 0.5*a (a = (A-2*b*t_f)/A, clipped to [0,0.5]).
	mcRdReduced := sc.McRd
	if sec.B > 0 && sec.Tf > 0 && sec.A > 0 {
		a := (sec.A - 2*sec.B*sec.Tf) / sec.A
		if a > 0.5 {
			a = 0.5
		}
		if a < 0 {
			a = 0
		}
		n := sc.UC_N // n = N_Ed/N_pl,Rd
		if n > 0.5*a {
			reduction := (1 - n) / (1 - 0.5*a)
			if reduction < 0 {
				reduction = 0
			}
			mcRdReduced = sc.McRd * reduction
		}
	}
	ucMReduced := math.Abs(m) / mcRdReduced
	sc.UC_NM = sc.UC_N + ucMReduced

	// 6.2.10 bending + shear interaction: reduce fy in the shear area when
	// V_Ed exceeds half of V_c,Rd.
	sc.UC_MV = sc.UC_M
	if sc.VcRd > 0 && math.Abs(v) > 0.5*sc.VcRd {
		rho := math.Pow(2*math.Abs(v)/sc.VcRd-1, 2)
		reducedFy := grade.Fy * (1 - av*rho/sec.A)
		if reducedFy > 0 {
			reducedMcRd := w * reducedFy / grade.GammaM0
			sc.UC_MV = math.Abs(m) / reducedMcRd
			sc.BendingShearReduced = true
		}
	}

	sc.UC = maxOf(sc.UC_N, sc.UC_M, sc.UC_V, sc.UC_NM, sc.UC_MV)
	return sc
}

// stationLocation classifies a fractional station position into the
// location label spec §4.6 requires alongside the governing result.
func stationLocation(frac float64) string {
	const eps = 1e-9
	switch {
	case frac <= eps:
		return "start"
	case frac >= 1-eps:
		return "end"
	case math.Abs(frac-0.5) < eps:
		return "mid"
	case math.Abs(frac-0.25) < eps:
		return "quarter"
	default:
		return "max"
	}
}

func (sc StationCheck) governingName() string {
	switch sc.UC {
	case sc.UC_N:
		return "axial (6.2.4)"
	case sc.UC_M:
		return "bending (6.2.5)"
	case sc.UC_V:
		return "shear (6.2.6)"
	case sc.UC_NM:
		return "bending+axial (6.2.8)"
	default:
		return "bending+shear (6.2.10)"
	}
}

func maxOf(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func maxAbs(vs []float64) float64 {
	var m float64
	for _, v := range vs {
		if math.Abs(v) > m {
			m = math.Abs(v)
		}
	}
	return m
}

// SteelE is the elastic modulus used for SLS deflection, grade-independent
// per EN 1993-1-1 §3.2.6 (E does not vary with yield strength).
const SteelE = 210e9

// deflectionSeries double-integrates the station-sampled bending-moment
// diagram to recover the transverse deflection relative to the member's
// chord (the classic M/EI double integration, anchored to zero at both
// ends since a beam's rigid-body translation/rotation is not an SLS
// concern — only the sag relative to the chord is).
func deflectionSeries(forces fem.BeamForces, length, iy float64) []float64 {
	n := len(forces.Stations)
	if n == 0 || iy <= 0 {
		return nil
	}
	xs := make([]float64, n)
	curv := make([]float64, n)
	for i, frac := range forces.Stations {
		xs[i] = frac * length
		curv[i] = forces.M[i] / (SteelE * iy)
	}
	slope := make([]float64, n)
	for i := 1; i < n; i++ {
		h := xs[i] - xs[i-1]
		slope[i] = slope[i-1] + 0.5*(curv[i]+curv[i-1])*h
	}
	v0 := make([]float64, n)
	for i := 1; i < n; i++ {
		h := xs[i] - xs[i-1]
		v0[i] = v0[i-1] + 0.5*(slope[i]+slope[i-1])*h
	}
	vL := v0[n-1]
	out := make([]float64, n)
	for i, x := range xs {
		out[i] = v0[i] - (x/length)*vL
	}
	return out
}
