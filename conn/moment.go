// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conn

import (
	"math"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/errs"
)

// Classification labels a joint's stiffness behaviour per 5.2.2.
type Classification int

const (
	SemiRigid Classification = iota
	Rigid
	Pinned
)

func (c Classification) String() string {
	switch c {
	case Rigid:
		return "rigid"
	case Pinned:
		return "pinned"
	default:
		return "semi-rigid"
	}
}

// RowResult is one bolt row's governing resistance (the minimum of the
// column-flange T-stub, end-plate T-stub and bolt-group resistances) and
// its contribution to the joint's moment resistance.
type RowResult struct {
	Demand      RowDemand
	ColumnFlange TStubResult
	EndPlate     TStubResult
	BoltGroup    float64
	FtrRd        float64 // governing row resistance
	Ftr          float64 // the share actually mobilised (6.2.7.2 iteration)
}

// ConnectionResult is the full output of DesignMomentConnection (spec
// §4.7).
type ConnectionResult struct {
	PanelShearRd float64
	WebTensionRd float64
	WebOmega     float64
	WebCompRd    float64
	FlangeCompRd float64

	Rows  []RowResult
	MjRd  float64
	CRd   float64 // sum of all rows' FtrRd, the 6.2.7.2 cap

	SjIni  float64
	SjSec  float64 // secant stiffness at the applied moment
	Mu     float64 // M_Ed / M_jRd
	Eta    float64

	Class Classification

	UCMoment float64 // M_Ed / M_jRd
	UCShear  float64 // V_Ed / shear resistance
}

// DesignMomentConnection implements spec §4.7's component method end to
// end: T-stub resistance per row, column web checks, the 6.2.7.2 moment
// resistance iteration, 6.3.1 rotational stiffness and 5.2.2
// classification.
func DesignMomentConnection(cfg ConnectionConfig) (ConnectionResult, error) {
	if len(cfg.Rows) == 0 {
		return ConnectionResult{}, errs.New(errs.InvalidInput, "connection has no bolt rows")
	}

	gm0c := cfg.ColumnGrade.GammaM0
	gm2c := cfg.ColumnGrade.GammaM2

	res := ConnectionResult{}
	res.PanelShearRd = ColumnWebPanelShear(cfg.Avc, cfg.ColumnGrade.Fy, gm0c)
	res.WebTensionRd, res.WebOmega = ColumnWebTension(cfg.Beff, cfg.ColumnSection.Tw, cfg.ColumnGrade.Fy, gm0c, cfg.Avc)
	res.WebCompRd = ColumnWebCompression(cfg.Beff, cfg.ColumnSection.Tw, cfg.ColumnGrade.Fy, gm0c)

	beamMcRd := cfg.BeamSection.WelY * cfg.BeamGrade.Fy / cfg.BeamGrade.GammaM0
	res.FlangeCompRd = FlangeWebCompression(beamMcRd, cfg.BeamSection.H, cfg.BeamSection.Tf)

	demands := RowDemands(cfg.Rows, cfg.MEd)
	ftRdPerBolt := BoltTensionResistance(cfg.Bolt.Fub, demands[0].Row.As, gm2c)

	var rows []RowResult
	for i, row := range cfg.Rows {
		cf := TStubResistance(row, cfg.ColumnSection.Tf, cfg.ColumnGrade.Fy, gm0c, ftRdPerBolt)
		ep := TStubResistance(row, cfg.EndPlateThickness, cfg.BeamGrade.Fy, cfg.BeamGrade.GammaM0, ftRdPerBolt)
		boltGroup := float64(row.NBolts) * ftRdPerBolt

		ftrRd := math.Min(cf.FTRd, math.Min(ep.FTRd, boltGroup))
		ftrRd = math.Min(ftrRd, res.WebTensionRd)

		rows = append(rows, RowResult{
			Demand:       demands[i],
			ColumnFlange: cf,
			EndPlate:     ep,
			BoltGroup:    boltGroup,
			FtrRd:        ftrRd,
		})
	}

	// 6.2.7.2: iterate rows from the top, F_tr = min(F_tr,Rd, C_Rd - Σ_above F_tr).
	var cRd, mjRd, usedAbove float64
	for i := range rows {
		cRd += rows[i].FtrRd
	}
	res.CRd = cRd
	for i := range rows {
		ftr := math.Min(rows[i].FtrRd, cRd-usedAbove)
		if ftr < 0 {
			ftr = 0
		}
		rows[i].Ftr = ftr
		usedAbove += ftr
		mjRd += ftr * rows[i].Demand.Row.HR
	}
	res.Rows = rows
	res.MjRd = mjRd

	// 6.3.1 rotational stiffness: S_j,ini = E·z²/Σ(1/k_i). The joint's
	// lever arm z is approximated as the distance between the outermost
	// tension row and the compression centre (the beam's bottom flange).
	z := cfg.Rows[0].HR
	sumInvK := stiffnessSumInverse(cfg, res)
	if sumInvK > 0 {
		res.SjIni = steelE * z * z / sumInvK
	}

	if res.MjRd > 0 {
		res.Mu = cfg.MEd / res.MjRd
	}
	res.Eta = 1.0
	if res.Mu > 2.0/3.0 {
		res.Eta = math.Pow(1.5*res.Mu, 2.7)
	}
	if res.Eta > 0 {
		res.SjSec = res.SjIni / res.Eta
	}

	if cfg.BeamLengthForStiffness > 0 && cfg.BeamSection.Iy > 0 {
		ei := steelE * cfg.BeamSection.Iy / cfg.BeamLengthForStiffness
		rigidBound := 25 * ei
		pinnedBound := 0.5 * ei
		switch {
		case res.SjIni >= rigidBound:
			res.Class = Rigid
		case res.SjIni <= pinnedBound:
			res.Class = Pinned
		default:
			res.Class = SemiRigid
		}
	}

	if res.MjRd > 0 {
		res.UCMoment = cfg.MEd / res.MjRd
	}
	shearRd := res.PanelShearRd // governing shear resistance for the joint
	if shearRd > 0 {
		res.UCShear = cfg.VEd / shearRd
	}

	return res, nil
}

// steelE mirrors steel.SteelE (grade-independent elastic modulus); kept
// local to avoid an import cycle between conn and steel.
const steelE = 210e9

// stiffnessSumInverse sums 1/k_i over the joint's active components
// (column web panel in shear k1, column web in tension k3, column flange
// in bending k4, end-plate in bending k5, bolts in tension k10) the way
// 6.3.1 builds S_j,ini; the remaining Table 6.11 components (k2, k6-k9)
// do not apply to this connection topology (no column web stiffeners, no
// contact-plate components) and are omitted rather than approximated.
func stiffnessSumInverse(cfg ConnectionConfig, res ConnectionResult) float64 {
	if res.PanelShearRd <= 0 {
		return 0
	}
	k1 := 0.38 * cfg.Avc / cfg.Rows[0].HR
	k3 := 0.7 * cfg.Beff * cfg.ColumnSection.Tw
	k4 := 0.9 * cfg.ColumnSection.Tf * cfg.ColumnSection.Tf * cfg.ColumnSection.Tf / (cfg.Rows[0].M * cfg.Rows[0].M * cfg.Rows[0].M)
	k5 := 0.9 * cfg.EndPlateThickness * cfg.EndPlateThickness * cfg.EndPlateThickness / (cfg.Rows[0].M * cfg.Rows[0].M * cfg.Rows[0].M)
	lb := 2 * cfg.EndPlateThickness
	k10 := 1.6 * cfg.Rows[0].As / lb

	var sum float64
	for _, k := range []float64{k1, k3, k4, k5, k10} {
		if k > 0 {
			sum += 1 / k
		}
	}
	return sum
}
