// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
)

func testConfig() ConnectionConfig {
	col := catalog.DefaultSections["HEA 200"]
	beam := catalog.DefaultSections["IPE 200"]
	grade := catalog.Grades["S235"]
	return ConnectionConfig{
		ColumnSection:     col,
		ColumnGrade:       grade,
		BeamSection:       beam,
		BeamGrade:         grade,
		EndPlateThickness: 0.015,
		Bolt:              Bolt8_8,
		Rows: []BoltRow{
			{HR: 0.18, NBolts: 2, As: 0.000245, M: 0.045, E: 0.04, P: 0.09, Inner: false},
			{HR: 0.09, NBolts: 2, As: 0.000245, M: 0.045, E: 0.04, P: 0.09, Inner: true},
		},
		Avc:                    col.H * col.Tw,
		Beff:                   0.2,
		MEd:                    40000,
		VEd:                    30000,
		BeamLengthForStiffness: 6.0,
	}
}

func TestDesignMomentConnectionProducesPositiveResistance(t *testing.T) {
	res, err := DesignMomentConnection(testConfig())
	require.NoError(t, err)
	require.Greater(t, res.MjRd, 0.0)
	require.Len(t, res.Rows, 2)
	require.Greater(t, res.SjIni, 0.0)
}

func TestDesignMomentConnectionRejectsNoRows(t *testing.T) {
	cfg := testConfig()
	cfg.Rows = nil
	_, err := DesignMomentConnection(cfg)
	require.Error(t, err)
}

func TestRowDemandsDistributeProportionallyToHR(t *testing.T) {
	cfg := testConfig()
	demands := RowDemands(cfg.Rows, cfg.MEd)
	require.Len(t, demands, 2)
	require.Greater(t, demands[0].FtEd, demands[1].FtEd, "the row further from the compression centre should carry more demand")
	for _, d := range demands {
		require.NotEmpty(t, d.DeviationNote)
	}
}

func TestClassificationRespondsToStiffness(t *testing.T) {
	cfg := testConfig()
	base, err := DesignMomentConnection(cfg)
	require.NoError(t, err)

	cfg.BeamLengthForStiffness = 100.0 // an absurdly long beam drops the rigid bound far below SjIni
	longBeam, err := DesignMomentConnection(cfg)
	require.NoError(t, err)

	require.Equal(t, base.SjIni, longBeam.SjIni, "stiffness itself should not depend on beam length")
	require.NotEqual(t, base.Class, Pinned)
	require.Equal(t, Rigid, longBeam.Class, "SjIni far above the lowered rigid bound classifies the joint as rigid")
}

func TestBoltBearingResistanceNonNegative(t *testing.T) {
	r := BoltBearingResistance(0.04, 0.09, 0.022, 0.020, 0.015, 800e6, 360e6, 0.04, 1.25)
	require.GreaterOrEqual(t, r, 0.0)
}
