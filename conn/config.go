// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conn implements spec component C9: bolted end-plate moment
// connection design per NEN-EN 1993-1-8's component method (T-stub
// resistance, column web checks, moment resistance, rotational stiffness
// and classification). New relative to the teacher — a continuum FEM
// solver has no connection-design component — but layered the way
// package steel is: small single-purpose resistance functions feeding one
// orchestrating entry point that takes the governing (minimum) value.
package conn

import (
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
)

// BoltRow is one horizontal row of bolts in an end-plate connection,
// located by its distance h_r from the centre of compression (spec §4.7
// "iterate bolt rows from the top").
type BoltRow struct {
	HR     float64 // distance from the centre of compression, m
	NBolts int     // bolts per row (usually 2)
	As     float64 // tensile stress area per bolt, m²
	M      float64 // bolt-row m (distance bolt-to-web/weld), m
	E      float64 // bolt-row e (edge distance), m
	P      float64 // pitch to the adjacent row, m (0 for an end row)
	Inner  bool    // true if this is an inner row (bounded by pitch, not edge)
}

// BoltClass holds a bolt grade's ultimate tensile strength (e.g. 8.8, 10.9).
type BoltClass struct {
	Name string
	Fub  float64 // ultimate tensile strength, Pa
}

var (
	Bolt8_8  = BoltClass{Name: "8.8", Fub: 800e6}
	Bolt10_9 = BoltClass{Name: "10.9", Fub: 1000e6}
)

// ConnectionConfig is the full geometric/material description of one
// bolted end-plate moment connection (spec §4.7 design_moment_connection).
type ConnectionConfig struct {
	ColumnSection catalog.Section
	ColumnGrade   catalog.Grade
	BeamSection   catalog.Section
	BeamGrade     catalog.Grade

	EndPlateThickness   float64 // t_p, m
	ColumnFlangeFyGrade catalog.Grade

	Bolt  BoltClass
	Rows  []BoltRow // ordered top to bottom
	Avc   float64   // column web shear area, m²
	Beff  float64   // effective width for column-web-in-tension, m

	MEd float64 // applied bending moment at the joint, N·m
	VEd float64 // applied shear at the joint, N

	BeamLengthForStiffness float64 // L_b for classification (spec §4.7 5.2.2)
}
